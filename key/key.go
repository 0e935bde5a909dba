// Package key contains the symmetric keys used to seal vaults, their serialized JWK form, and the
// password-based derivation of such keys.
package key

import (
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"

	json "github.com/json-iterator/go"
	"golang.org/x/crypto/sha3"

	"github.com/passvaultio/passvault-lib/crypto"
)

// Error returned if key material or key parameters are invalid.
var ErrInvalidInput = errors.New("invalid input")

// Error returned if a key that was not marked exportable is exported.
var ErrNotExportable = errors.New("key not exportable")

// Error returned if a key string cannot be parsed into a key.
var ErrMalformedKeyString = errors.New("malformed key string")

// AlgorithmAESGCM is the JWK algorithm name of the only cipher supported for vaults.
const AlgorithmAESGCM = "A256GCM"

// Key is a symmetric key used to seal and unseal vaults. The zero value is not a usable key; keys
// are obtained through Derive, Import, or FromBytes.
type Key struct {
	material   []byte
	algorithm  string
	exportable bool
}

// jsonWebKey is the serialized form of a Key, compatible with RFC 7517 symmetric keys.
type jsonWebKey struct {
	KeyType   string   `json:"kty"`
	Algorithm string   `json:"alg"`
	K         string   `json:"k"`
	Ext       bool     `json:"ext"`
	KeyOps    []string `json:"key_ops"`
}

// FromBytes creates a Key directly from raw material. The material must be exactly
// crypto.KeyLength bytes.
func FromBytes(material []byte, exportable bool) (Key, error) {
	if len(material) != crypto.KeyLength {
		return Key{}, ErrInvalidInput
	}
	return Key{
		material:   append([]byte(nil), material...),
		algorithm:  AlgorithmAESGCM,
		exportable: exportable,
	}, nil
}

// Material returns a copy of the raw key material.
func (k *Key) Material() []byte {
	return append([]byte(nil), k.material...)
}

// Algorithm returns the JWK algorithm name of the key.
func (k *Key) Algorithm() string {
	return k.algorithm
}

// Exportable reports whether the key can be serialized with Export.
func (k *Key) Exportable() bool {
	return k.exportable
}

// Equal compares two keys in constant time.
func (k *Key) Equal(other *Key) bool {
	return subtle.ConstantTimeCompare(k.material, other.material) == 1
}

// Fingerprint returns a hex encoded SHA3-256 digest of the key material. It identifies a key
// without revealing it.
func (k *Key) Fingerprint() string {
	digest := sha3.Sum256(k.material)
	return hex.EncodeToString(digest[:])
}

// Validate checks that the key holds usable material.
func (k *Key) Validate() error {
	if len(k.material) != crypto.KeyLength {
		return ErrInvalidInput
	}
	if k.algorithm != AlgorithmAESGCM {
		return ErrInvalidInput
	}
	return nil
}

// Export serializes the key into a JWK string. Only keys marked exportable can be exported.
func (k *Key) Export() (string, error) {
	if err := k.Validate(); err != nil {
		return "", err
	}
	if !k.exportable {
		return "", ErrNotExportable
	}

	b, err := json.Marshal(jsonWebKey{
		KeyType:   "oct",
		Algorithm: k.algorithm,
		K:         base64.RawURLEncoding.EncodeToString(k.material),
		Ext:       true,
		KeyOps:    []string{"encrypt", "decrypt"},
	})
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// Import deserializes a JWK string produced by Export back into a Key. The "ext" flag of the JWK
// is carried over, so a key imported from a string lacking it cannot be exported again.
func Import(keyString string) (Key, error) {
	var jwk jsonWebKey
	if err := json.Unmarshal([]byte(keyString), &jwk); err != nil {
		return Key{}, ErrMalformedKeyString
	}
	if jwk.KeyType != "oct" {
		return Key{}, ErrMalformedKeyString
	}
	if jwk.Algorithm != "" && jwk.Algorithm != AlgorithmAESGCM {
		return Key{}, ErrMalformedKeyString
	}
	if jwk.K == "" {
		return Key{}, ErrMalformedKeyString
	}

	material, err := base64.RawURLEncoding.DecodeString(jwk.K)
	if err != nil {
		return Key{}, ErrMalformedKeyString
	}
	if len(material) != crypto.KeyLength {
		return Key{}, ErrMalformedKeyString
	}

	return Key{
		material:   material,
		algorithm:  AlgorithmAESGCM,
		exportable: jwk.Ext,
	}, nil
}
