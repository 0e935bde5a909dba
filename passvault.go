// Copyright (C) 2026 PassVault.io
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

/*
PassVault is a library that turns password-protected payloads into self-describing vault strings.
A payload is serialized to JSON, sealed with AES-256-GCM under a key derived from the password
with PBKDF2, and packed together with the IV and salt into a single string that can be stored
anywhere and later opened with nothing but the password.
*/
package passvault

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	json "github.com/json-iterator/go"

	"github.com/passvaultio/passvault-lib/crypto"
	"github.com/passvaultio/passvault-lib/data"
	"github.com/passvaultio/passvault-lib/key"
	"github.com/passvaultio/passvault-lib/log"
)

// Error returned if a vault cannot be decrypted with the given password or key. Wrong passwords,
// wrong keys, and tampered vaults are deliberately indistinguishable so that failed attempts leak
// nothing beyond pass/fail.
var ErrIncorrectPassword = errors.New("incorrect password")

// Error returned if a successfully decrypted payload cannot be parsed back into the caller's
// type. This points at a codec mismatch between sealing and unsealing, not at a wrong password.
var ErrInvalidPayload = errors.New("invalid payload")

// DefaultSaltLength is the number of random bytes drawn for a salt when the library generates one.
const DefaultSaltLength = 32

// PassVault is the entry point to the library. All main functionality is exposed through methods
// on this struct.
type PassVault struct {
	random  crypto.RandomInterface
	aead    crypto.AEADInterface
	deriver key.Deriver
}

// New creates a new instance of PassVault with the native random source, AES-256-GCM, and PBKDF2
// with HMAC-SHA-256 at the default iteration count.
func New() PassVault {
	random := &crypto.NativeRandom{}
	return PassVault{
		random:  random,
		aead:    &crypto.AES256GCM{Random: random},
		deriver: key.NewDeriver(),
	}
}

// NewWithProviders creates a new instance of PassVault configured with the given providers.
// Vaults are only portable between instances configured with compatible providers.
func NewWithProviders(random crypto.RandomInterface, aead crypto.AEADInterface, kdf crypto.KDFInterface) PassVault {
	return PassVault{
		random:  random,
		aead:    aead,
		deriver: key.NewDeriverWithKDF(kdf),
	}
}

// GenerateSalt draws byteCount cryptographically secure random bytes and base64-encodes them.
func (p *PassVault) GenerateSalt(byteCount uint) (string, error) {
	if byteCount == 0 {
		return "", key.ErrInvalidInput
	}
	salt, err := p.random.GetBytes(byteCount)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(salt), nil
}

// DeriveKey derives a vault key from the password and a base64 encoded salt, e.g. one produced by
// GenerateSalt. The exportable flag controls whether the key can be serialized with Export.
func (p *PassVault) DeriveKey(ctx context.Context, password, salt string, exportable bool) (key.Key, error) {
	saltBytes, err := base64.StdEncoding.DecodeString(salt)
	if err != nil {
		return key.Key{}, key.ErrInvalidInput
	}
	return p.deriver.Derive(ctx, password, saltBytes, exportable)
}

// Encrypt seals the payload under a key derived from the password and a fresh salt, and returns
// the vault string. The salt is embedded in the vault, so the password alone opens it again.
func (p *PassVault) Encrypt(ctx context.Context, password string, payload any) (string, error) {
	ctx = log.CopyCtxLogger(ctx)
	log.WithMethod(ctx, "encrypt")

	salt, err := p.GenerateSalt(DefaultSaltLength)
	if err != nil {
		return "", err
	}

	k, err := p.DeriveKey(ctx, password, salt, false)
	if err != nil {
		return "", err
	}

	vault, err := p.sealWithKey(ctx, &k, payload, salt)
	if err != nil {
		return "", err
	}

	return vault.String()
}

// EncryptWithDetail works like Encrypt but derives an exportable key and additionally returns its
// exported form and the salt. Callers can cache the key string and skip the key derivation on
// subsequent operations on the same vault.
func (p *PassVault) EncryptWithDetail(ctx context.Context, password string, payload any) (string, Detail, error) {
	ctx = log.CopyCtxLogger(ctx)
	log.WithMethod(ctx, "encrypt with detail")

	salt, err := p.GenerateSalt(DefaultSaltLength)
	if err != nil {
		return "", Detail{}, err
	}

	k, err := p.DeriveKey(ctx, password, salt, true)
	if err != nil {
		return "", Detail{}, err
	}

	exported, err := k.Export()
	if err != nil {
		return "", Detail{}, err
	}

	vault, err := p.sealWithKey(ctx, &k, payload, salt)
	if err != nil {
		return "", Detail{}, err
	}

	vaultString, err := vault.String()
	if err != nil {
		return "", Detail{}, err
	}

	return vaultString, Detail{ExportedKey: exported, Salt: salt}, nil
}

// EncryptWithKey seals the payload directly with the given key and returns the vault without
// serializing it. No salt is attached; callers deriving the key from a password themselves are
// responsible for tracking the salt, e.g. by setting the Salt field before serializing:
//
//	salt, _ := p.GenerateSalt(passvault.DefaultSaltLength)
//	k, _ := p.DeriveKey(ctx, password, salt, false)
//	vault, _ := p.EncryptWithKey(ctx, &k, payload)
//	vault.Salt = salt
//	vaultString, _ := vault.String()
func (p *PassVault) EncryptWithKey(ctx context.Context, k *key.Key, payload any) (data.Vault, error) {
	ctx = log.CopyCtxLogger(ctx)
	log.WithMethod(ctx, "encrypt with key")

	if k == nil {
		return data.Vault{}, key.ErrInvalidInput
	}
	log.WithKey(ctx, k.Fingerprint())

	return p.sealWithKey(ctx, k, payload, "")
}

// Decrypt opens a vault string sealed by Encrypt, re-deriving the key from the password and the
// embedded salt, and parses the payload into the provided pointer. A vault lacking a salt cannot
// be opened by password and fails with data.ErrInvalidVault.
func (p *PassVault) Decrypt(ctx context.Context, password, vaultString string, payload any) error {
	ctx = log.CopyCtxLogger(ctx)
	log.WithMethod(ctx, "decrypt")

	vault, err := data.VaultFromString(vaultString)
	if err != nil {
		return err
	}

	k, err := p.deriveFromVault(ctx, password, &vault, false)
	if err != nil {
		return err
	}

	return p.unsealWithKey(ctx, &k, vault, payload)
}

// DecryptWithDetail works like Decrypt but derives an exportable key and additionally returns its
// exported form and the vault's salt, so the caller can cache the key for subsequent operations
// without re-deriving it from the password.
func (p *PassVault) DecryptWithDetail(ctx context.Context, password, vaultString string, payload any) (Detail, error) {
	ctx = log.CopyCtxLogger(ctx)
	log.WithMethod(ctx, "decrypt with detail")

	vault, err := data.VaultFromString(vaultString)
	if err != nil {
		return Detail{}, err
	}

	k, err := p.deriveFromVault(ctx, password, &vault, true)
	if err != nil {
		return Detail{}, err
	}

	exported, err := k.Export()
	if err != nil {
		return Detail{}, err
	}

	if err := p.unsealWithKey(ctx, &k, vault, payload); err != nil {
		return Detail{}, err
	}

	return Detail{ExportedKey: exported, Salt: vault.Salt}, nil
}

// DecryptWithKey opens a vault with the given key, ignoring any salt the vault may carry, and
// parses the payload into the provided pointer.
func (p *PassVault) DecryptWithKey(ctx context.Context, k *key.Key, vault data.Vault, payload any) error {
	ctx = log.CopyCtxLogger(ctx)
	log.WithMethod(ctx, "decrypt with key")

	if k == nil {
		return key.ErrInvalidInput
	}
	log.WithKey(ctx, k.Fingerprint())

	return p.unsealWithKey(ctx, k, vault, payload)
}

// Detail carries the by-products of the WithDetail operations: the exported key string and the
// base64 encoded salt the key was derived from.
type Detail struct {
	ExportedKey string
	Salt        string
}

// deriveFromVault derives the vault's key from the password and the salt embedded in the vault.
func (p *PassVault) deriveFromVault(ctx context.Context, password string, vault *data.Vault, exportable bool) (key.Key, error) {
	if vault.Salt == "" {
		return key.Key{}, data.ErrInvalidVault
	}
	saltBytes, err := base64.StdEncoding.DecodeString(vault.Salt)
	if err != nil {
		return key.Key{}, data.ErrInvalidVault
	}
	return p.deriver.Derive(ctx, password, saltBytes, exportable)
}

// sealWithKey serializes the payload, seals it under a fresh IV, and packs the result into a
// vault carrying the given salt.
func (p *PassVault) sealWithKey(ctx context.Context, k *key.Key, payload any, salt string) (data.Vault, error) {
	if err := k.Validate(); err != nil {
		return data.Vault{}, err
	}

	log.Ctx(ctx).Debug().Msg("serializing payload")
	plaintext, err := json.Marshal(payload)
	if err != nil {
		return data.Vault{}, err
	}

	log.Ctx(ctx).Debug().Msg("sealing payload")
	ciphertext, iv, err := p.aead.Encrypt(plaintext, nil, k.Material())
	if err != nil {
		return data.Vault{}, err
	}

	return data.Vault{
		Data: base64.StdEncoding.EncodeToString(ciphertext),
		IV:   base64.StdEncoding.EncodeToString(iv),
		Salt: salt,
	}, nil
}

// unsealWithKey decodes the vault fields, opens the ciphertext, and parses the plaintext into
// the payload pointer. All decode and decryption failures surface as ErrIncorrectPassword.
func (p *PassVault) unsealWithKey(ctx context.Context, k *key.Key, vault data.Vault, payload any) error {
	if err := k.Validate(); err != nil {
		return err
	}

	ciphertext, err := base64.StdEncoding.DecodeString(vault.Data)
	if err != nil {
		return ErrIncorrectPassword
	}
	iv, err := base64.StdEncoding.DecodeString(vault.IV)
	if err != nil {
		return ErrIncorrectPassword
	}

	log.Ctx(ctx).Debug().Msg("unsealing payload")
	plaintext, err := p.aead.Decrypt(ciphertext, iv, nil, k.Material())
	if err != nil {
		return ErrIncorrectPassword
	}

	log.Ctx(ctx).Debug().Msg("parsing payload")
	if err := json.Unmarshal(plaintext, payload); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	return nil
}
