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

package crypto

// AEADInterface represents an Authenticated Encryption scheme with Associated Data which keeps
// the initialization vector separate from the ciphertext. The vault format stores ciphertext and
// IV as distinct fields, so implementations must not fold one into the other.
type AEADInterface interface {
	// Encrypt uses the key to encrypt and authenticate the plaintext and authenticate the
	// associated data under a fresh initialization vector. The ciphertext (with the
	// authentication tag appended) and the IV are returned separately.
	Encrypt(plaintext, data, key []byte) (ciphertext, iv []byte, err error)

	// Decrypt uses the key and IV to verify the authenticity of the ciphertext and associated
	// data and decrypt the ciphertext.
	Decrypt(ciphertext, iv, data, key []byte) ([]byte, error)
}

// RandomInterface provides an API for getting cryptographically secure random bytes.
type RandomInterface interface {
	// GetBytes generates the requested number of random bytes.
	GetBytes(n uint) ([]byte, error)
}

// KDFInterface provides an API for deriving fixed-length keys from low-entropy secrets such as
// passwords.
type KDFInterface interface {
	// DeriveKey derives a keyLength byte key from the secret and salt. The derivation is
	// deterministic: identical inputs produce an identical key.
	DeriveKey(secret, salt []byte, keyLength uint) ([]byte, error)
}
