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

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
)

// AES256GCM implements AEADInterface.
type AES256GCM struct {
	Random RandomInterface
}

// KeyLength is the only key size accepted by AES256GCM.
const KeyLength = 32

// IVLength is the initialization vector size used on the wire. It is larger than the GCM default
// of 12 bytes, so the cipher is always instantiated with an explicit nonce size.
const IVLength = 16

const tagLength = 16

func (a *AES256GCM) Encrypt(plaintext, aad, key []byte) ([]byte, []byte, error) {
	if len(key) != KeyLength {
		return nil, nil, errors.New("invalid key length")
	}

	iv, err := a.Random.GetBytes(IVLength)
	if err != nil {
		return nil, nil, err
	}

	aesblock, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, err
	}

	aesgcm, err := cipher.NewGCMWithNonceSize(aesblock, IVLength)
	if err != nil {
		return nil, nil, err
	}

	ciphertext := aesgcm.Seal(nil, iv, plaintext, aad)

	return ciphertext, iv, nil
}

func (a *AES256GCM) Decrypt(ciphertext, iv, aad, key []byte) ([]byte, error) {
	if len(key) != KeyLength {
		return nil, errors.New("invalid key length")
	}
	if len(iv) != IVLength {
		return nil, errors.New("invalid IV length")
	}
	if len(ciphertext) < tagLength {
		return nil, errors.New("invalid ciphertext length")
	}

	aesblock, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	aesgcm, err := cipher.NewGCMWithNonceSize(aesblock, IVLength)
	if err != nil {
		return nil, err
	}

	return aesgcm.Open(nil, iv, ciphertext, aad)
}
