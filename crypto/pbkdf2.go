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
	"crypto/sha256"
	"errors"

	"golang.org/x/crypto/pbkdf2"
)

// DefaultIterations is the PBKDF2 iteration count applied by NewPBKDF2SHA256. Changing it breaks
// compatibility with previously written vaults, so treat it as part of the wire format.
const DefaultIterations = 10000

// PBKDF2SHA256 implements KDFInterface using PBKDF2 with HMAC-SHA-256.
type PBKDF2SHA256 struct {
	Iterations uint
}

// NewPBKDF2SHA256 returns a PBKDF2SHA256 provider with the default iteration count.
func NewPBKDF2SHA256() *PBKDF2SHA256 {
	return &PBKDF2SHA256{Iterations: DefaultIterations}
}

func (k *PBKDF2SHA256) DeriveKey(secret, salt []byte, keyLength uint) ([]byte, error) {
	if k.Iterations == 0 {
		return nil, errors.New("invalid iteration count")
	}
	if keyLength == 0 {
		return nil, errors.New("invalid key length")
	}
	return pbkdf2.Key(secret, salt, int(k.Iterations), int(keyLength), sha256.New), nil
}
