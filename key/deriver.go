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

package key

import (
	"context"
	"errors"
	"fmt"

	"github.com/passvaultio/passvault-lib/crypto"
	"github.com/passvaultio/passvault-lib/log"
)

// Error returned if the key derivation function fails to produce a key.
var ErrDerivationFailed = errors.New("key derivation failed")

// Deriver turns passwords into symmetric vault keys using a key derivation function.
type Deriver struct {
	kdf crypto.KDFInterface
}

// NewDeriver creates a Deriver using PBKDF2 with HMAC-SHA-256 at the default iteration count.
// Keys derived with a different KDF or parameters will not open vaults sealed through this one.
func NewDeriver() Deriver {
	return Deriver{kdf: crypto.NewPBKDF2SHA256()}
}

// NewDeriverWithKDF creates a Deriver using the given KDF provider.
func NewDeriverWithKDF(kdf crypto.KDFInterface) Deriver {
	return Deriver{kdf: kdf}
}

// Derive derives a key from the password and salt. The exportable flag controls whether the
// resulting key can later be serialized with Export. Identical password and salt always derive
// the same key material.
func (d *Deriver) Derive(ctx context.Context, password string, salt []byte, exportable bool) (Key, error) {
	ctx = log.CopyCtxLogger(ctx)
	log.WithMethod(ctx, "derive key")

	if password == "" {
		return Key{}, ErrInvalidInput
	}
	if len(salt) == 0 {
		return Key{}, ErrInvalidInput
	}

	log.Ctx(ctx).Debug().Int("salt length", len(salt)).Msg("deriving key")
	material, err := d.kdf.DeriveKey([]byte(password), salt, crypto.KeyLength)
	if err != nil {
		return Key{}, fmt.Errorf("%w: %v", ErrDerivationFailed, err)
	}
	if len(material) != crypto.KeyLength {
		return Key{}, ErrDerivationFailed
	}

	return Key{
		material:   material,
		algorithm:  AlgorithmAESGCM,
		exportable: exportable,
	}, nil
}
