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

package data

import (
	"errors"

	json "github.com/json-iterator/go"
)

// Error returned if a vault string cannot be parsed or lacks required fields.
var ErrInvalidVault = errors.New("invalid vault")

// Vault is the self-describing unit produced by sealing a payload. All fields hold standard
// base64 as found on the wire; they are only decoded when the vault is unsealed.
type Vault struct {
	// Ciphertext of the sealed payload, with the authentication tag appended.
	Data string `json:"data"`

	// Initialization vector the payload was sealed under.
	IV string `json:"iv"`

	// Salt the vault key was derived from. Absent if the vault was sealed with an explicit key,
	// in which case the caller tracks the salt out of band.
	Salt string `json:"salt,omitempty"`
}

// String serializes the vault into its JSON wire format.
func (v *Vault) String() (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VaultFromString parses a vault string back into a Vault. The ciphertext and IV are required;
// their contents are not decoded or authenticated here.
func VaultFromString(vaultString string) (Vault, error) {
	var vault Vault
	if err := json.Unmarshal([]byte(vaultString), &vault); err != nil {
		return Vault{}, ErrInvalidVault
	}
	if vault.Data == "" || vault.IV == "" {
		return Vault{}, ErrInvalidVault
	}
	return vault, nil
}
