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

package passvault_test

import (
	"context"
	"fmt"
	"log"

	passvaultlib "github.com/passvaultio/passvault-lib"
	"github.com/passvaultio/passvault-lib/data"
	"github.com/passvaultio/passvault-lib/key"
)

// This example demonstrates how to keep the derived key alongside the vault so that later
// operations can skip the expensive key derivation, e.g. for the duration of a session.
func Example_keyExport() {
	ctx := context.Background()

	pv := passvaultlib.New()

	vaultString, detail, err := pv.EncryptWithDetail(ctx, "master password", "Hello, World!")
	if err != nil {
		log.Fatalf("Error encrypting payload: %v", err)
	}

	// The exported key opens the vault without the password.
	k, err := key.Import(detail.ExportedKey)
	if err != nil {
		log.Fatalf("Error importing key: %v", err)
	}

	vault, err := data.VaultFromString(vaultString)
	if err != nil {
		log.Fatalf("Error parsing vault: %v", err)
	}

	var decrypted string
	if err := pv.DecryptWithKey(ctx, &k, vault, &decrypted); err != nil {
		log.Fatalf("Error decrypting vault: %v", err)
	}

	fmt.Printf("Decrypted payload: %s", decrypted)

	// Output: Decrypted payload: Hello, World!
}
