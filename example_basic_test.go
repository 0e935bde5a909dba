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
)

// This is a basic example demonstrating how to use the library to seal a payload with a password
// and open it again.
func Example_basicEncryptDecrypt() {
	ctx := context.Background()

	// Instantiate the library with the default providers.
	pv := passvaultlib.New()

	// Seal a payload with a password. The resulting vault string carries everything needed to
	// open it again.
	vaultString, err := pv.Encrypt(ctx, "master password", map[string]string{"secret": "Hello, World!"})
	if err != nil {
		log.Fatalf("Error encrypting payload: %v", err)
	}

	// Open the vault with the same password.
	decrypted := map[string]string{}
	if err := pv.Decrypt(ctx, "master password", vaultString, &decrypted); err != nil {
		log.Fatalf("Error decrypting vault: %v", err)
	}

	fmt.Printf("Decrypted payload: %s", decrypted["secret"])

	// Output: Decrypted payload: Hello, World!
}
