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

package passvault

import (
	"encoding/hex"
	"errors"
	"strings"
)

// Error returned if a hex string cannot be decoded into bytes.
var ErrMalformedHex = errors.New("malformed hex string")

// SerializeBufferForStorage encodes a buffer as a "0x" prefixed lowercase hex string. It is a
// plain serialization helper for callers storing raw buffers alongside vaults; the vault codec
// itself never uses it.
func SerializeBufferForStorage(buffer []byte) string {
	return "0x" + hex.EncodeToString(buffer)
}

// SerializeBufferFromStorage decodes a hex string, with or without a "0x" prefix, back into
// bytes. Odd-length input and non-hex characters fail with ErrMalformedHex.
func SerializeBufferFromStorage(hexString string) ([]byte, error) {
	buffer, err := hex.DecodeString(strings.TrimPrefix(hexString, "0x"))
	if err != nil {
		return nil, ErrMalformedHex
	}
	return buffer, nil
}
