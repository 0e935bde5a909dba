// Package store contains the definition of the Store Provider, as well as various implementations
// of the concept. A Store Provider persists sealed vaults and exported key strings; the library
// itself never writes anywhere, so persistence is entirely delegated to these providers.
package store

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
)

// Error returned if data is not found during a "Get" or "Update" call.
var ErrNotFound = errors.New("not found")

// Error returned if data is found during a "Put" call.
var ErrAlreadyExists = errors.New("already exists")

// Types of data supported by a Store Provider.
type DataType uint16

const (
	DataTypeVault DataType = iota
	DataTypeKeyExport
	DataTypeEnd
)

// Bytes returns a byte representation of a DataType.
func (d DataType) Bytes() []byte {
	b := make([]byte, binary.MaxVarintLen16)
	binary.LittleEndian.PutUint16(b, uint16(d))
	return b
}

// String returns a string representation of a DataType.
func (d DataType) String() string {
	switch d {
	case DataTypeVault:
		return "vault"
	case DataTypeKeyExport:
		return "key export"
	default:
		return fmt.Sprintf("data type %d", uint16(d))
	}
}

// Provider is the interface a Store Provider must implement to persist vault artifacts.
type Provider interface {
	// Put sends bytes to the Store Provider. The data is identified by an ID and a data type.
	// Returns ErrAlreadyExists if data identified this way was stored before.
	Put(ctx context.Context, id []byte, dataType DataType, data []byte) error

	// Get fetches data from the Store Provider. The data is identified by an ID and a data type.
	Get(ctx context.Context, id []byte, dataType DataType) ([]byte, error)

	// Update is similar to Put but overwrites data previously sent to the Store Provider. Errors
	// if the data does not exist.
	Update(ctx context.Context, id []byte, dataType DataType, data []byte) error

	// Delete removes data previously sent to the Store Provider.
	Delete(ctx context.Context, id []byte, dataType DataType) error
}
