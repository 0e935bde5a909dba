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

package store

import (
	"context"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Bolt implements a Store Provider backed by the key/value database bolt. Each data type is kept
// in its own bucket. Buckets for data types beyond DataTypeEnd are created on first Put, so
// callers can define their own types.
type Bolt struct {
	db *bolt.DB
}

// NewBolt creates a new Store Provider that stores its data in the specified file.
func NewBolt(path string) (*Bolt, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	// Create one bucket per known data type
	err = db.Update(func(tx *bolt.Tx) error {
		for dt := DataType(0); dt < DataTypeEnd; dt++ {
			if _, err := tx.CreateBucketIfNotExists(dt.Bytes()); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Bolt{db}, nil
}

// Close releases the underlying database file.
func (b *Bolt) Close() error {
	return b.db.Close()
}

func (b *Bolt) Put(ctx context.Context, id []byte, dataType DataType, data []byte) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(dataType.Bytes())
		if err != nil {
			return err
		}
		if bucket.Get(id) != nil {
			return ErrAlreadyExists
		}
		return bucket.Put(id, data)
	})
}

func (b *Bolt) Get(ctx context.Context, id []byte, dataType DataType) ([]byte, error) {
	var out []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(dataType.Bytes())
		if bucket == nil {
			return ErrNotFound
		}
		data := bucket.Get(id)
		if data == nil {
			return ErrNotFound
		}
		// The value is only valid while the transaction is open.
		out = append(out, data...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (b *Bolt) Update(ctx context.Context, id []byte, dataType DataType, data []byte) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(dataType.Bytes())
		if bucket == nil || bucket.Get(id) == nil {
			return ErrNotFound
		}
		return bucket.Put(id, data)
	})
}

func (b *Bolt) Delete(ctx context.Context, id []byte, dataType DataType) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(dataType.Bytes())
		if bucket == nil {
			return nil
		}
		return bucket.Delete(id)
	})
}
