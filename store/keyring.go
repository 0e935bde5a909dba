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
	"encoding/base64"
	"errors"
	"fmt"
	"sync"

	"github.com/zalando/go-keyring"
)

// Keyring implements a Store Provider on top of the OS keyring. Artifacts are stored as secrets
// under a configurable service name. Intended for small numbers of vaults such as per-user
// credential setups; OS keyrings are not built for bulk data. Operations are serialized by an
// internal lock, so the existence checks in Put and Update hold only within a single process.
type Keyring struct {
	service string
	mtx     sync.Mutex
}

// NewKeyring creates a new Store Provider storing data under the given service name.
func NewKeyring(service string) *Keyring {
	return &Keyring{service: service}
}

func (k *Keyring) secretName(id []byte, dataType DataType) string {
	return fmt.Sprintf("%x:%s", id, dataType)
}

func (k *Keyring) Put(ctx context.Context, id []byte, dataType DataType, data []byte) error {
	k.mtx.Lock()
	defer k.mtx.Unlock()

	name := k.secretName(id, dataType)
	_, err := keyring.Get(k.service, name)
	switch {
	case err == nil:
		return ErrAlreadyExists
	case !errors.Is(err, keyring.ErrNotFound):
		return err
	}
	return keyring.Set(k.service, name, base64.StdEncoding.EncodeToString(data))
}

func (k *Keyring) Get(ctx context.Context, id []byte, dataType DataType) ([]byte, error) {
	k.mtx.Lock()
	defer k.mtx.Unlock()

	secret, err := keyring.Get(k.service, k.secretName(id, dataType))
	if errors.Is(err, keyring.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return base64.StdEncoding.DecodeString(secret)
}

func (k *Keyring) Update(ctx context.Context, id []byte, dataType DataType, data []byte) error {
	k.mtx.Lock()
	defer k.mtx.Unlock()

	name := k.secretName(id, dataType)
	if _, err := keyring.Get(k.service, name); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return keyring.Set(k.service, name, base64.StdEncoding.EncodeToString(data))
}

func (k *Keyring) Delete(ctx context.Context, id []byte, dataType DataType) error {
	k.mtx.Lock()
	defer k.mtx.Unlock()

	err := keyring.Delete(k.service, k.secretName(id, dataType))
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
