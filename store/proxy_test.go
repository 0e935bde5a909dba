// Copyright (C) 2026 PassVault.io

package store

import (
	"testing"

	"bytes"
	"context"
	"errors"

	"github.com/gofrs/uuid"
)

// Test that the proxy forwards calls to the wrapped provider by default.
func TestProxyForwards(t *testing.T) {
	proxy := NewProxy(NewMem())

	data := []byte("mock data")
	id := uuid.Must(uuid.NewV4()).Bytes()

	if err := proxy.Put(context.Background(), id, DataTypeVault, data); err != nil {
		t.Fatal(err)
	}
	fetched, err := proxy.Get(context.Background(), id, DataTypeVault)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, fetched) {
		t.Fatalf("returned data (%+v) not equal to original (%+v)", fetched, data)
	}
}

// Test that individual functions can be replaced to inject faults.
func TestProxyOverride(t *testing.T) {
	injected := errors.New("injected failure")

	proxy := NewProxy(NewMem())
	proxy.GetFunc = func(ctx context.Context, id []byte, dataType DataType) ([]byte, error) {
		return nil, injected
	}

	id := uuid.Must(uuid.NewV4()).Bytes()
	if err := proxy.Put(context.Background(), id, DataTypeVault, []byte("mock data")); err != nil {
		t.Fatal(err)
	}
	if _, err := proxy.Get(context.Background(), id, DataTypeVault); !errors.Is(err, injected) {
		t.Fatalf("Expected %v but got %v", injected, err)
	}
}
