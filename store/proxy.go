// Copyright (C) 2026 PassVault.io

package store

import "context"

// Proxy is a Store Provider that wraps another Store Provider. By default it forwards calls
// directly to the implementation, but individual functions can be replaced to customize the
// behavior, e.g. to inject faults or record calls in tests.
type Proxy struct {
	Implementation Provider
	PutFunc        func(ctx context.Context, id []byte, dataType DataType, data []byte) error
	GetFunc        func(ctx context.Context, id []byte, dataType DataType) ([]byte, error)
	UpdateFunc     func(ctx context.Context, id []byte, dataType DataType, data []byte) error
	DeleteFunc     func(ctx context.Context, id []byte, dataType DataType) error
}

// NewProxy returns a Proxy forwarding all calls to the given implementation.
func NewProxy(implementation Provider) Proxy {
	return Proxy{
		Implementation: implementation,
		PutFunc:        implementation.Put,
		GetFunc:        implementation.Get,
		UpdateFunc:     implementation.Update,
		DeleteFunc:     implementation.Delete,
	}
}

func (p *Proxy) Put(ctx context.Context, id []byte, dataType DataType, data []byte) error {
	return p.PutFunc(ctx, id, dataType, data)
}

func (p *Proxy) Get(ctx context.Context, id []byte, dataType DataType) ([]byte, error) {
	return p.GetFunc(ctx, id, dataType)
}

func (p *Proxy) Update(ctx context.Context, id []byte, dataType DataType, data []byte) error {
	return p.UpdateFunc(ctx, id, dataType, data)
}

func (p *Proxy) Delete(ctx context.Context, id []byte, dataType DataType) error {
	return p.DeleteFunc(ctx, id, dataType)
}
