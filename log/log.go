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

package log

import (
	"context"

	"github.com/rs/zerolog"
)

// Ctx returns the logger attached to the context. If the context holds no logger, a disabled
// logger is returned.
func Ctx(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// CopyCtxLogger returns a new context holding a copy of the context's logger. Fields added
// through the copy do not leak into the logger of the parent context.
func CopyCtxLogger(ctx context.Context) context.Context {
	logger := zerolog.Ctx(ctx).With().Logger()
	return logger.WithContext(ctx)
}

// WithMethod adds a method field to the context's logger.
func WithMethod(ctx context.Context, method string) {
	zerolog.Ctx(ctx).UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("method", method)
	})
}

// WithKey adds a key fingerprint field to the context's logger.
func WithKey(ctx context.Context, fingerprint string) {
	zerolog.Ctx(ctx).UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("key", fingerprint)
	})
}
