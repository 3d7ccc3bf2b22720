// Package store provides core.Store implementations. The engine serializes
// its entire state as one JSON document; stores only need to keep the most
// recent snapshot per terminal and hand it back on startup.
package store

import "celtis-pos/internal/core"

var (
	_ core.Store = (*FileStore)(nil)
	_ core.Store = (*PostgresStore)(nil)
)
