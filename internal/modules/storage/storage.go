package storage

import (
	"io"
)

// Store is where compressed artifacts live. Filenames are uuid-based and
// unique, so Save never overwrites user data.
type Store interface {
	Save(name string, r io.Reader) error
	Delete(name string) error
	Exists(name string) bool
	// URL returns where a client can download the artifact. Local storage
	// yields a static path, OSS a presigned URL.
	URL(name string) (string, error)
	Supplier() string
}

// Artifacts is the configured artifact store, set once during startup.
var Artifacts Store
