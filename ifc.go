// Package ifc reads the binary artifacts a C++ module compiler emits for
// translated module interfaces: self-describing partitioned blobs holding
// the module's declarations, types, expressions, attributes, syntax trees,
// names, charts and literals.
//
// The reader is zero-copy and lazy. Open validates the blob's structure
// (signature and computed size) once; after that every partition is exposed
// as a strongly typed, index-addressable view directly over the blob's
// bytes, resolved on first access and memoized for the file's lifetime.
// Cross-reference trait maps (declaration attributes, deprecation texts,
// friendships, template specializations) materialize lazily the same way.
//
// # Basic Usage
//
// Opening an artifact already in memory:
//
//	file, err := ifc.Open(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	module := view.NewModule(file)
//	for decl := range module.GlobalNamespace().Declarations() {
//	    fmt.Println(decl.Sort())
//	}
//
// Loading from disk, transparently undoing at-rest compression:
//
//	file, err := ifc.Load("std.ifc.zst")
//
// Resolving imported modules requires an environment:
//
//	file, err := ifc.Open(data, blob.WithEnvironment(env))
//
// # Package Structure
//
// This package provides the entry points; the heavy lifting lives below:
//
//   - blob: the core reader (validation, partitions, caches, traits)
//   - view: domain wrappers over raw records (modules, scopes, names)
//   - record: the fixed-size record layouts of every partition family
//   - format: index types, sorts and scalar vocabulary
//   - section: the file header and table-of-contents layouts
//   - compress: at-rest codecs used by Load
package ifc

import (
	"fmt"
	"os"

	"github.com/arloliu/ifc/blob"
	"github.com/arloliu/ifc/compress"
)

// Open constructs a reader over artifact bytes already in memory.
//
// The blob is borrowed, never copied: it must outlive the returned file and
// everything derived from it, and must start at an 8-byte-aligned address
// (any Go-allocated buffer qualifies).
//
// Parameters:
//   - data: The artifact bytes.
//   - opts: Optional configuration, e.g. blob.WithEnvironment.
//
// Returns:
//   - *blob.File: The opened file.
//   - error: An error if the blob is structurally corrupted.
func Open(data []byte, opts ...blob.Option) (*blob.File, error) {
	return blob.Open(data, opts...)
}

// Load reads an artifact from disk and opens it.
//
// The file may be stored raw or compressed with any codec the compress
// package supports; the framing is detected from the leading bytes and
// undone before the blob is opened. The decompressed (or freshly read)
// buffer is allocated by the Go runtime and therefore aligned for the
// reader's record layouts.
//
// Parameters:
//   - path: Filesystem path of the stored artifact.
//   - opts: Optional configuration, e.g. blob.WithEnvironment.
//
// Returns:
//   - *blob.File: The opened file, owning no reference to the path.
//   - error: A read, decompression or validation error.
func Load(path string, opts ...blob.Option) (*blob.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read artifact: %w", err)
	}

	codec, err := compress.GetCodec(compress.Detect(data))
	if err != nil {
		return nil, err
	}

	blobBytes, err := codec.Decompress(data)
	if err != nil {
		return nil, err
	}

	return blob.Open(blobBytes, opts...)
}
