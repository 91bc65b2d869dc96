// Package section defines the fixed-layout structures at the front of an IFC
// artifact: the four-byte file signature, the file header, and the partition
// descriptors that make up the table of contents.
//
// Each structure provides a Parse method decoding it from raw bytes through
// an endian engine and a Bytes method producing the on-disk layout, so that
// readers and artifact-producing tools share one definition of the format.
package section
