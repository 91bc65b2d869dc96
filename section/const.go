package section

// Signature is the canonical four-byte magic at offset 0 of every IFC
// artifact.
var Signature = [SignatureSize]byte{0x54, 0x51, 0x45, 0x1A}

const (
	// SignatureSize is the byte size of the file signature.
	SignatureSize = 4

	// FileHeaderSize is the byte size of the file header that immediately
	// follows the signature.
	FileHeaderSize = 28

	// PartitionSummarySize is the byte size of one table-of-contents entry.
	PartitionSummarySize = 16
)
