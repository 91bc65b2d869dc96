package section

import (
	"testing"
	"unsafe"

	"github.com/arloliu/ifc/endian"
	"github.com/arloliu/ifc/errs"
	"github.com/stretchr/testify/require"
)

func TestPartitionSummary_RoundTrip(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	original := PartitionSummary{
		Name:        12,
		Offset:      0x200,
		Cardinality: 5,
		EntrySize:   16,
	}

	data := original.Bytes(engine)
	require.Len(t, data, PartitionSummarySize)

	parsed := PartitionSummary{}
	err := parsed.Parse(data, engine)

	require.NoError(t, err)
	require.Equal(t, original, parsed)
}

func TestPartitionSummary_Parse_InvalidSize(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	summary := PartitionSummary{}
	err := summary.Parse(make([]byte, PartitionSummarySize-1), engine)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidTOC)
}

func TestPartitionSummary_SizeBytes(t *testing.T) {
	summary := PartitionSummary{Cardinality: 7, EntrySize: 12}

	require.Equal(t, 84, summary.SizeBytes())
}

func TestPartitionSummary_LayoutMatchesDisk(t *testing.T) {
	// The TOC is viewed in place as []PartitionSummary, so the struct size
	// must equal the on-disk descriptor size.
	require.Equal(t, PartitionSummarySize, int(unsafe.Sizeof(PartitionSummary{})))
}
