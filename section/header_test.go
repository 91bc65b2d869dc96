package section

import (
	"testing"

	"github.com/arloliu/ifc/endian"
	"github.com/arloliu/ifc/errs"
	"github.com/arloliu/ifc/format"
	"github.com/stretchr/testify/require"
)

func TestFileHeader_RoundTrip(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	original := FileHeader{
		Major:            1,
		Minor:            4,
		StringTableBytes: 0x100,
		StringTableSize:  0x40,
		Unit:             format.MakeUnitIndex(format.UnitSortPrimary, 3),
		GlobalScope:      2,
		TOC:              0x140,
		PartitionCount:   9,
	}

	data := original.Bytes(engine)
	require.Len(t, data, FileHeaderSize)

	parsed := FileHeader{}
	err := parsed.Parse(data, engine)

	require.NoError(t, err)
	require.Equal(t, original, parsed)
}

func TestFileHeader_Parse_InvalidSize(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	header := FileHeader{}
	err := header.Parse([]byte{1, 2, 3}, engine)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrCorruptedFile)
}

func TestSignature(t *testing.T) {
	require.Equal(t, [4]byte{0x54, 0x51, 0x45, 0x1A}, Signature)
}
