package ifc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arloliu/ifc/compress"
	"github.com/arloliu/ifc/errs"
	"github.com/arloliu/ifc/format"
	"github.com/arloliu/ifc/internal/testblob"
	"github.com/stretchr/testify/require"
)

func buildArtifact(t *testing.T) []byte {
	t.Helper()

	b := testblob.New().SetGlobalScope(0)
	testblob.AddRecords(b, "scope.desc", []format.Sequence{{Start: 0, Size: 0}})

	return b.Build()
}

func TestOpen(t *testing.T) {
	f, err := Open(buildArtifact(t))

	require.NoError(t, err)
	require.Equal(t, format.Sequence{}, f.GlobalScope())
}

func TestLoad_Raw(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mod.ifc")
	require.NoError(t, os.WriteFile(path, buildArtifact(t), 0o644))

	f, err := Load(path)

	require.NoError(t, err)
	require.Len(t, f.TableOfContents(), 1)
}

func TestLoad_Compressed(t *testing.T) {
	for _, compression := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(compression.String(), func(t *testing.T) {
			codec, err := compress.GetCodec(compression)
			require.NoError(t, err)

			stored, err := codec.Compress(buildArtifact(t))
			require.NoError(t, err)

			path := filepath.Join(t.TempDir(), "mod.ifc")
			require.NoError(t, os.WriteFile(path, stored, 0o644))

			f, err := Load(path)

			require.NoError(t, err)
			require.Len(t, f.TableOfContents(), 1)
		})
	}
}

func TestLoad_Corrupted(t *testing.T) {
	data := buildArtifact(t)
	data[0] = 0x00

	path := filepath.Join(t.TempDir(), "mod.ifc")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	_, err := Load(path)

	require.ErrorIs(t, err, errs.ErrCorruptedSignature)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.ifc"))

	require.Error(t, err)
}
