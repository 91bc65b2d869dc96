package blob

import (
	"errors"
	"testing"

	"github.com/arloliu/ifc/errs"
	"github.com/arloliu/ifc/format"
	"github.com/arloliu/ifc/internal/testblob"
	"github.com/arloliu/ifc/record"
	"github.com/stretchr/testify/require"
)

// requirePanicsIs asserts that fn panics with an error matching target.
func requirePanicsIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value is not an error: %v", r)
		require.ErrorIs(t, err, target)
	}()
	fn()
}

func TestOpen_MinimalBlob(t *testing.T) {
	data := testblob.New().Build()

	f, err := Open(data)

	require.NoError(t, err)
	require.Empty(t, f.TableOfContents())
	require.Equal(t, format.Cardinality(0), f.Header().PartitionCount)
	require.Equal(t, format.Cardinality(0), f.Header().StringTableSize)
}

func TestOpen_CorruptedSignature(t *testing.T) {
	t.Run("Wrong magic", func(t *testing.T) {
		data := testblob.New().Build()
		data[0] = 0xFF

		_, err := Open(data)

		require.ErrorIs(t, err, errs.ErrCorruptedSignature)
	})

	t.Run("Blob shorter than signature", func(t *testing.T) {
		_, err := Open([]byte{0x54, 0x51})

		require.ErrorIs(t, err, errs.ErrCorruptedSignature)
	})
}

func TestOpen_SizeMismatch(t *testing.T) {
	build := func() []byte {
		b := testblob.New()
		testblob.AddRecords(b, "scope.desc", []format.Sequence{{Start: 0, Size: 0}})
		return b.Build()
	}

	t.Run("Partition count flipped", func(t *testing.T) {
		data := build()
		// partition_count lives at header offset 24, after the signature.
		data[28] = 0

		_, err := Open(data)

		require.ErrorIs(t, err, errs.ErrCorruptedFile)
	})

	t.Run("String table size grown", func(t *testing.T) {
		data := build()
		// string_table_size lives at header offset 8, after the signature.
		data[12]++

		_, err := Open(data)

		require.ErrorIs(t, err, errs.ErrCorruptedFile)
	})

	t.Run("Truncated by one byte", func(t *testing.T) {
		data := build()

		_, err := Open(data[:len(data)-1])

		require.ErrorIs(t, err, errs.ErrCorruptedFile)
	})

	t.Run("Intact blob still opens", func(t *testing.T) {
		_, err := Open(build())

		require.NoError(t, err)
	})
}

func TestOpen_DuplicatePartitionName(t *testing.T) {
	b := testblob.New()
	testblob.AddRecords(b, "scope.desc", []format.Sequence{{Start: 0, Size: 0}})
	testblob.AddRecords(b, "scope.desc", []format.Sequence{{Start: 0, Size: 0}})

	_, err := Open(b.Build())

	require.ErrorIs(t, err, errs.ErrDuplicatePartition)
}

func TestGlobalScope(t *testing.T) {
	b := testblob.New().SetGlobalScope(0)
	testblob.AddRecords(b, "scope.desc", []format.Sequence{{Start: 0, Size: 0}})

	f, err := Open(b.Build())

	require.NoError(t, err)
	require.Equal(t, format.Sequence{Start: 0, Size: 0}, f.GlobalScope())
}

func TestGetString(t *testing.T) {
	b := testblob.New()
	off := b.AddString("std.core")
	testblob.AddRecords(b, "scope.desc", []format.Sequence{{Start: 0, Size: 0}})

	f, err := Open(b.Build())
	require.NoError(t, err)

	t.Run("Interned string", func(t *testing.T) {
		require.Equal(t, "std.core", f.GetString(off))
	})

	t.Run("Null offset is empty", func(t *testing.T) {
		require.Equal(t, "", f.GetString(0))
	})

	t.Run("Partition names are NUL-terminated in table", func(t *testing.T) {
		for _, summary := range f.TableOfContents() {
			require.Equal(t, "scope.desc", f.GetString(summary.Name))
		}
	})

	t.Run("Offset beyond table panics", func(t *testing.T) {
		requirePanicsIs(t, errs.ErrTextOutOfRange, func() {
			f.GetString(format.TextOffset(0xFFFF))
		})
	})
}

type stubEnv struct {
	requested []string
	files     map[string]*File
}

func (e *stubEnv) ModuleByName(name string) (*File, error) {
	e.requested = append(e.requested, name)
	if f, ok := e.files[name]; ok {
		return f, nil
	}

	return nil, errors.New("module not found")
}

func TestImportedModule(t *testing.T) {
	env := &stubEnv{files: map[string]*File{}}

	b := testblob.New()
	stdOff := b.AddString("std")
	ownerOff := b.AddString("mylib")
	partOff := b.AddString("impl")
	testblob.AddRecords(b, "module.imported", []record.ModuleReference{
		{Owner: 0, Partition: stdOff},
	})

	f, err := Open(b.Build(), WithEnvironment(env))
	require.NoError(t, err)

	other, err := Open(testblob.New().Build())
	require.NoError(t, err)
	env.files["std"] = other

	t.Run("Global module resolved by partition alone", func(t *testing.T) {
		ref := *f.ImportedModules().At(0)

		resolved, err := f.ImportedModule(ref)

		require.NoError(t, err)
		require.Same(t, other, resolved)
		require.Equal(t, []string{"std"}, env.requested)
	})

	t.Run("Owner with partition joins with colon", func(t *testing.T) {
		env.requested = nil

		_, _ = f.ImportedModule(record.ModuleReference{Owner: ownerOff, Partition: partOff})

		require.Equal(t, []string{"mylib:impl"}, env.requested)
	})

	t.Run("Owner alone", func(t *testing.T) {
		env.requested = nil

		_, _ = f.ImportedModule(record.ModuleReference{Owner: ownerOff, Partition: 0})

		require.Equal(t, []string{"mylib"}, env.requested)
	})

	t.Run("No environment", func(t *testing.T) {
		bare, err := Open(testblob.New().Build())
		require.NoError(t, err)

		_, err = bare.ImportedModule(record.ModuleReference{})

		require.ErrorIs(t, err, errs.ErrNoEnvironment)
	})
}
