package envstore

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFileError(t *testing.T) {
	err := &FileError{Path: "/etc/app/.env", Err: fs.ErrNotExist}

	assert.Contains(t, err.Error(), `"/etc/app/.env"`)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestFilterEnviron(t *testing.T) {
	environ := []string{
		"APP_A=1",
		"APP_B=x=y",
		"APP_EMPTY=",
		"OTHER=2",
		"=C:=C:\\",
		"MALFORMED",
	}

	assert.Equal(t, map[string]string{
		"APP_A":     "1",
		"APP_B":     "x=y",
		"APP_EMPTY": "",
	}, filterEnviron(environ, "APP_"))

	assert.Len(t, filterEnviron(environ, ""), 4)
}

func TestMemory_LookupAndSnapshot(t *testing.T) {
	m := NewMemory(map[string]string{"APP_A": "1", "OTHER": "2"})

	v, ok := m.Lookup("APP_A")
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	_, ok = m.Lookup("APP_MISSING")
	assert.False(t, ok)

	snapshot := m.Snapshot("APP_")
	assert.Equal(t, map[string]string{"APP_A": "1"}, snapshot)

	// Snapshots are copies
	snapshot["APP_A"] = "changed"
	v, _ = m.Lookup("APP_A")
	assert.Equal(t, "1", v)
}

func TestMemory_SetUnset(t *testing.T) {
	m := NewMemory(nil)
	m.Set("APP_A", "1")
	assert.Equal(t, map[string]string{"APP_A": "1"}, m.Snapshot("APP_"))

	m.Unset("APP_A")
	assert.Empty(t, m.Snapshot("APP_"))
}

func TestFromEnviron(t *testing.T) {
	m := FromEnviron([]string{"APP_A=1", "PATH=/bin"})

	v, ok := m.Lookup("PATH")
	assert.True(t, ok)
	assert.Equal(t, "/bin", v)
	assert.Equal(t, map[string]string{"APP_A": "1"}, m.Snapshot("APP_"))
}

func TestMemory_LoadFile(t *testing.T) {
	path := writeEnvFile(t, `# database
APP_DB_NAME=mydb
APP_DB_HOST=localhost

APP_DB_PASS="quoted value"
export APP_DB_USER=u
`)
	m := NewMemory(map[string]string{"APP_DB_HOST": "db.internal"})

	require.NoError(t, m.LoadFile(path))

	assert.Equal(t, map[string]string{
		"APP_DB_NAME": "mydb",
		"APP_DB_HOST": "db.internal",
		"APP_DB_PASS": "quoted value",
		"APP_DB_USER": "u",
	}, m.Snapshot("APP_"))
}

func TestLoadFile_Errors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.env")
	malformed := []struct {
		name    string
		content string
	}{
		{"bare key between assignments", "AUTHGATE_ENVSTORE_BAD_A=1\nBROKEN\nAUTHGATE_ENVSTORE_BAD_B=2\n"},
		{"bare key on last line", "AUTHGATE_ENVSTORE_BAD_A=1\nBROKEN"},
		{"only a bare key", "BROKEN"},
	}

	stores := map[string]func() Store{
		"memory":  func() Store { return NewMemory(nil) },
		"process": func() Store { return NewProcess() },
	}

	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			t.Run("missing file", func(t *testing.T) {
				err := newStore().LoadFile(missing)
				var fileErr *FileError
				require.ErrorAs(t, err, &fileErr)
				assert.Equal(t, missing, fileErr.Path)
				assert.ErrorIs(t, err, fs.ErrNotExist)
				assert.Contains(t, err.Error(), missing)
			})

			for _, tt := range malformed {
				t.Run("malformed line/"+tt.name, func(t *testing.T) {
					path := writeEnvFile(t, tt.content)
					store := newStore()

					err := store.LoadFile(path)
					var fileErr *FileError
					require.ErrorAs(t, err, &fileErr)
					assert.Equal(t, path, fileErr.Path)

					// Nothing from a rejected file is applied
					_, ok := store.Lookup("AUTHGATE_ENVSTORE_BAD_A")
					assert.False(t, ok)
					_, ok = store.Lookup("")
					assert.False(t, ok)
				})
			}

			t.Run("empty path", func(t *testing.T) {
				var fileErr *FileError
				assert.ErrorAs(t, newStore().LoadFile(""), &fileErr)
			})
		})
	}
}

func TestProcess_LoadFile(t *testing.T) {
	const (
		loaded = "AUTHGATE_ENVSTORE_TEST_LOADED"
		kept   = "AUTHGATE_ENVSTORE_TEST_KEPT"
	)
	t.Setenv(kept, "from-process")
	t.Cleanup(func() { _ = os.Unsetenv(loaded) })

	path := writeEnvFile(t, loaded+"=from-file\n"+kept+"=from-file\n")
	p := NewProcess()

	require.NoError(t, p.LoadFile(path))

	v, ok := p.Lookup(loaded)
	assert.True(t, ok)
	assert.Equal(t, "from-file", v)

	v, _ = p.Lookup(kept)
	assert.Equal(t, "from-process", v, "existing variables must not be overridden")

	assert.Equal(t, map[string]string{
		loaded: "from-file",
		kept:   "from-process",
	}, p.Snapshot("AUTHGATE_ENVSTORE_TEST_"))
}
