package respaldo

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageListar(t *testing.T) {
	s, err := NewStorage(t.TempDir())
	require.NoError(t, err)

	list, err := s.Listar()
	require.NoError(t, err)
	assert.Empty(t, list)

	viejo := filepath.Join(s.Dir, "backup-viejo.dump")
	nuevo := filepath.Join(s.Dir, "backup-nuevo.dump")
	require.NoError(t, os.WriteFile(viejo, []byte("aa"), 0o644))
	require.NoError(t, os.WriteFile(nuevo, []byte("bbbb"), 0o644))
	// fuerza orden de modificación determinístico
	require.NoError(t, os.Chtimes(viejo, time.Now().Add(-time.Hour), time.Now().Add(-time.Hour)))

	// los subdirectorios no se listan
	require.NoError(t, os.Mkdir(filepath.Join(s.Dir, "tmp"), 0o755))

	list, err = s.Listar()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "backup-nuevo.dump", list[0].Filename, "el más nuevo primero")
	assert.Equal(t, int64(4), list[0].Size)
	assert.Equal(t, "backup-viejo.dump", list[1].Filename)
}

func TestStoragePathRechazaTraversal(t *testing.T) {
	s, err := NewStorage(t.TempDir())
	require.NoError(t, err)

	for _, nombre := range []string{"../fuga.dump", "a/b.dump", "..", ""} {
		_, err := s.Path(nombre)
		assert.ErrorIs(t, err, ErrNombreInvalido, "nombre %q", nombre)
	}

	path, err := s.Path("backup-ok.dump")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.Dir, "backup-ok.dump"), path)
}

func TestStorageEliminarYExiste(t *testing.T) {
	s, err := NewStorage(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(s.Dir, "b.dump"), []byte("x"), 0o644))
	assert.True(t, s.Existe("b.dump"))

	require.NoError(t, s.Eliminar("b.dump"))
	assert.False(t, s.Existe("b.dump"))

	assert.ErrorIs(t, s.Eliminar("../b.dump"), ErrNombreInvalido)
}
