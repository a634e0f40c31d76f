package uploads_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Vitrina-web/internal/domain"
	"github.com/jhoicas/Vitrina-web/internal/infrastructure/uploads"
	"github.com/jhoicas/Vitrina-web/pkg/logger"
)

func newStorage() (*uploads.LocalStorage, afero.Fs) {
	fs := afero.NewMemMapFs()
	return uploads.NewLocalStorage(fs, "public/uploads", "uploads/", logger.Nop()), fs
}

func TestSave_EscribeYDevuelveURL(t *testing.T) {
	storage, fs := newStorage()

	url, n, err := storage.Save("123-abc.png", strings.NewReader("contenido"), 1024)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/123-abc.png", url)
	assert.EqualValues(t, len("contenido"), n)

	data, err := afero.ReadFile(fs, "public/uploads/123-abc.png")
	require.NoError(t, err)
	assert.Equal(t, "contenido", string(data))
}

func TestSave_NoSobrescribe(t *testing.T) {
	storage, fs := newStorage()
	_, _, err := storage.Save("a.png", strings.NewReader("uno"), 1024)
	require.NoError(t, err)

	_, _, err = storage.Save("a.png", strings.NewReader("dos"), 1024)
	assert.Error(t, err)

	data, _ := afero.ReadFile(fs, "public/uploads/a.png")
	assert.Equal(t, "uno", string(data))
}

func TestSave_ExcedeLimite_BorraParcial(t *testing.T) {
	storage, fs := newStorage()

	_, _, err := storage.Save("grande.mp4", bytes.NewReader(make([]byte, 2048)), 1024)
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)

	exists, _ := afero.Exists(fs, "public/uploads/grande.mp4")
	assert.False(t, exists, "no debe quedar archivo parcial")
}

func TestSave_NombreConRuta_Rechazado(t *testing.T) {
	storage, _ := newStorage()

	_, _, err := storage.Save("../escape.png", strings.NewReader("x"), 1024)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestIsLocal(t *testing.T) {
	storage, _ := newStorage()

	assert.True(t, storage.IsLocal("/uploads/a.png"))
	assert.False(t, storage.IsLocal("https://cdn.example.com/uploads/a.png"))
	assert.False(t, storage.IsLocal("/uploadsx/a.png"))
}

func TestDelete(t *testing.T) {
	storage, fs := newStorage()
	require.NoError(t, afero.WriteFile(fs, "public/uploads/a.png", []byte("x"), 0o644))

	require.NoError(t, storage.Delete("/uploads/a.png"))
	exists, _ := afero.Exists(fs, "public/uploads/a.png")
	assert.False(t, exists)

	assert.ErrorIs(t, storage.Delete("/uploads/a.png"), domain.ErrNotFound)
	assert.ErrorIs(t, storage.Delete("/uploads/../data/categories.json"), domain.ErrInvalidInput)
	assert.ErrorIs(t, storage.Delete("https://example.com/a.png"), domain.ErrInvalidInput)
}
