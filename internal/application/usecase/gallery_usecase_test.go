package usecase_test

import (
	"encoding/json"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Vitrina-web/internal/application/usecase"
	"github.com/jhoicas/Vitrina-web/internal/domain"
	"github.com/jhoicas/Vitrina-web/internal/infrastructure/filestore"
	"github.com/jhoicas/Vitrina-web/internal/infrastructure/uploads"
	"github.com/jhoicas/Vitrina-web/pkg/logger"
)

// spyStorage registra si se intentó borrar algo.
type spyStorage struct {
	*uploads.LocalStorage
	deletes []string
}

func (s *spyStorage) Delete(src string) error {
	s.deletes = append(s.deletes, src)
	return s.LocalStorage.Delete(src)
}

type fixture struct {
	fs         afero.Fs
	storage    *spyStorage
	categories *usecase.CategoryUseCase
	gallery    *usecase.GalleryUseCase
	site       *usecase.SiteUseCase
}

func newFixture(t *testing.T, strict bool) *fixture {
	t.Helper()
	fs := afero.NewMemMapFs()
	log := logger.Nop()
	store := filestore.NewStore(fs, log)
	storage := &spyStorage{LocalStorage: uploads.NewLocalStorage(fs, uploadDir, "/uploads", log)}
	categories := usecase.NewCategoryUseCase(filestore.NewCategoryRepository(store, "data/categories.json"), strict, log)
	gallery := usecase.NewGalleryUseCase(filestore.NewGalleryRepository(store, "data/gallery.json"), storage, strict, log)
	return &fixture{
		fs:         fs,
		storage:    storage,
		categories: categories,
		gallery:    gallery,
		site:       usecase.NewSiteUseCase(categories, gallery),
	}
}

func items(t *testing.T, doc string) []json.RawMessage {
	t.Helper()
	var out []json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(doc), &out))
	return out
}

func TestDeleteImage_Local_BorraArchivo(t *testing.T) {
	f := newFixture(t, false)
	require.NoError(t, afero.WriteFile(f.fs, uploadDir+"/1-a.png", []byte("x"), 0o644))

	deleted, err := f.gallery.DeleteImage("/uploads/1-a.png")
	require.NoError(t, err)
	assert.True(t, deleted)

	exists, _ := afero.Exists(f.fs, uploadDir+"/1-a.png")
	assert.False(t, exists)
}

func TestDeleteImage_URLExterna_NoTocaArchivos(t *testing.T) {
	f := newFixture(t, false)

	deleted, err := f.gallery.DeleteImage("https://images.example.com/uploads/1-a.png")
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Empty(t, f.storage.deletes, "no se debe intentar borrar un archivo externo")
}

func TestDeleteImage_ArchivoYaAusente(t *testing.T) {
	f := newFixture(t, false)

	deleted, err := f.gallery.DeleteImage("/uploads/no-existe.png")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestDeleteImage_SrcVacioOTraversal(t *testing.T) {
	f := newFixture(t, false)

	_, err := f.gallery.DeleteImage("  ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.gallery.DeleteImage("/uploads/../../data/gallery.json")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCategoryReplace_Estricto_RechazaInvalidas(t *testing.T) {
	f := newFixture(t, true)

	_, err := f.categories.Replace(items(t, `[{"name":"","services":[]}]`), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.categories.Replace(items(t, `[{"name":"Hair","services":[{"name":"Cut"}]}]`), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "servicio sin precio")

	_, err = f.categories.Replace(items(t, `[{"name":"Hair","services":[{"name":"Cut","price":50}]}]`), "")
	assert.NoError(t, err)
}

func TestCategoryReplace_NoEstricto_GuardaTalCual(t *testing.T) {
	f := newFixture(t, false)
	doc := `[{"name":"","services":[]},{"cualquier":"forma"}]`

	_, err := f.categories.Replace(items(t, doc), "")
	require.NoError(t, err)

	got, err := json.Marshal(f.categories.List().Items)
	require.NoError(t, err)
	assert.JSONEq(t, doc, string(got))
}

func TestGalleryReplace_Estricto_RequiereSrc(t *testing.T) {
	f := newFixture(t, true)

	_, err := f.gallery.Replace(items(t, `[{"alt":"sin src"}]`), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSite_HomeLimitaCategoriasEImagenes(t *testing.T) {
	f := newFixture(t, false)
	_, err := f.categories.Replace(items(t, `[{"name":"1"},{"name":"2"},{"name":"3"},{"name":"4"}]`), "")
	require.NoError(t, err)
	_, err = f.gallery.Replace(items(t, `[{"src":"/1"},{"src":"/2"},{"src":"/3"},{"src":"/4"},{"src":"/5"},{"src":"/6"},{"src":"/7"}]`), "")
	require.NoError(t, err)

	home := f.site.Home()
	assert.Len(t, home.Categories, 3)
	assert.Len(t, home.Gallery, 6)
	assert.Equal(t, "1", home.Categories[0].Name)
	assert.Len(t, f.site.Services(), 4)
	assert.Len(t, f.site.Gallery(), 7)
}

func TestSite_OmiteElementosIlegibles(t *testing.T) {
	f := newFixture(t, false)
	_, err := f.categories.Replace(items(t, `[{"name":"ok"},"texto suelto",{"name":"otra","services":[{"name":"x","price":{"raro":1}}]}]`), "")
	require.NoError(t, err)

	names := []string{}
	for _, c := range f.site.Services() {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"ok"}, names)
	assert.Len(t, f.categories.List().Items, 3, "el documento guardado no cambia")
}
