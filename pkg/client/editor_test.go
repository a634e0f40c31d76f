package client_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Vitrina-web/internal/domain"
	"github.com/jhoicas/Vitrina-web/internal/domain/entity"
	"github.com/jhoicas/Vitrina-web/pkg/client"
	"github.com/jhoicas/Vitrina-web/pkg/logger"
)

// fakeAPI servidor en memoria con versión incremental y fallos inyectables.
type fakeAPI struct {
	categories []entity.Category
	gallery    []entity.GalleryImage
	version    int
	failSave   error
	failDelete error
	deleted    []string
	uploads    int
}

func (f *fakeAPI) v() string { return fmt.Sprint(f.version) }

func (f *fakeAPI) Categories() ([]entity.Category, string, error) {
	return append([]entity.Category{}, f.categories...), f.v(), nil
}

func (f *fakeAPI) ReplaceCategories(items []entity.Category, version string) (string, error) {
	if f.failSave != nil {
		return "", f.failSave
	}
	if version != "" && version != f.v() {
		return "", domain.ErrConflict
	}
	f.categories = items
	f.version++
	return f.v(), nil
}

func (f *fakeAPI) Gallery() ([]entity.GalleryImage, string, error) {
	return append([]entity.GalleryImage{}, f.gallery...), f.v(), nil
}

func (f *fakeAPI) ReplaceGallery(items []entity.GalleryImage, version string) (string, error) {
	if f.failSave != nil {
		return "", f.failSave
	}
	if version != "" && version != f.v() {
		return "", domain.ErrConflict
	}
	f.gallery = items
	f.version++
	return f.v(), nil
}

func (f *fakeAPI) Upload(filename string, _ []byte) (string, error) {
	f.uploads++
	return fmt.Sprintf("/uploads/%d-%s", f.uploads, filename), nil
}

// DeleteImage igual que el servidor: solo actúa sobre uploads locales.
func (f *fakeAPI) DeleteImage(src string) (bool, error) {
	if !strings.HasPrefix(src, "/uploads/") {
		return false, nil
	}
	f.deleted = append(f.deleted, src)
	return f.failDelete == nil, f.failDelete
}

func loadedEditor(t *testing.T, api *fakeAPI) *client.Editor {
	t.Helper()
	ed := client.NewEditor(api, logger.Nop())
	require.NoError(t, ed.Load())
	return ed
}

func TestEditor_Load_AsignaIDsALegado(t *testing.T) {
	api := &fakeAPI{
		categories: []entity.Category{{Name: "Hair", Services: []entity.Service{{Name: "Cut", Price: entity.TextPrice("50")}}}},
		gallery:    []entity.GalleryImage{{Src: "https://example.com/a.jpg"}},
	}
	ed := loadedEditor(t, api)

	st := ed.State()
	assert.NotEmpty(t, st.Categories[0].ID)
	assert.NotEmpty(t, st.Categories[0].Services[0].ID)
	assert.NotEmpty(t, st.Gallery[0].ID)
}

func TestEditor_CRUDCategoriasYServicios(t *testing.T) {
	api := &fakeAPI{}
	ed := loadedEditor(t, api)

	cat, err := ed.AddCategory("  Hair ")
	require.NoError(t, err)
	assert.Equal(t, "Hair", cat.Name)

	svc, err := ed.AddService(cat.ID, "Cut", entity.ParsePrice("50"))
	require.NoError(t, err)
	require.NoError(t, ed.UpdateService(cat.ID, svc.ID, "Cut & Style", entity.ParsePrice("$65")))
	require.NoError(t, ed.RenameCategory("0", "Cabello"))

	st := ed.State()
	require.Len(t, st.Categories, 1)
	assert.Equal(t, "Cabello", st.Categories[0].Name)
	assert.Equal(t, "Cut & Style", st.Categories[0].Services[0].Name)
	assert.Equal(t, "$65", st.Categories[0].Services[0].Price.String())
	assert.Equal(t, api.categories, st.Categories, "el servidor y el espejo coinciden")

	require.NoError(t, ed.DeleteService(cat.ID, svc.ID))
	assert.Empty(t, ed.State().Categories[0].Services)

	require.NoError(t, ed.DeleteCategory(cat.ID))
	assert.Empty(t, ed.State().Categories)
	assert.Empty(t, api.categories)
}

func TestEditor_CommitFallido_NoCambiaEstado(t *testing.T) {
	api := &fakeAPI{categories: []entity.Category{{ID: "c1", Name: "Hair"}}}
	ed := loadedEditor(t, api)
	before := ed.State()

	api.failSave = errors.New("disco lleno")
	_, err := ed.AddCategory("Nails")
	assert.Error(t, err)
	assert.Error(t, ed.RenameCategory("c1", "Otra"))

	assert.Equal(t, before, ed.State())
}

func TestEditor_Invariantes(t *testing.T) {
	api := &fakeAPI{}
	ed := loadedEditor(t, api)

	_, err := ed.AddCategory("   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	cat, err := ed.AddCategory("Hair")
	require.NoError(t, err)
	_, err = ed.AddService(cat.ID, "Cut", entity.ParsePrice(""))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = ed.AddImage("", "sin src")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.ErrorIs(t, ed.RenameCategory("no-existe", "x"), client.ErrNotFound)
}

func TestEditor_Conflicto(t *testing.T) {
	api := &fakeAPI{}
	ed := loadedEditor(t, api)
	api.version = 99 // otra sesión guardó

	_, err := ed.AddCategory("Hair")
	assert.True(t, client.IsConflict(err))
	assert.Empty(t, ed.State().Categories)

	require.NoError(t, ed.Load())
	_, err = ed.AddCategory("Hair")
	assert.NoError(t, err)
}

func TestEditor_Galeria(t *testing.T) {
	api := &fakeAPI{}
	ed := loadedEditor(t, api)

	pending, err := ed.UploadFile("a.png", []byte("x"))
	require.NoError(t, err)
	assert.Empty(t, ed.State().Gallery, "subir no modifica la galería")

	img, err := ed.AddImage(pending, "Corte")
	require.NoError(t, err)
	ext, err := ed.AddImage("https://example.com/b.jpg", "Externa")
	require.NoError(t, err)

	// reemplazar el archivo borra el anterior
	replacement, err := ed.UploadFile("c.png", []byte("y"))
	require.NoError(t, err)
	require.NoError(t, ed.UpdateImage(img.ID, replacement, "Corte nuevo"))
	assert.Equal(t, []string{pending}, api.deleted)

	require.NoError(t, ed.MoveImage(ext.ID, 0))
	st := ed.State()
	assert.Equal(t, ext.ID, st.Gallery[0].ID)
	assert.Equal(t, replacement, st.Gallery[1].Src)

	// URL externa: el servidor no borra nada
	require.NoError(t, ed.DeleteImage(ext.ID))
	assert.Len(t, api.deleted, 1)

	// fallo al borrar el archivo no bloquea el guardado
	api.failDelete = errors.New("permiso denegado")
	require.NoError(t, ed.DeleteImage(img.ID))
	assert.Empty(t, ed.State().Gallery)
	assert.Equal(t, []string{pending, replacement}, api.deleted)
}

func TestEditor_MoveImageFueraDeRango(t *testing.T) {
	api := &fakeAPI{gallery: []entity.GalleryImage{{ID: "a", Src: "/a"}}}
	ed := loadedEditor(t, api)

	assert.ErrorIs(t, ed.MoveImage("a", 3), domain.ErrInvalidInput)
}

func TestEditor_CommitFallido_NoBorraArchivos(t *testing.T) {
	api := &fakeAPI{gallery: []entity.GalleryImage{
		{ID: "a", Src: "/uploads/1-a.png", Alt: "a"},
		{ID: "b", Src: "/uploads/2-b.png", Alt: "b"},
	}}
	ed := loadedEditor(t, api)
	before := ed.State()

	api.failSave = errors.New("disco lleno")
	assert.Error(t, ed.DeleteImage("a"))
	assert.Error(t, ed.UpdateImage("b", "/uploads/3-c.png", "c"))

	assert.Empty(t, api.deleted, "si el guardado falla el archivo sigue referenciado")
	assert.Equal(t, before, ed.State())
}

func TestEditor_Conflicto_NoBorraArchivos(t *testing.T) {
	api := &fakeAPI{gallery: []entity.GalleryImage{{ID: "a", Src: "/uploads/1-a.png"}}}
	ed := loadedEditor(t, api)
	api.version = 99

	err := ed.DeleteImage("a")
	assert.True(t, client.IsConflict(err))
	assert.Empty(t, api.deleted)
}

func TestEditor_UpdateImage_SinCambioDeSrc_NoBorra(t *testing.T) {
	api := &fakeAPI{gallery: []entity.GalleryImage{{ID: "a", Src: "/uploads/1-a.png"}}}
	ed := loadedEditor(t, api)

	require.NoError(t, ed.UpdateImage("a", "", "nuevo alt"))
	require.NoError(t, ed.UpdateImage("a", "/uploads/1-a.png", "otro"))
	assert.Empty(t, api.deleted)
	assert.Equal(t, "otro", ed.State().Gallery[0].Alt)
}
