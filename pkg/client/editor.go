package client

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jhoicas/Vitrina-web/internal/domain"
	"github.com/jhoicas/Vitrina-web/internal/domain/entity"
	"github.com/jhoicas/Vitrina-web/pkg/logger"
)

// API operaciones que el editor necesita del servidor. *Client la implementa.
type API interface {
	Categories() ([]entity.Category, string, error)
	ReplaceCategories(items []entity.Category, version string) (string, error)
	Gallery() ([]entity.GalleryImage, string, error)
	ReplaceGallery(items []entity.GalleryImage, version string) (string, error)
	Upload(filename string, content []byte) (string, error)
	DeleteImage(src string) (bool, error)
}

// State copia local de ambas colecciones con sus versiones.
type State struct {
	Categories        []entity.Category
	CategoriesVersion string
	Gallery           []entity.GalleryImage
	GalleryVersion    string
}

// Editor aplica mutaciones sobre una copia del estado y solo la hace visible
// después de guardarla con éxito (commit). Si el commit falla el estado no cambia.
type Editor struct {
	api   API
	state State
	log   *logger.Logger
}

// NewEditor construye el editor; llamar a Load antes de mutar.
func NewEditor(api API, log *logger.Logger) *Editor {
	return &Editor{api: api, log: log.Component("editor")}
}

// Load trae ambas colecciones y asigna IDs a los elementos que no los tienen.
func (e *Editor) Load() error {
	cats, cv, err := e.api.Categories()
	if err != nil {
		return fmt.Errorf("cargar categorías: %w", err)
	}
	gallery, gv, err := e.api.Gallery()
	if err != nil {
		return fmt.Errorf("cargar galería: %w", err)
	}
	for i := range cats {
		ensureID(&cats[i].ID)
		for j := range cats[i].Services {
			ensureID(&cats[i].Services[j].ID)
		}
	}
	for i := range gallery {
		ensureID(&gallery[i].ID)
	}
	e.state = State{Categories: cats, CategoriesVersion: cv, Gallery: gallery, GalleryVersion: gv}
	return nil
}

// State copia profunda del estado visible.
func (e *Editor) State() State {
	return State{
		Categories:        cloneCategories(e.state.Categories),
		CategoriesVersion: e.state.CategoriesVersion,
		Gallery:           append([]entity.GalleryImage{}, e.state.Gallery...),
		GalleryVersion:    e.state.GalleryVersion,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías y servicios
// ──────────────────────────────────────────────────────────────────────────────

// AddCategory agrega una categoría vacía al final.
func (e *Editor) AddCategory(name string) (entity.Category, error) {
	c := entity.Category{ID: uuid.NewString(), Name: strings.TrimSpace(name), Services: []entity.Service{}}
	next := append(cloneCategories(e.state.Categories), c)
	return c, e.commitCategories(next)
}

// RenameCategory cambia el nombre de la categoría ref (ID o posición).
func (e *Editor) RenameCategory(ref, name string) error {
	next := cloneCategories(e.state.Categories)
	i, err := findCategory(next, ref)
	if err != nil {
		return err
	}
	next[i].Name = strings.TrimSpace(name)
	return e.commitCategories(next)
}

// DeleteCategory elimina la categoría y todos sus servicios.
func (e *Editor) DeleteCategory(ref string) error {
	next := cloneCategories(e.state.Categories)
	i, err := findCategory(next, ref)
	if err != nil {
		return err
	}
	next = append(next[:i], next[i+1:]...)
	return e.commitCategories(next)
}

// AddService agrega un servicio al final de la categoría.
func (e *Editor) AddService(categoryRef, name string, price entity.Price) (entity.Service, error) {
	next := cloneCategories(e.state.Categories)
	i, err := findCategory(next, categoryRef)
	if err != nil {
		return entity.Service{}, err
	}
	s := entity.Service{ID: uuid.NewString(), Name: strings.TrimSpace(name), Price: price}
	next[i].Services = append(next[i].Services, s)
	return s, e.commitCategories(next)
}

// UpdateService reemplaza nombre y precio de un servicio.
func (e *Editor) UpdateService(categoryRef, serviceRef, name string, price entity.Price) error {
	next := cloneCategories(e.state.Categories)
	i, err := findCategory(next, categoryRef)
	if err != nil {
		return err
	}
	j, err := findService(next[i].Services, serviceRef)
	if err != nil {
		return err
	}
	next[i].Services[j].Name = strings.TrimSpace(name)
	next[i].Services[j].Price = price
	return e.commitCategories(next)
}

// DeleteService elimina un servicio de su categoría.
func (e *Editor) DeleteService(categoryRef, serviceRef string) error {
	next := cloneCategories(e.state.Categories)
	i, err := findCategory(next, categoryRef)
	if err != nil {
		return err
	}
	j, err := findService(next[i].Services, serviceRef)
	if err != nil {
		return err
	}
	next[i].Services = append(next[i].Services[:j], next[i].Services[j+1:]...)
	return e.commitCategories(next)
}

// ──────────────────────────────────────────────────────────────────────────────
// Galería
// ──────────────────────────────────────────────────────────────────────────────

// UploadFile sube un archivo y devuelve la URL pendiente. No toca la galería:
// si nunca se confirma con AddImage/UpdateImage el archivo queda huérfano.
func (e *Editor) UploadFile(filename string, content []byte) (string, error) {
	return e.api.Upload(filename, content)
}

// AddImage agrega una imagen al final de la galería.
func (e *Editor) AddImage(src, alt string) (entity.GalleryImage, error) {
	img := entity.GalleryImage{ID: uuid.NewString(), Src: strings.TrimSpace(src), Alt: strings.TrimSpace(alt)}
	next := append(append([]entity.GalleryImage{}, e.state.Gallery...), img)
	return img, e.commitGallery(next)
}

// UpdateImage cambia src y alt. Si src cambia, el archivo anterior se borra solo
// después de guardar la galería; un fallo al borrar no deshace el guardado.
func (e *Editor) UpdateImage(ref, src, alt string) error {
	next := append([]entity.GalleryImage{}, e.state.Gallery...)
	i, err := findImage(next, ref)
	if err != nil {
		return err
	}
	var replaced string
	src = strings.TrimSpace(src)
	if src != "" && src != next[i].Src {
		replaced = next[i].Src
		next[i].Src = src
	}
	next[i].Alt = strings.TrimSpace(alt)
	if err := e.commitGallery(next); err != nil {
		return err
	}
	e.deleteFile(replaced)
	return nil
}

// DeleteImage quita la imagen y, ya guardada la galería, borra su archivo.
func (e *Editor) DeleteImage(ref string) error {
	next := append([]entity.GalleryImage{}, e.state.Gallery...)
	i, err := findImage(next, ref)
	if err != nil {
		return err
	}
	removed := next[i].Src
	next = append(next[:i], next[i+1:]...)
	if err := e.commitGallery(next); err != nil {
		return err
	}
	e.deleteFile(removed)
	return nil
}

// MoveImage mueve la imagen a la posición to (reordenamiento por arrastre).
func (e *Editor) MoveImage(ref string, to int) error {
	next := append([]entity.GalleryImage{}, e.state.Gallery...)
	from, err := findImage(next, ref)
	if err != nil {
		return err
	}
	if to < 0 || to >= len(next) {
		return fmt.Errorf("%w: posición %d fuera de rango", domain.ErrInvalidInput, to)
	}
	img := next[from]
	next = append(next[:from], next[from+1:]...)
	next = append(next[:to], append([]entity.GalleryImage{img}, next[to:]...)...)
	return e.commitGallery(next)
}

// ──────────────────────────────────────────────────────────────────────────────
// Commit
// ──────────────────────────────────────────────────────────────────────────────

func (e *Editor) commitCategories(next []entity.Category) error {
	for _, c := range next {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	version, err := e.api.ReplaceCategories(next, e.state.CategoriesVersion)
	if err != nil {
		return fmt.Errorf("guardar categorías: %w", err)
	}
	e.state.Categories = next
	e.state.CategoriesVersion = version
	return nil
}

func (e *Editor) commitGallery(next []entity.GalleryImage) error {
	for _, g := range next {
		if err := g.Validate(); err != nil {
			return err
		}
	}
	version, err := e.api.ReplaceGallery(next, e.state.GalleryVersion)
	if err != nil {
		return fmt.Errorf("guardar galería: %w", err)
	}
	e.state.Gallery = next
	e.state.GalleryVersion = version
	return nil
}

// deleteFile pide al servidor borrar el archivo detrás de src. El servidor decide
// si es un upload local; las URLs externas se ignoran.
func (e *Editor) deleteFile(src string) {
	if src == "" {
		return
	}
	if _, err := e.api.DeleteImage(src); err != nil {
		e.log.Warn().Err(err).Str("src", src).Msg("no se pudo borrar el archivo; se continúa")
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

// ErrNotFound referencia a una entidad que no está en el estado local.
var ErrNotFound = domain.ErrNotFound

func ensureID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

func cloneCategories(in []entity.Category) []entity.Category {
	out := make([]entity.Category, len(in))
	for i, c := range in {
		c.Services = append([]entity.Service{}, c.Services...)
		out[i] = c
	}
	return out
}

// findCategory acepta el ID o la posición (base 0) como texto.
func findCategory(list []entity.Category, ref string) (int, error) {
	return find(len(list), ref, func(i int) string { return list[i].ID }, "categoría")
}

func findService(list []entity.Service, ref string) (int, error) {
	return find(len(list), ref, func(i int) string { return list[i].ID }, "servicio")
}

func findImage(list []entity.GalleryImage, ref string) (int, error) {
	return find(len(list), ref, func(i int) string { return list[i].ID }, "imagen")
}

func find(n int, ref string, id func(int) string, what string) (int, error) {
	for i := 0; i < n; i++ {
		if id(i) == ref {
			return i, nil
		}
	}
	var idx int
	if _, err := fmt.Sscanf(ref, "%d", &idx); err == nil && fmt.Sprint(idx) == ref && idx >= 0 && idx < n {
		return idx, nil
	}
	return -1, fmt.Errorf("%s %q: %w", what, ref, ErrNotFound)
}

// IsConflict indica si err es un conflicto de versión (otra sesión guardó antes).
func IsConflict(err error) bool {
	return errors.Is(err, domain.ErrConflict)
}
