package entity

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jhoicas/Vitrina-web/internal/domain"
)

// GalleryImage imagen (o video) de la galería. Src es una ruta local bajo el
// prefijo de uploads o una URL externa.
type GalleryImage struct {
	ID  string `json:"id,omitempty"`
	Src string `json:"src"`
	Alt string `json:"alt"`
	// Extra otros miembros del objeto (p. ej. un título), conservados al editar.
	Extra Extra `json:"-"`
}

// Validate exige src.
func (g GalleryImage) Validate() error {
	if strings.TrimSpace(g.Src) == "" {
		return fmt.Errorf("%w: la imagen requiere src", domain.ErrInvalidInput)
	}
	return nil
}

// IsVideo indica si el recurso debe mostrarse como <video>.
func (g GalleryImage) IsVideo() bool {
	src := strings.ToLower(g.Src)
	if i := strings.IndexAny(src, "?#"); i >= 0 {
		src = src[:i]
	}
	return strings.HasSuffix(src, ".mp4")
}

func (g GalleryImage) MarshalJSON() ([]byte, error) {
	type plain GalleryImage
	b, err := json.Marshal(plain(g))
	if err != nil {
		return nil, err
	}
	return appendExtra(b, g.Extra)
}

func (g *GalleryImage) UnmarshalJSON(data []byte) error {
	type plain GalleryImage
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extra, err := splitExtra(data, "id", "src", "alt")
	if err != nil {
		return err
	}
	p.Extra = extra
	*g = GalleryImage(p)
	return nil
}
