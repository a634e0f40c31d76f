package entity

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jhoicas/Vitrina-web/internal/domain"
)

// Category agrupa servicios mostrados en la página de servicios.
// ID es opcional: los datos antiguos se identifican por posición.
type Category struct {
	ID       string    `json:"id,omitempty"`
	Name     string    `json:"name"`
	Services []Service `json:"services"`
	Extra    Extra     `json:"-"`
}

// Service es una oferta con precio, siempre dentro de una categoría.
type Service struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Price Price  `json:"price"`
	Extra Extra  `json:"-"`
}

// Validate verifica nombre no vacío y que cada servicio tenga nombre y precio.
func (c Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: la categoría requiere nombre", domain.ErrInvalidInput)
	}
	for i, s := range c.Services {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("servicio %d de %q: %w", i, c.Name, err)
		}
	}
	return nil
}

// Validate exige nombre y precio.
func (s Service) Validate() error {
	if strings.TrimSpace(s.Name) == "" || s.Price.IsEmpty() {
		return fmt.Errorf("%w: el servicio requiere nombre y precio", domain.ErrInvalidInput)
	}
	return nil
}

func (c Category) MarshalJSON() ([]byte, error) {
	type plain Category
	b, err := json.Marshal(plain(c))
	if err != nil {
		return nil, err
	}
	return appendExtra(b, c.Extra)
}

func (c *Category) UnmarshalJSON(data []byte) error {
	type plain Category
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extra, err := splitExtra(data, "id", "name", "services")
	if err != nil {
		return err
	}
	p.Extra = extra
	*c = Category(p)
	return nil
}

func (s Service) MarshalJSON() ([]byte, error) {
	type plain Service
	b, err := json.Marshal(plain(s))
	if err != nil {
		return nil, err
	}
	return appendExtra(b, s.Extra)
}

func (s *Service) UnmarshalJSON(data []byte) error {
	type plain Service
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extra, err := splitExtra(data, "id", "name", "price")
	if err != nil {
		return err
	}
	p.Extra = extra
	*s = Service(p)
	return nil
}
