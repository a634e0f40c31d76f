package usecase

import (
	"encoding/json"
	"fmt"

	"github.com/jhoicas/Vitrina-web/pkg/logger"
)

type validatable interface {
	Validate() error
}

// decodeItems convierte los elementos crudos al tipo de la vista. Los que no se
// pueden interpretar se omiten y se registran; el documento guardado no cambia.
func decodeItems[T any](items []json.RawMessage, log *logger.Logger, kind string) []T {
	out := make([]T, 0, len(items))
	for i, raw := range items {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			log.Warn().Err(err).Int("index", i).Str("kind", kind).Msg("elemento omitido al renderizar")
			continue
		}
		out = append(out, v)
	}
	return out
}

// validateItems aplica las invariantes de la entidad a cada elemento.
func validateItems[T validatable](items []json.RawMessage) error {
	for i, raw := range items {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("elemento %d: %w", i, err)
		}
		if err := v.Validate(); err != nil {
			return fmt.Errorf("elemento %d: %w", i, err)
		}
	}
	return nil
}

func firstN[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
