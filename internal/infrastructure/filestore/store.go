package filestore

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jhoicas/Vitrina-web/internal/domain"
	"github.com/jhoicas/Vitrina-web/pkg/logger"
	"github.com/spf13/afero"
)

// Store lee y reemplaza documentos JSON completos (arreglos) en un sistema de archivos.
// No hay actualizaciones parciales ni transacciones.
type Store struct {
	fs  afero.Fs
	log *logger.Logger
	mu  sync.Mutex
}

// NewStore construye el store sobre fs (afero.NewOsFs en producción).
func NewStore(fs afero.Fs, log *logger.Logger) *Store {
	return &Store{fs: fs, log: log.Component("filestore")}
}

// Load devuelve el arreglo JSON en path. Si el archivo no existe o no se puede
// interpretar devuelve una lista vacía; el error solo se registra.
func (s *Store) Load(path string) []json.RawMessage {
	items, _ := s.Snapshot(path)
	return items
}

// Snapshot devuelve el contenido y su sello de versión.
func (s *Store) Snapshot(path string) ([]json.RawMessage, string) {
	items := s.read(path)
	return items, s.version(path, items)
}

// Replace sobrescribe path con items en JSON indentado. Escribe a un temporal en el
// mismo directorio y lo renombra, así el documento nunca queda a medias.
// Con expectedVersion no vacío falla con domain.ErrConflict si el documento cambió.
func (s *Store) Replace(path string, items []json.RawMessage, expectedVersion string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if expectedVersion != "" {
		if current := s.version(path, s.read(path)); current != expectedVersion {
			return "", fmt.Errorf("%s: %w", filepath.Base(path), domain.ErrConflict)
		}
	}

	data, err := encode(items)
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", path, err)
	}
	if err := s.writeAtomic(path, data); err != nil {
		s.log.Error().Err(err).Str("path", path).Msg("error escribiendo documento")
		return "", err
	}
	return digest(data), nil
}

func (s *Store) read(path string) []json.RawMessage {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Error().Err(err).Str("path", path).Msg("error leyendo documento")
		}
		return []json.RawMessage{}
	}
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		s.log.Error().Err(err).Str("path", path).Msg("documento JSON inválido, se usa colección vacía")
		return []json.RawMessage{}
	}
	if items == nil {
		return []json.RawMessage{}
	}
	return items
}

func (s *Store) version(path string, items []json.RawMessage) string {
	data, err := encode(items)
	if err != nil {
		// Solo ocurre si el archivo trae elementos que json no puede recodificar.
		s.log.Warn().Err(err).Str("path", path).Msg("no se pudo calcular versión")
		return ""
	}
	return digest(data)
}

func (s *Store) writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("crear directorio %s: %w", dir, err)
	}
	tmp, err := afero.TempFile(s.fs, dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("crear temporal: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("escribir %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("cerrar %s: %w", tmpName, err)
	}
	if err := s.fs.Rename(tmpName, path); err != nil {
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("renombrar a %s: %w", path, err)
	}
	return nil
}

// encode produce la forma canónica (indentado a 2 espacios, con salto final).
func encode(items []json.RawMessage) ([]byte, error) {
	if items == nil {
		items = []json.RawMessage{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func digest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
