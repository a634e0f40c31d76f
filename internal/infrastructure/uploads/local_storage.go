package uploads

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/jhoicas/Vitrina-web/internal/domain"
	"github.com/jhoicas/Vitrina-web/internal/domain/repository"
	"github.com/jhoicas/Vitrina-web/pkg/logger"
	"github.com/spf13/afero"
)

var _ repository.MediaStorage = (*LocalStorage)(nil)

// LocalStorage guarda los archivos subidos en un directorio público y los expone bajo URLPrefix.
type LocalStorage struct {
	fs        afero.Fs
	dir       string
	urlPrefix string
	log       *logger.Logger
}

// NewLocalStorage construye el almacenamiento. urlPrefix se normaliza a "/x" sin barra final.
func NewLocalStorage(fs afero.Fs, dir, urlPrefix string, log *logger.Logger) *LocalStorage {
	return &LocalStorage{
		fs:        fs,
		dir:       dir,
		urlPrefix: "/" + strings.Trim(urlPrefix, "/"),
		log:       log.Component("uploads"),
	}
}

// URLPrefix prefijo público de los archivos subidos.
func (s *LocalStorage) URLPrefix() string { return s.urlPrefix }

// FileSystem expone el directorio de uploads para servirlo por HTTP.
func (s *LocalStorage) FileSystem() http.FileSystem {
	return afero.NewHttpFs(s.fs).Dir(s.dir)
}

// Save crea el archivo con O_EXCL (nunca sobrescribe) y copia hasta limit+1 bytes;
// si se supera limit borra el parcial y devuelve domain.ErrFileTooLarge.
func (s *LocalStorage) Save(name string, r io.Reader, limit int64) (string, int64, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", 0, fmt.Errorf("%w: nombre de archivo %q", domain.ErrInvalidInput, name)
	}
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return "", 0, fmt.Errorf("crear directorio de uploads: %w", err)
	}
	full := filepath.Join(s.dir, name)
	f, err := s.fs.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", 0, fmt.Errorf("crear %s: %w", name, err)
	}

	n, copyErr := io.Copy(f, io.LimitReader(r, limit+1))
	closeErr := f.Close()
	switch {
	case copyErr != nil:
		s.discard(full)
		return "", n, fmt.Errorf("escribir %s: %w", name, copyErr)
	case closeErr != nil:
		s.discard(full)
		return "", n, fmt.Errorf("cerrar %s: %w", name, closeErr)
	case n > limit:
		s.discard(full)
		return "", n, domain.ErrFileTooLarge
	}
	return s.urlPrefix + "/" + name, n, nil
}

// IsLocal indica si src es una ruta bajo el prefijo de uploads.
func (s *LocalStorage) IsLocal(src string) bool {
	return strings.HasPrefix(src, s.urlPrefix+"/")
}

// Delete elimina el archivo apuntado por src. Rechaza rutas que salgan del directorio.
func (s *LocalStorage) Delete(src string) error {
	if !s.IsLocal(src) {
		return fmt.Errorf("%w: %q no es un archivo subido", domain.ErrInvalidInput, src)
	}
	rel := strings.TrimPrefix(src, s.urlPrefix+"/")
	if i := strings.IndexAny(rel, "?#"); i >= 0 {
		rel = rel[:i]
	}
	if rel == "" || rel != path.Base(rel) || rel == "." || rel == ".." {
		return fmt.Errorf("%w: ruta %q", domain.ErrInvalidInput, src)
	}
	full := filepath.Join(s.dir, rel)
	if err := s.fs.Remove(full); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("eliminar %s: %w", rel, err)
	}
	s.log.Info().Str("file", rel).Msg("archivo eliminado")
	return nil
}

func (s *LocalStorage) discard(full string) {
	if err := s.fs.Remove(full); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.log.Error().Err(err).Str("path", full).Msg("no se pudo eliminar archivo parcial")
	}
}
