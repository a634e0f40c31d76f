package usecase

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/jhoicas/Vitrina-web/internal/application/dto"
	"github.com/jhoicas/Vitrina-web/internal/domain"
	"github.com/jhoicas/Vitrina-web/internal/domain/repository"
	"github.com/jhoicas/Vitrina-web/pkg/logger"
)

// sniffLen bytes leídos para detectar el tipo real (límite por defecto de mimetype).
const sniffLen = 3072

var allowedExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true, ".mp4": true,
}

var allowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
	"video/mp4":  true,
}

// UploadUseCase valida y guarda un archivo subido con un nombre generado.
type UploadUseCase struct {
	storage  repository.MediaStorage
	maxBytes int64
	now      func() time.Time
	log      *logger.Logger
}

// NewUploadUseCase construye el caso de uso con el tope de tamaño indicado.
func NewUploadUseCase(storage repository.MediaStorage, maxBytes int64, log *logger.Logger) *UploadUseCase {
	return &UploadUseCase{storage: storage, maxBytes: maxBytes, now: time.Now, log: log.Component("upload")}
}

// MaxBytes tope de tamaño configurado.
func (uc *UploadUseCase) MaxBytes() int64 { return uc.maxBytes }

// Upload valida extensión, tipo declarado y tipo detectado; luego escribe el archivo.
func (uc *UploadUseCase) Upload(in dto.UploadInput) (*dto.UploadResponse, error) {
	if in.Content == nil || in.Filename == "" {
		return nil, domain.ErrMissingFile
	}
	ext := strings.ToLower(filepath.Ext(in.Filename))
	if !allowedExtensions[ext] {
		return nil, fmt.Errorf("%w: extensión %q (permitidas: jpg, jpeg, png, gif, webp, mp4)", domain.ErrUnsupportedMedia, ext)
	}
	declared := baseMediaType(in.ContentType)
	if !allowedContentTypes[declared] {
		return nil, fmt.Errorf("%w: content-type %q", domain.ErrUnsupportedMedia, in.ContentType)
	}
	if in.Size > uc.maxBytes {
		return nil, fmt.Errorf("%w: %d bytes (máximo %d)", domain.ErrFileTooLarge, in.Size, uc.maxBytes)
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(in.Content, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("leer archivo: %w", err)
	}
	head = head[:n]
	if detected := baseMediaType(mimetype.Detect(head).String()); !allowedContentTypes[detected] {
		return nil, fmt.Errorf("%w: el contenido es %q", domain.ErrUnsupportedMedia, detected)
	}

	name := uc.generateName(ext)
	url, written, err := uc.storage.Save(name, io.MultiReader(bytes.NewReader(head), in.Content), uc.maxBytes)
	if err != nil {
		if errors.Is(err, domain.ErrFileTooLarge) {
			return nil, fmt.Errorf("%w: máximo %d bytes", domain.ErrFileTooLarge, uc.maxBytes)
		}
		uc.log.Error().Err(err).Str("file", name).Msg("error guardando upload")
		return nil, err
	}
	uc.log.Info().Str("file", name).Int64("bytes", written).Str("original", in.Filename).Msg("archivo subido")
	return &dto.UploadResponse{Success: true, URL: url}, nil
}

// generateName <unix-millis>-<uuid><ext>: el uuid evita colisiones entre subidas simultáneas.
func (uc *UploadUseCase) generateName(ext string) string {
	return fmt.Sprintf("%d-%s%s", uc.now().UnixMilli(), uuid.NewString(), ext)
}

func baseMediaType(ct string) string {
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(ct))
	}
	return mt
}
