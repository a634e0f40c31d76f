package usecase_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Vitrina-web/internal/application/dto"
	"github.com/jhoicas/Vitrina-web/internal/application/usecase"
	"github.com/jhoicas/Vitrina-web/internal/domain"
	"github.com/jhoicas/Vitrina-web/internal/infrastructure/uploads"
	"github.com/jhoicas/Vitrina-web/pkg/logger"
)

const uploadDir = "public/uploads"

func newUploadUC(t *testing.T, maxBytes int64) (*usecase.UploadUseCase, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	storage := uploads.NewLocalStorage(fs, uploadDir, "/uploads", logger.Nop())
	return usecase.NewUploadUseCase(storage, maxBytes, logger.Nop()), fs
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 200, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func countUploads(t *testing.T, fs afero.Fs) int {
	t.Helper()
	entries, err := afero.ReadDir(fs, uploadDir)
	if err != nil {
		return 0
	}
	return len(entries)
}

func TestUpload_PNGValido(t *testing.T) {
	uc, fs := newUploadUC(t, 1<<20)
	content := pngBytes(t)

	out, err := uc.Upload(dto.UploadInput{
		Filename: "Foto.PNG", ContentType: "image/png", Size: int64(len(content)), Content: bytes.NewReader(content),
	})
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.True(t, strings.HasPrefix(out.URL, "/uploads/"))
	assert.True(t, strings.HasSuffix(out.URL, ".png"), "la extensión se conserva en minúsculas")

	stored, err := afero.ReadFile(fs, uploadDir+"/"+strings.TrimPrefix(out.URL, "/uploads/"))
	require.NoError(t, err)
	assert.Equal(t, content, stored)
}

func TestUpload_ExtensionNoPermitida(t *testing.T) {
	uc, fs := newUploadUC(t, 1<<20)
	content := pngBytes(t)

	for _, name := range []string{"script.exe", "doc.pdf", "sin-extension", "anim.svg"} {
		_, err := uc.Upload(dto.UploadInput{
			Filename: name, ContentType: "image/png", Size: int64(len(content)), Content: bytes.NewReader(content),
		})
		assert.ErrorIs(t, err, domain.ErrUnsupportedMedia, name)
	}
	assert.Zero(t, countUploads(t, fs), "no se debe escribir ningún archivo")
}

func TestUpload_ContentTypeDeclaradoNoPermitido(t *testing.T) {
	uc, fs := newUploadUC(t, 1<<20)
	content := pngBytes(t)

	_, err := uc.Upload(dto.UploadInput{
		Filename: "a.png", ContentType: "application/octet-stream", Size: int64(len(content)), Content: bytes.NewReader(content),
	})
	assert.ErrorIs(t, err, domain.ErrUnsupportedMedia)
	assert.Zero(t, countUploads(t, fs))
}

func TestUpload_ContenidoQueNoEsImagen(t *testing.T) {
	uc, fs := newUploadUC(t, 1<<20)
	content := []byte("<html><script>alert(1)</script></html>")

	_, err := uc.Upload(dto.UploadInput{
		Filename: "a.jpg", ContentType: "image/jpeg", Size: int64(len(content)), Content: bytes.NewReader(content),
	})
	assert.ErrorIs(t, err, domain.ErrUnsupportedMedia)
	assert.Zero(t, countUploads(t, fs))
}

func TestUpload_TamanoDeclaradoExcedido(t *testing.T) {
	uc, fs := newUploadUC(t, 1024)
	content := pngBytes(t)

	_, err := uc.Upload(dto.UploadInput{
		Filename: "a.png", ContentType: "image/png", Size: 2048, Content: bytes.NewReader(content),
	})
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
	assert.Zero(t, countUploads(t, fs))
}

func TestUpload_ContenidoExcedeAunqueElTamanoDeclaradoNo(t *testing.T) {
	uc, fs := newUploadUC(t, 1024)
	content := append(pngBytes(t), make([]byte, 4096)...)

	_, err := uc.Upload(dto.UploadInput{
		Filename: "a.png", ContentType: "image/png", Size: 10, Content: bytes.NewReader(content),
	})
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
	assert.Zero(t, countUploads(t, fs), "el archivo parcial debe eliminarse")
}

func TestUpload_SinArchivo(t *testing.T) {
	uc, _ := newUploadUC(t, 1024)

	_, err := uc.Upload(dto.UploadInput{})
	assert.ErrorIs(t, err, domain.ErrMissingFile)
}

func TestUpload_NombresNoColisionan(t *testing.T) {
	uc, fs := newUploadUC(t, 1<<20)
	content := pngBytes(t)

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		out, err := uc.Upload(dto.UploadInput{
			Filename: "a.png", ContentType: "image/png", Size: int64(len(content)), Content: bytes.NewReader(content),
		})
		require.NoError(t, err)
		assert.False(t, seen[out.URL], "URL repetida: %s", out.URL)
		seen[out.URL] = true
	}
	assert.Equal(t, 20, countUploads(t, fs))
}
