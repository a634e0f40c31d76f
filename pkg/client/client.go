// Package client es el cliente de administración: habla con la API REST del sitio
// y mantiene el estado del editor con un único paso de commit por mutación.
package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Vitrina-web/internal/domain"
	"github.com/jhoicas/Vitrina-web/internal/domain/entity"
)

// APIError respuesta no exitosa de la API.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api %d %s: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("api %d: %s", e.Status, e.Message)
}

// Unwrap permite errors.Is(err, domain.ErrConflict) ante un 409.
func (e *APIError) Unwrap() error {
	if e.Status == fiber.StatusConflict {
		return domain.ErrConflict
	}
	return nil
}

// Client cliente HTTP de la API de contenido (sobre el agente de Fiber).
type Client struct {
	baseURL string
	timeout time.Duration
}

// Option configura el cliente.
type Option func(*Client)

// WithTimeout tiempo máximo por petición.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// New construye el cliente para baseURL (p. ej. http://localhost:3001).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{baseURL: strings.TrimRight(baseURL, "/"), timeout: 30 * time.Second}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Categories lee la lista de categorías y su versión.
func (c *Client) Categories() ([]entity.Category, string, error) {
	var out []entity.Category
	version, err := c.getCollection("/api/categories", &out)
	return out, version, err
}

// ReplaceCategories reemplaza la lista completa. version vacío omite If-Match.
func (c *Client) ReplaceCategories(items []entity.Category, version string) (string, error) {
	if items == nil {
		items = []entity.Category{}
	}
	return c.postCollection("/api/categories", items, version)
}

// Gallery lee la galería y su versión.
func (c *Client) Gallery() ([]entity.GalleryImage, string, error) {
	var out []entity.GalleryImage
	version, err := c.getCollection("/api/gallery", &out)
	return out, version, err
}

// ReplaceGallery reemplaza la galería completa.
func (c *Client) ReplaceGallery(items []entity.GalleryImage, version string) (string, error) {
	if items == nil {
		items = []entity.GalleryImage{}
	}
	return c.postCollection("/api/gallery", items, version)
}

// Upload sube un archivo al campo image y devuelve su URL pública.
func (c *Client) Upload(filename string, content []byte) (string, error) {
	body, contentType, err := multipartImage(filename, content)
	if err != nil {
		return "", err
	}
	a := fiber.Post(c.baseURL + "/api/upload").Timeout(c.timeout)
	a.ContentType(contentType)
	a.Body(body)

	var out struct {
		Success bool   `json:"success"`
		URL     string `json:"url"`
	}
	if _, err := c.send(a, &out); err != nil {
		return "", err
	}
	if !out.Success || out.URL == "" {
		return "", errors.New("upload sin URL en la respuesta")
	}
	return out.URL, nil
}

// DeleteImage pide borrar el archivo detrás de src; devuelve si se borró.
func (c *Client) DeleteImage(src string) (bool, error) {
	a := fiber.Delete(c.baseURL + "/api/gallery/image").Timeout(c.timeout)
	a.JSON(map[string]string{"src": src})

	var out struct {
		Deleted bool `json:"deleted"`
	}
	if _, err := c.send(a, &out); err != nil {
		return false, err
	}
	return out.Deleted, nil
}

func (c *Client) getCollection(path string, out any) (string, error) {
	a := fiber.Get(c.baseURL + path).Timeout(c.timeout)
	resp := fiber.AcquireResponse()
	defer fiber.ReleaseResponse(resp)
	a.SetResponse(resp)
	if _, err := c.send(a, out); err != nil {
		return "", err
	}
	return parseETag(string(resp.Header.Peek(fiber.HeaderETag))), nil
}

func (c *Client) postCollection(path string, items any, version string) (string, error) {
	a := fiber.Post(c.baseURL + path).Timeout(c.timeout)
	if version != "" {
		a.Set(fiber.HeaderIfMatch, `"`+version+`"`)
	}
	a.JSON(items)
	resp := fiber.AcquireResponse()
	defer fiber.ReleaseResponse(resp)
	a.SetResponse(resp)
	if _, err := c.send(a, nil); err != nil {
		return "", err
	}
	return parseETag(string(resp.Header.Peek(fiber.HeaderETag))), nil
}

// send ejecuta la petición, decodifica out si el estado es 2xx y traduce errores de la API.
func (c *Client) send(a *fiber.Agent, out any) (int, error) {
	if err := a.Parse(); err != nil {
		return 0, fmt.Errorf("preparar petición: %w", err)
	}
	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		return code, fmt.Errorf("petición: %w", errors.Join(errs...))
	}
	if code < 200 || code > 299 {
		apiErr := &APIError{Status: code, Message: strings.TrimSpace(string(body))}
		var eb struct {
			Code    string `json:"code"`
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if json.Unmarshal(body, &eb) == nil {
			apiErr.Code = eb.Code
			if eb.Message != "" {
				apiErr.Message = eb.Message
			} else if eb.Error != "" {
				apiErr.Message = eb.Error
			}
		}
		return code, apiErr
	}
	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return code, fmt.Errorf("decodificar respuesta: %w", err)
		}
	}
	return code, nil
}

// multipartImage arma el cuerpo con el Content-Type detectado del contenido,
// que el servidor compara contra su lista permitida.
func multipartImage(filename string, content []byte) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, filepath.Base(filename)))
	h.Set("Content-Type", mimetype.Detect(content).String())
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(content); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

func parseETag(h string) string {
	return strings.Trim(strings.TrimPrefix(strings.TrimSpace(h), "W/"), `"`)
}
