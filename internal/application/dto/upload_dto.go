package dto

import "io"

// UploadInput archivo recibido en el campo multipart "image".
type UploadInput struct {
	Filename    string
	ContentType string // declarado por el cliente
	Size        int64  // declarado por la parte multipart
	Content     io.Reader
}

// UploadResponse salida de POST /api/upload.
type UploadResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
}
