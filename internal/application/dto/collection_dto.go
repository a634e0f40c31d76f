package dto

import "encoding/json"

// CollectionResponse documento completo tal como está guardado más su versión (ETag).
type CollectionResponse struct {
	Items   []json.RawMessage
	Version string
}

// DeleteImageRequest entrada de DELETE /api/gallery/image.
type DeleteImageRequest struct {
	Src string `json:"src"`
}

// DeleteImageResponse indica si se borró un archivo local.
type DeleteImageResponse struct {
	Success bool `json:"success"`
	Deleted bool `json:"deleted"`
}
