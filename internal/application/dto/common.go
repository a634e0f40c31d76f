package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SuccessResponse confirmación de una escritura.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// SaveFailedResponse respuesta cuando no se pudo escribir el documento.
type SaveFailedResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
