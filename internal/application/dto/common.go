package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse cuerpo de confirmación (deletes, operaciones sin payload).
type MessageResponse struct {
	Message string `json:"message"`
}

// PageResponse metadatos de página en listados.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
