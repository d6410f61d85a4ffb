package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  []FieldErrorEntry `json:"fields,omitempty"` // solo en VALIDATION_ERROR
}

// FieldErrorEntry error de un campo del request.
type FieldErrorEntry struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// HealthResponse cuerpo de GET /health.
type HealthResponse struct {
	Status     string `json:"status"`
	App        string `json:"app"`
	Calculator string `json:"calculator"`            // URL primaria configurada
	LastSource string `json:"last_source,omitempty"` // online | local
}
