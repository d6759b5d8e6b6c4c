package dto

// ErrorResponse is the envelope of every non-2xx response. Errors holds a
// string, or an object keyed by field when several fields were rejected.
type ErrorResponse struct {
	Status  int    `json:"status" example:"400"`
	Message string `json:"message" example:"Erro de validação"`
	Errors  any    `json:"errors" swaggertype:"string" example:"CPF inválido"`
}
