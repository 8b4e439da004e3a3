package dto

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// IDResponse corpo das respostas de criação.
type IDResponse struct {
	ID string `json:"id"`
}

// SuccessResponse corpo das operações idempotentes (logout, exclusões, mudanças de status).
type SuccessResponse struct {
	Success bool `json:"success"`
}
