package dto

// PageRequest parâmetros de listagem paginada, como vêm na query string.
type PageRequest struct {
	Page     int    `query:"page" validate:"min=1"`
	PageSize int    `query:"pageSize" validate:"min=1,max=100"`
	Search   string `query:"search"`
	Sort     string `query:"sort"` // "campo:asc" | "campo:desc"
}

// DefaultPage aplica valores padrão se Page/PageSize vierem zerados.
func (p *PageRequest) DefaultPage() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = 10
	}
}

// PageResponse envelope de página nas respostas de listagem.
type PageResponse[T any] struct {
	Items    []T `json:"items"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
