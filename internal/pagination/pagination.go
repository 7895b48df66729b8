// Package pagination fornece a paginação limit/offset aplicada em memória
// sobre listas já materializadas.
package pagination

const (
	DefaultLimit = 50
	MaxLimit     = 100
)

// Params são os parâmetros de paginação lidos da query string
type Params struct {
	Limit  int `form:"limit,default=50" binding:"gte=1,lte=100"`
	Offset int `form:"offset,default=0" binding:"gte=0"`
}

// Page é uma página de itens com metadados de paginação
type Page[T any] struct {
	Items  []T `json:"items"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// Paginate recorta items segundo params. Um offset além do fim resulta numa
// página vazia, com Total preservado.
func Paginate[T any](items []T, params Params) Page[T] {
	limit := params.Limit
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	total := len(items)
	start := min(offset, total)
	end := min(start+limit, total)

	page := make([]T, end-start)
	copy(page, items[start:end])

	return Page[T]{
		Items:  page,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
}

// Map converte os itens de uma página mantendo os metadados
func Map[T, U any](page Page[T], fn func(T) U) Page[U] {
	items := make([]U, len(page.Items))
	for i, item := range page.Items {
		items[i] = fn(item)
	}

	return Page[U]{
		Items:  items,
		Total:  page.Total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}
}
