package ports

import "context"

// UnitOfWork define a interface para gerenciamento de transações.
// A transação vive no contexto passado a fn e é confirmada se fn
// retornar nil; caso contrário (ou em panic) é desfeita.
type UnitOfWork interface {
	WithTransaction(ctx context.Context, fn func(context.Context) error) error
}
