package tx

import "context"

// Noop менеджер для хранилищ без транзакций, fn выполняется как есть.
// Атомарность в этом случае обеспечивает само хранилище.
type Noop struct{}

func NewNoop() *Noop {
	return &Noop{}
}

func (n *Noop) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
