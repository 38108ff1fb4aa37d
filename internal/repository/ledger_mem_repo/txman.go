package ledger_mem_repo

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

// NopManager — заглушка менеджера транзакций для режима без Postgres.
// Операции MemRepo атомарны сами по себе, поэтому оборачивать нечего.
type NopManager struct{}

func NewNopManager() *NopManager {
	return &NopManager{}
}

var _ trm.Manager = (*NopManager)(nil)

func (NopManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (NopManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
