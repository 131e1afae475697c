package postgres

import (
	"context"

	"github.com/dipdup-io/l2-token-catalog/internal/storage"
	"github.com/dipdup-net/go-lib/database"
	"github.com/dipdup-net/indexer-sdk/pkg/storage/postgres"
)

// Token -
type Token struct {
	*postgres.Table[*storage.Token]
}

// NewToken -
func NewToken(db *database.Bun) *Token {
	return &Token{
		Table: postgres.NewTable[*storage.Token](db),
	}
}

// GetByAddress -
func (t *Token) GetByAddress(ctx context.Context, address string) (token storage.Token, err error) {
	err = t.DB().NewSelect().Model(&token).Where("l2_address = ?", address).Limit(1).Scan(ctx)
	return
}

// ExistsByAddress -
func (t *Token) ExistsByAddress(ctx context.Context, address string) (bool, error) {
	return t.DB().NewSelect().Model((*storage.Token)(nil)).Where("l2_address = ?", address).Exists(ctx)
}

// ListAll -
func (t *Token) ListAll(ctx context.Context) (tokens []storage.Token, err error) {
	err = t.DB().NewSelect().Model(&tokens).Scan(ctx)
	return
}

// Filtered - one page of the filtered catalog plus the count of all matching
// rows. Unknown liquidity sorts after every known value.
func (t *Token) Filtered(ctx context.Context, fltr storage.TokenFilters, page storage.Pagination) (tokens []storage.Token, count int, err error) {
	query := t.DB().NewSelect().Model(&tokens)

	if fltr.NetworkKey != "" {
		query.Where("(network_key IS NULL OR network_key = ?)", fltr.NetworkKey)
	}
	if fltr.MinLiquidity != nil && *fltr.MinLiquidity >= 0 {
		query.Where("liquidity >= ?", *fltr.MinLiquidity)
	}

	count, err = query.
		OrderExpr("liquidity DESC NULLS LAST").
		OrderExpr("block_number DESC").
		OrderExpr("log_index DESC").
		Limit(page.PageSize).
		Offset(page.Offset()).
		ScanAndCount(ctx)
	return
}
