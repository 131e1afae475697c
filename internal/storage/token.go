package storage

import (
	"context"

	"github.com/dipdup-net/indexer-sdk/pkg/storage"
	"github.com/shopspring/decimal"
)

// IToken -
type IToken interface {
	storage.Table[*Token]

	GetByAddress(ctx context.Context, address string) (Token, error)
	ExistsByAddress(ctx context.Context, address string) (bool, error)
	ListAll(ctx context.Context) ([]Token, error)
	Filtered(ctx context.Context, fltr TokenFilters, page Pagination) ([]Token, int, error)
}

// Token -
type Token struct {
	// nolint
	tableName struct{} `pg:"token" comment:"Table contains catalog tokens"`

	Id          uint64          `json:"-" pg:"id,notnull,type:bigint,pk" comment:"Unique internal identity"`
	L2Address   string          `json:"l2Address" pg:",unique:token_l2_address,notnull" comment:"Canonical network-local token address"`
	L1Address   *string         `json:"l1Address" comment:"Canonical L1 counterpart address"`
	Symbol      string          `json:"symbol" comment:"Token symbol"`
	Name        string          `json:"name" comment:"Token display name"`
	Decimals    uint32          `json:"decimals" pg:",use_zero" comment:"Scale of the token's raw integer balance"`
	IconURL     string          `json:"iconURL" comment:"Token icon link"`
	Liquidity   *float64        `json:"liquidity" comment:"Liquidity rank, null when unknown"`
	UsdPrice    float64         `json:"usdPrice" pg:",use_zero" comment:"USD price, zero when unknown"`
	TotalSupply decimal.Decimal `json:"totalSupply" pg:",type:numeric,use_zero" comment:"Total supply in raw units"`
	NetworkKey  *string         `json:"networkKey" comment:"Network the token belongs to, null means all networks"`
	BlockNumber uint64          `json:"-" pg:",use_zero" comment:"Block of the last provenance event"`
	LogIndex    uint64          `json:"-" pg:",use_zero" comment:"Log index of the last provenance event"`
}

// TableName -
func (Token) TableName() string {
	return "token"
}
