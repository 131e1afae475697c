package catalog

import (
	"math/big"
	"strings"

	"github.com/dipdup-io/l2-token-catalog/internal/storage"
)

// TokenTvl - a token with its contribution to total value locked
type TokenTvl struct {
	storage.Token
	Tvl string `json:"tvl"`
}

var ethL1Address = "0x0000000000000000000000000000000000000000"

// EthToken - the chain's native asset. It has no catalog row and is served as
// a fallback whenever its address is requested. Never shadows a stored row.
var EthToken = storage.Token{
	L2Address: "0x000000000000000000000000000000000000800a",
	L1Address: &ethL1Address,
	Symbol:    "ETH",
	Name:      "Ether",
	Decimals:  18,
}

func isEthAddress(address string) bool {
	return strings.EqualFold(address, EthToken.L2Address)
}

// reserved identity of the aggregate record trailing every TVL sequence
const (
	tvlL2Address = "0x1TVLTVLTVLTVLTVLTVLTVLTVLTVLTVLTVLTVLTVL"
	tvlL1Address = "0x0TVLTVLTVLTVLTVLTVLTVLTVLTVLTVLTVLTVLTVL"
	tvlSymbol    = "__TVL__"
)

func newAggregateRecord(total *big.Int) TokenTvl {
	l1Address := tvlL1Address
	return TokenTvl{
		Token: storage.Token{
			L2Address: tvlL2Address,
			L1Address: &l1Address,
			Symbol:    tvlSymbol,
			Name:      tvlSymbol,
			Decimals:  18,
		},
		Tvl: total.String(),
	}
}
