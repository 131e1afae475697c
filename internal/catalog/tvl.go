package catalog

import (
	"context"
	"math/big"

	"github.com/dipdup-io/l2-token-catalog/internal/storage"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// usdPriceScale - fixed-point places the USD price is scaled to before the
// big-integer multiplication
const usdPriceScale = 6

// CalculateTvl - per-token locked values with the aggregate record as the
// trailing element, or the aggregate record alone when onlyTotal is set.
// Both views are served from one cached computation.
func (s *Service) CalculateTvl(ctx context.Context, onlyTotal bool) ([]TokenTvl, error) {
	if tvl, ok := s.cache.Get(); ok {
		if onlyTotal {
			return tvl[len(tvl)-1:], nil
		}
		return tvl, nil
	}

	log.Info().Msg("calculating tvl")

	tokens, err := s.tokens.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "token scan")
	}

	var (
		total = new(big.Int)
		tvl   = make([]TokenTvl, 0, len(tokens)+1)
	)
	for i := range tokens {
		value := tokenTvl(tokens[i])
		total.Add(total, value)
		tvl = append(tvl, TokenTvl{
			Token: tokens[i],
			Tvl:   value.String(),
		})
	}

	tvl = append(tvl, newAggregateRecord(total))
	s.cache.Put(tvl)

	if onlyTotal {
		return tvl[len(tvl)-1:], nil
	}
	return tvl, nil
}

// tokenTvl - totalSupply * floor(usdPrice * 10^6) / 10^6 / 10^decimals with
// truncating division throughout. An unknown price contributes zero.
func tokenTvl(token storage.Token) *big.Int {
	price := decimal.NewFromFloat(token.UsdPrice).Shift(usdPriceScale).Floor().BigInt()
	if price.Sign() <= 0 {
		return new(big.Int)
	}

	value := new(big.Int).Mul(token.TotalSupply.BigInt(), price)
	value.Quo(value, pow10(usdPriceScale))
	value.Quo(value, pow10(int64(token.Decimals)))
	return value
}

func pow10(n int64) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(n), nil)
}
