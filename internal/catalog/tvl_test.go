package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/dipdup-io/l2-token-catalog/internal/storage"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_tokenTvl(t *testing.T) {
	tests := []struct {
		name        string
		usdPrice    float64
		totalSupply string
		decimals    uint32
		want        string
	}{
		{
			name:        "whole units",
			usdPrice:    2.50,
			totalSupply: "1000000000000000000",
			decimals:    18,
			want:        "2",
		}, {
			name:        "truncating division",
			usdPrice:    1.5,
			totalSupply: "5000000",
			decimals:    6,
			want:        "7",
		}, {
			name:        "unknown price",
			usdPrice:    0,
			totalSupply: "1000000000000000000",
			decimals:    18,
			want:        "0",
		}, {
			name:        "sub-cent price",
			usdPrice:    0.000001,
			totalSupply: "3000000000000000000000000",
			decimals:    18,
			want:        "3",
		}, {
			name:        "price below fixed-point resolution",
			usdPrice:    0.0000001,
			totalSupply: "1000000000000000000",
			decimals:    18,
			want:        "0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := storage.Token{
				UsdPrice:    tt.usdPrice,
				TotalSupply: decimal.RequireFromString(tt.totalSupply),
				Decimals:    tt.decimals,
			}
			require.Equal(t, tt.want, tokenTvl(token).String())
		})
	}
}

func tvlTestTokens() []storage.Token {
	return []storage.Token{
		{
			L2Address:   "0x01",
			Symbol:      "A",
			Decimals:    18,
			UsdPrice:    2.50,
			TotalSupply: decimal.RequireFromString("1000000000000000000"),
		}, {
			L2Address:   "0x02",
			Symbol:      "B",
			Decimals:    6,
			UsdPrice:    1.5,
			TotalSupply: decimal.RequireFromString("5000000"),
		},
	}
}

func TestCalculateTvl(t *testing.T) {
	store := &testStore{tokens: tvlTestTokens()}
	service := newTestService(store)

	tvl, err := service.CalculateTvl(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, tvl, 3)

	require.Equal(t, "2", tvl[0].Tvl)
	require.Equal(t, "A", tvl[0].Symbol)
	require.Equal(t, "7", tvl[1].Tvl)

	total := tvl[2]
	require.Equal(t, tvlSymbol, total.Symbol)
	require.Equal(t, tvlL2Address, total.L2Address)
	require.EqualValues(t, 18, total.Decimals)
	require.Equal(t, "9", total.Tvl)
}

func TestCalculateTvlOnlyTotal(t *testing.T) {
	store := &testStore{tokens: tvlTestTokens()}
	service := newTestService(store)

	tvl, err := service.CalculateTvl(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, tvl, 1)
	require.Equal(t, tvlSymbol, tvl[0].Symbol)
	require.Equal(t, "9", tvl[0].Tvl)
}

func TestCalculateTvlViewsShareCacheGeneration(t *testing.T) {
	store := &testStore{tokens: tvlTestTokens()}
	service := newTestService(store)

	full, err := service.CalculateTvl(context.Background(), false)
	require.NoError(t, err)

	// a different view within the TTL must not recompute
	total, err := service.CalculateTvl(context.Background(), true)
	require.NoError(t, err)
	require.Equal(t, 1, store.listCalls)
	require.Equal(t, full[len(full)-1], total[0])
}

func TestCalculateTvlCacheHitSurvivesStoreMutation(t *testing.T) {
	store := &testStore{tokens: tvlTestTokens()}
	service := newTestService(store)

	first, err := service.CalculateTvl(context.Background(), false)
	require.NoError(t, err)

	store.err = errors.New("connection refused")

	second, err := service.CalculateTvl(context.Background(), false)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, 1, store.listCalls)
}

func TestCalculateTvlStoreFailureCachesNothing(t *testing.T) {
	store := &testStore{err: errors.New("connection refused")}
	service := newTestService(store)

	_, err := service.CalculateTvl(context.Background(), false)
	require.Error(t, err)

	store.err = nil
	store.tokens = tvlTestTokens()

	tvl, err := service.CalculateTvl(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, tvl, 3)
	require.Equal(t, 2, store.listCalls)
}

func TestCalculateTvlEmptyCatalog(t *testing.T) {
	service := newTestService(&testStore{})

	tvl, err := service.CalculateTvl(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, tvl, 1)
	require.Equal(t, "0", tvl[0].Tvl)
	require.Equal(t, tvlSymbol, tvl[0].Symbol)
}

func TestCalculateTvlRecomputesAfterExpiry(t *testing.T) {
	store := &testStore{tokens: tvlTestTokens()}
	service := NewService(store, NewTvlCache(time.Millisecond*50), 100)

	_, err := service.CalculateTvl(context.Background(), true)
	require.NoError(t, err)

	time.Sleep(time.Millisecond * 80)

	_, err = service.CalculateTvl(context.Background(), true)
	require.NoError(t, err)
	require.Equal(t, 2, store.listCalls)
}
