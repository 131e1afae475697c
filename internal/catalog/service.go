package catalog

import (
	"context"

	"github.com/dipdup-io/l2-token-catalog/internal/storage"
	"github.com/pkg/errors"
)

// errors
var (
	ErrTokenNotFound     = errors.New("token not found")
	ErrInvalidPagination = errors.New("invalid pagination")
)

// TokenStore - read access to the catalog required by the service
type TokenStore interface {
	GetByAddress(ctx context.Context, address string) (storage.Token, error)
	ExistsByAddress(ctx context.Context, address string) (bool, error)
	ListAll(ctx context.Context) ([]storage.Token, error)
	Filtered(ctx context.Context, fltr storage.TokenFilters, page storage.Pagination) ([]storage.Token, int, error)
	IsNoRows(err error) bool
}

// Page - one slice of the ordered catalog
type Page struct {
	Items      []storage.Token `json:"items"`
	TotalItems int             `json:"totalItems"`
	TotalPages int             `json:"totalPages"`
	Page       int             `json:"page"`
	PageSize   int             `json:"pageSize"`
}

// Service -
type Service struct {
	tokens      TokenStore
	cache       *TvlCache
	maxPageSize int
}

// NewService -
func NewService(tokens TokenStore, cache *TvlCache, maxPageSize int) *Service {
	if maxPageSize < 1 {
		maxPageSize = 100
	}
	return &Service{
		tokens:      tokens,
		cache:       cache,
		maxPageSize: maxPageSize,
	}
}

// FindOne - the token stored under the address. The native asset is served as
// a fallback when it has no stored row.
func (s *Service) FindOne(ctx context.Context, address string) (storage.Token, error) {
	token, err := s.tokens.GetByAddress(ctx, address)
	switch {
	case err == nil:
		return token, nil
	case s.tokens.IsNoRows(err):
		if isEthAddress(address) {
			return EthToken, nil
		}
		return storage.Token{}, errors.Wrap(ErrTokenNotFound, address)
	default:
		return storage.Token{}, errors.Wrap(err, "token lookup")
	}
}

// Exists -
func (s *Service) Exists(ctx context.Context, address string) (bool, error) {
	exists, err := s.tokens.ExistsByAddress(ctx, address)
	if err != nil {
		return false, errors.Wrap(err, "token existence")
	}
	if !exists && isEthAddress(address) {
		return true, nil
	}
	return exists, nil
}

// FindAll - one page of the filtered catalog ordered by liquidity with
// unknown liquidity last, ties broken by block number and log index
func (s *Service) FindAll(ctx context.Context, fltr storage.TokenFilters, page storage.Pagination) (Page, error) {
	if page.Page < 1 || page.PageSize < 1 || page.PageSize > s.maxPageSize {
		return Page{}, errors.Wrapf(ErrInvalidPagination, "page=%d page_size=%d", page.Page, page.PageSize)
	}

	tokens, count, err := s.tokens.Filtered(ctx, fltr, page)
	if err != nil {
		return Page{}, errors.Wrap(err, "token scan")
	}

	totalPages := count / page.PageSize
	if count%page.PageSize > 0 {
		totalPages++
	}

	return Page{
		Items:      tokens,
		TotalItems: count,
		TotalPages: totalPages,
		Page:       page.Page,
		PageSize:   page.PageSize,
	}, nil
}
