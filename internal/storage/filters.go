package storage

// TokenFilters -
type TokenFilters struct {
	// MinLiquidity - applied when set and non-negative
	MinLiquidity *float64
	// NetworkKey - matches rows with the key or with no key at all
	NetworkKey string
}

// Pagination - 1-based page slicing
type Pagination struct {
	Page     int
	PageSize int
}

// Offset -
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}
