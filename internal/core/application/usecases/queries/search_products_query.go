package queries

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

const (
	searchLimitDefault = 20
	searchLimitMax     = 100
)

var (
	ErrSearchProductsQueryIsNotConstructed = errors.New(
		"SearchProductsQuery must be created via NewSearchProductsQuery constructor",
	)
	ErrSearchTermIsRequired = errors.New("search term is required")
	ErrPriceRangeIsInvalid  = errors.New("price range is invalid")
)

// SearchProductsQuery retrieves products whose name or description
// matches a search term, optionally narrowed to a price range.
// Results are ranked by rating, best first, and paginated.
//
// Example:
//
//	query, err := NewSearchProductsQuery("desk", 0, 0, 20, 0)
//	if err != nil {
//	    return fmt.Errorf("invalid query: %w", err)
//	}
//
//	handler := NewSearchProductsQueryHandler(db)
//	hits, err := handler.Handle(ctx, query)
type SearchProductsQuery struct {
	term     string
	priceMin int64
	priceMax int64
	limit    int
	offset   int

	guard guard.ConstructorGuard
}

// NewSearchProductsQuery creates a product search query.
// The term must be non-blank; limit is clamped to a sane page size and
// negative offsets are treated as zero. Prices are in minor units; a
// priceMax of zero leaves the range open-ended upwards.
func NewSearchProductsQuery(term string, priceMin, priceMax int64, limit, offset int) (SearchProductsQuery, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return SearchProductsQuery{}, ErrSearchTermIsRequired
	}

	if priceMin < 0 || priceMax < 0 || (priceMax > 0 && priceMax < priceMin) {
		return SearchProductsQuery{}, ErrPriceRangeIsInvalid
	}

	if limit <= 0 || limit > searchLimitMax {
		limit = searchLimitDefault
	}
	if offset < 0 {
		offset = 0
	}

	return SearchProductsQuery{
		term:     term,
		priceMin: priceMin,
		priceMax: priceMax,
		limit:    limit,
		offset:   offset,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchProductsQuery) Validate() error {
	return q.guard.Validate(ErrSearchProductsQueryIsNotConstructed)
}

// Term returns the normalized search term.
func (q SearchProductsQuery) Term() string {
	return q.term
}

// PriceMin returns the lower price bound in minor units.
func (q SearchProductsQuery) PriceMin() int64 {
	return q.priceMin
}

// PriceMax returns the upper price bound in minor units; zero means open-ended.
func (q SearchProductsQuery) PriceMax() int64 {
	return q.priceMax
}

// Limit returns the page size.
func (q SearchProductsQuery) Limit() int {
	return q.limit
}

// Offset returns the number of hits to skip.
func (q SearchProductsQuery) Offset() int {
	return q.offset
}

// SearchProductsQueryResponse represents a single search hit.
type SearchProductsQueryResponse struct {
	ID           kernel.UUID
	Name         string
	PriceAmount  int64
	Rating       float64
	ReviewsCount int
	StoreName    string
}
