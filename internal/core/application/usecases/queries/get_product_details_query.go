// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// Projection views accepted by GetProductDetailsQuery. Callers pick a view
// from this allow-list; arbitrary field selection is not supported.
const (
	ProductViewSummary = "summary"
	ProductViewFull    = "full"
)

var ErrGetProductDetailsQueryIsNotConstructed = errors.New(
	"GetProductDetailsQuery must be created via NewGetProductDetailsQuery constructor",
)

// GetProductDetailsQuery retrieves a single product page.
// The view selects one of two fixed projections: "summary" returns the
// name, price and rating line; "full" adds the parsed description, stock
// and store details.
//
// Example:
//
//	query, err := NewGetProductDetailsQuery(productID, ProductViewFull)
//	if err != nil {
//	    return fmt.Errorf("invalid query: %w", err)
//	}
//
//	handler := NewGetProductDetailsQueryHandler(db, services.NewDescriptionMarkup())
//	details, err := handler.Handle(ctx, query)
type GetProductDetailsQuery struct {
	productID kernel.UUID
	view      string

	guard guard.ConstructorGuard
}

// NewGetProductDetailsQuery creates a query for a product page.
// The view must be one of the allow-listed projections.
func NewGetProductDetailsQuery(productID kernel.UUID, view string) (GetProductDetailsQuery, error) {
	if err := productID.Validate(); err != nil {
		return GetProductDetailsQuery{}, err
	}
	if view != ProductViewSummary && view != ProductViewFull {
		return GetProductDetailsQuery{}, errs.NewValueIsInvalidError("view")
	}

	return GetProductDetailsQuery{
		productID: productID,
		view:      view,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductDetailsQueryIsNotConstructed)
}

// ProductID returns the identifier of the requested product.
func (q GetProductDetailsQuery) ProductID() kernel.UUID {
	return q.productID
}

// View returns the selected projection.
func (q GetProductDetailsQuery) View() string {
	return q.view
}

// GetProductDetailsQueryResponse represents a product page in the read
// model. Description and store fields are only populated for the full
// view.
type GetProductDetailsQueryResponse struct {
	ID           kernel.UUID
	Name         string
	PriceAmount  int64
	Rating       float64
	ReviewsCount int

	// full view only
	Description []services.Token
	Stock       int
	Sold        int
	StoreID     kernel.UUID
	StoreName   string
}
