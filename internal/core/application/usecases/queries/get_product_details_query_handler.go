package queries

import (
	"context"
	"database/sql"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProductDetailsQueryHandler retrieves product pages from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetProductDetailsQueryHandler struct {
	db     *gorm.DB
	markup services.DescriptionMarkup
}

// NewGetProductDetailsQueryHandler creates a handler for product page queries.
// Requires a GORM database connection and the description markup parser.
func NewGetProductDetailsQueryHandler(
	db *gorm.DB,
	markup services.DescriptionMarkup,
) GetProductDetailsQueryHandler {
	return GetProductDetailsQueryHandler{db: db, markup: markup}
}

// Handle executes the query for a single product page.
// Deleted products are treated as missing. The summary projection skips
// the description, stock and store columns entirely.
func (h GetProductDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetProductDetailsQuery,
) (GetProductDetailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProductDetailsQueryResponse{}, err
	}

	if query.View() == ProductViewSummary {
		return h.summary(ctx, query)
	}

	return h.full(ctx, query)
}

func (h GetProductDetailsQueryHandler) summary(
	ctx context.Context,
	query GetProductDetailsQuery,
) (GetProductDetailsQueryResponse, error) {
	var resp GetProductDetailsQueryResponse
	var id uuid.UUID
	var rating sql.NullFloat64
	var reviewsCount sql.NullInt64

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.name,
			i.price,
			s.rating,
			s.reviews_count
		FROM products p
		JOIN inventories i ON i.id = p.inventory_id
		LEFT JOIN review_summaries s ON s.product_id = p.id
		WHERE p.id = ? AND p.deleted_at IS NULL
	`, query.ProductID().Bytes()).Row()

	err := row.Scan(&id, &resp.Name, &resp.PriceAmount, &rating, &reviewsCount)
	if errors.Is(err, sql.ErrNoRows) {
		return resp, errs.NewObjectNotFoundError("productId", query.ProductID().String())
	}
	if err != nil {
		return resp, err
	}

	resp.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return resp, err
	}
	resp.Rating = rating.Float64
	resp.ReviewsCount = int(reviewsCount.Int64)

	return resp, nil
}

func (h GetProductDetailsQueryHandler) full(
	ctx context.Context,
	query GetProductDetailsQuery,
) (GetProductDetailsQueryResponse, error) {
	var resp GetProductDetailsQueryResponse
	var id, storeID uuid.UUID
	var description string
	var rating sql.NullFloat64
	var reviewsCount sql.NullInt64

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.name,
			p.description,
			i.price,
			i.stock,
			i.sold,
			st.id,
			st.name,
			s.rating,
			s.reviews_count
		FROM products p
		JOIN inventories i ON i.id = p.inventory_id
		JOIN stores st ON st.id = p.store_id
		LEFT JOIN review_summaries s ON s.product_id = p.id
		WHERE p.id = ? AND p.deleted_at IS NULL
	`, query.ProductID().Bytes()).Row()

	err := row.Scan(
		&id,
		&resp.Name,
		&description,
		&resp.PriceAmount,
		&resp.Stock,
		&resp.Sold,
		&storeID,
		&resp.StoreName,
		&rating,
		&reviewsCount,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return resp, errs.NewObjectNotFoundError("productId", query.ProductID().String())
	}
	if err != nil {
		return resp, err
	}

	resp.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return resp, err
	}
	resp.StoreID, err = kernel.UUIDFromBytes(storeID[:])
	if err != nil {
		return resp, err
	}
	resp.Description = h.markup.Parse(description)
	resp.Rating = rating.Float64
	resp.ReviewsCount = int(reviewsCount.Int64)

	return resp, nil
}
