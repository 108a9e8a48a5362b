package queries

import (
	"context"
	"database/sql"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStoreDetailsQueryHandler retrieves store dashboards from the
// database. Closed stores are treated as missing, and callers other
// than the owner are rejected.
type GetStoreDetailsQueryHandler struct {
	db *gorm.DB
}

// NewGetStoreDetailsQueryHandler creates a handler for storefront queries.
// Requires a GORM database connection for query execution.
func NewGetStoreDetailsQueryHandler(db *gorm.DB) GetStoreDetailsQueryHandler {
	return GetStoreDetailsQueryHandler{db: db}
}

// Handle executes the storefront query.
func (h GetStoreDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetStoreDetailsQuery,
) (GetStoreDetailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStoreDetailsQueryResponse{}, err
	}

	resp, err := h.storefront(ctx, query)
	if err != nil {
		return resp, err
	}

	resp.Products, err = h.listings(ctx, query)
	return resp, err
}

func (h GetStoreDetailsQueryHandler) storefront(
	ctx context.Context,
	query GetStoreDetailsQuery,
) (GetStoreDetailsQueryResponse, error) {
	var resp GetStoreDetailsQueryResponse
	var id, ownerID uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, owner_id, name, description
		FROM stores
		WHERE id = ? AND deleted_at IS NULL
	`, query.StoreID().Bytes()).Row()

	err := row.Scan(&id, &ownerID, &resp.Name, &resp.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return resp, errs.NewObjectNotFoundError("storeId", query.StoreID().String())
	}
	if err != nil {
		return resp, err
	}

	owner, err := kernel.UUIDFromBytes(ownerID[:])
	if err != nil {
		return resp, err
	}
	if !owner.IsEqual(query.CallerID()) {
		return resp, errs.NewUnauthorizedError("storeId")
	}

	resp.ID, err = kernel.UUIDFromBytes(id[:])
	return resp, err
}

func (h GetStoreDetailsQueryHandler) listings(
	ctx context.Context,
	query GetStoreDetailsQuery,
) ([]StoreProductResponse, error) {
	listings := make([]StoreProductResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.name,
			i.price,
			i.stock,
			COALESCE(s.rating, 0),
			COALESCE(s.reviews_count, 0)
		FROM products p
		JOIN inventories i ON i.id = p.inventory_id
		LEFT JOIN review_summaries s ON s.product_id = p.id
		WHERE p.store_id = ? AND p.deleted_at IS NULL
		ORDER BY p.name
	`, query.StoreID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var listing StoreProductResponse
		var id uuid.UUID
		var rating sql.NullFloat64
		var reviewsCount sql.NullInt64

		err = rows.Scan(
			&id,
			&listing.Name,
			&listing.PriceAmount,
			&listing.Stock,
			&rating,
			&reviewsCount,
		)
		if err != nil {
			return nil, err
		}

		listing.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		listing.Rating = rating.Float64
		listing.ReviewsCount = int(reviewsCount.Int64)
		listings = append(listings, listing)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return listings, nil
}
