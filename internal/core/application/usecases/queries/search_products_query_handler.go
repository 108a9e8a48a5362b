package queries

import (
	"context"
	"database/sql"
	"strings"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SearchProductsQueryHandler retrieves search hits from the database.
// Matching is a case-insensitive substring match on the product name or
// description; deleted products and products of closed stores are excluded.
type SearchProductsQueryHandler struct {
	db *gorm.DB
}

// NewSearchProductsQueryHandler creates a handler for product search.
// Requires a GORM database connection for query execution.
func NewSearchProductsQueryHandler(db *gorm.DB) SearchProductsQueryHandler {
	return SearchProductsQueryHandler{db: db}
}

// Handle executes the search query.
// Hits are ordered by rating descending, ties broken by name, so the
// ranking is stable across pages.
func (h SearchProductsQueryHandler) Handle(
	ctx context.Context,
	query SearchProductsQuery,
) ([]SearchProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	hits := make([]SearchProductsQueryResponse, 0)
	term := escapeLikePattern(query.Term())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.name,
			i.price,
			COALESCE(s.rating, 0),
			COALESCE(s.reviews_count, 0),
			st.name
		FROM products p
		JOIN inventories i ON i.id = p.inventory_id
		JOIN stores st ON st.id = p.store_id AND st.deleted_at IS NULL
		LEFT JOIN review_summaries s ON s.product_id = p.id
		WHERE p.deleted_at IS NULL
		  AND (p.name ILIKE '%' || ? || '%' ESCAPE '\'
		       OR p.description ILIKE '%' || ? || '%' ESCAPE '\')
		  AND i.price >= ?
		  AND (? = 0 OR i.price <= ?)
		ORDER BY COALESCE(s.rating, 0) DESC, p.name
		LIMIT ? OFFSET ?
	`, term, term,
		query.PriceMin(), query.PriceMax(), query.PriceMax(),
		query.Limit(), query.Offset()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var hit SearchProductsQueryResponse
		var id uuid.UUID
		var rating sql.NullFloat64
		var reviewsCount sql.NullInt64

		err = rows.Scan(
			&id,
			&hit.Name,
			&hit.PriceAmount,
			&rating,
			&reviewsCount,
			&hit.StoreName,
		)
		if err != nil {
			return nil, err
		}

		hit.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		hit.Rating = rating.Float64
		hit.ReviewsCount = int(reviewsCount.Int64)
		hits = append(hits, hit)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return hits, nil
}

// escapeLikePattern neutralizes LIKE metacharacters in a user-supplied
// term so a literal "%" or "_" matches itself instead of everything.
func escapeLikePattern(term string) string {
	return likeEscaper.Replace(term)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
