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

// GetCustomerByEmailQueryHandler resolves accounts by email.
type GetCustomerByEmailQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerByEmailQueryHandler creates a handler for email lookups.
func NewGetCustomerByEmailQueryHandler(db *gorm.DB) GetCustomerByEmailQueryHandler {
	return GetCustomerByEmailQueryHandler{db: db}
}

// Handle executes the email lookup.
func (h GetCustomerByEmailQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerByEmailQuery,
) (GetCustomerQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCustomerQueryResponse{}, err
	}

	var resp GetCustomerQueryResponse
	var id uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, name, email, address
		FROM customers
		WHERE email = ?
	`, query.Email()).Row()

	err := row.Scan(&id, &resp.Name, &resp.Email, &resp.Address)
	if errors.Is(err, sql.ErrNoRows) {
		return resp, errs.NewObjectNotFoundError("email", query.Email())
	}
	if err != nil {
		return resp, err
	}

	resp.ID, err = kernel.UUIDFromBytes(id[:])
	return resp, err
}
