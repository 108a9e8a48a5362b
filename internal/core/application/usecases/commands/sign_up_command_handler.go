package commands

import (
	"context"
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/customer"
	"marketplace/internal/pkg/errs"
)

// SignUpCommandHandler handles customer registration.
// Email addresses are unique across accounts; registering a taken address
// fails with a conflict error.
type SignUpCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewSignUpCommandHandler creates a handler for customer registration.
// Requires a CustomerUoWFactory for transactional persistence.
func NewSignUpCommandHandler(uowFactory CustomerUoWFactory) SignUpCommandHandler {
	return SignUpCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
func (h SignUpCommandHandler) Handle(ctx context.Context, cmd SignUpCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRepo := uow.CustomerRepository()

	email := strings.ToLower(strings.TrimSpace(cmd.Email()))
	_, err := customerRepo.GetByEmail(ctx, email)
	if err == nil {
		return errs.NewConflictError("email")
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	account, err := customer.NewCustomer(cmd.CustomerID(), cmd.Name(), email)
	if err != nil {
		return err
	}

	if err = customerRepo.Add(ctx, account); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
