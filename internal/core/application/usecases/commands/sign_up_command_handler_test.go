package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/customer"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSignUpCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewSignUpCommand(customerID, "Jane Doe", "Jane@Example.com")
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("GetByEmail", mock.Anything, "jane@example.com").
			Return(nil, errs.NewObjectNotFoundError("email", "jane@example.com")).Once(),
		customerRepo.On("Add", mock.Anything, mock.MatchedBy(func(c *customer.Customer) bool {
			return c.Email() == "jane@example.com" && c.Name() == "Jane Doe"
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSignUpCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	customerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSignUpCommandHandler_Handle_EmailTaken(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSignUpCommand(kernel.NewUUID(), "Jane Doe", "jane@example.com")
	require.NoError(t, err)

	taken, err := customer.NewCustomer(kernel.NewUUID(), "Someone Else", "jane@example.com")
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("GetByEmail", mock.Anything, "jane@example.com").Return(taken, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSignUpCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)
	customerRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestNewSignUpCommand_Validation(t *testing.T) {
	_, err := commands.NewSignUpCommand(kernel.NewUUID(), "", "jane@example.com")
	require.ErrorIs(t, err, commands.ErrCustomerNameIsRequired)

	_, err = commands.NewSignUpCommand(kernel.NewUUID(), "Jane Doe", "")
	require.ErrorIs(t, err, commands.ErrEmailIsRequired)
}
