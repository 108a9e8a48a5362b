// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest UoW that covers the aggregates it
// touches, so tests only have to mock what the handler actually uses.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// InventoryRepoFactory provides access to the inventory repository within a transaction.
	InventoryRepoFactory interface {
		InventoryRepository() ports.InventoryRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CartRepoFactory provides access to the cart repository within a transaction.
	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	// StoreRepoFactory provides access to the store repository within a transaction.
	StoreRepoFactory interface {
		StoreRepository() ports.StoreRepository
	}

	// ReviewRepoFactory provides access to the review repository within a transaction.
	ReviewRepoFactory interface {
		ReviewRepository() ports.ReviewRepository
	}

	// SummaryRepoFactory provides access to the rating summary repository within a transaction.
	SummaryRepoFactory interface {
		SummaryRepository() ports.SummaryRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// CheckoutUoW coordinates the cart, catalog and order aggregates that a
	// checkout spans. Every checkout either moves the whole cart into the
	// order or changes nothing.
	//
	// Example:
	//
	//	uow := factory.Create()
	//	err := uow.Begin(ctx)
	//	defer uow.Rollback(ctx)
	//
	//	cartRepo := uow.CartRepository()
	//	inventoryRepo := uow.InventoryRepository()
	//	// ... perform operations
	//
	//	err = uow.Commit(ctx)
	CheckoutUoW interface {
		TxManager
		CartRepoFactory
		ProductRepoFactory
		InventoryRepoFactory
		OrderRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// PurchaseUoW coordinates a direct single-product purchase, which
	// bypasses the cart but follows the same reservation rules.
	PurchaseUoW interface {
		TxManager
		ProductRepoFactory
		InventoryRepoFactory
		OrderRepoFactory
	}

	// PurchaseUoWFactory creates new purchase unit of work instances.
	PurchaseUoWFactory interface {
		Create() PurchaseUoW
	}

	// OrderUoW manages transactions for order cancellation, which updates
	// the order aggregate and returns stock to inventory.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		InventoryRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CartUoW manages transactions for cart-only operations.
	CartUoW interface {
		TxManager
		CartRepoFactory
		ProductRepoFactory
	}

	// CartUoWFactory creates new cart unit of work instances.
	CartUoWFactory interface {
		Create() CartUoW
	}

	// StoreUoW manages transactions for store-only operations.
	StoreUoW interface {
		TxManager
		StoreRepoFactory
	}

	// StoreUoWFactory creates new store unit of work instances.
	StoreUoWFactory interface {
		Create() StoreUoW
	}

	// CatalogUoW manages transactions that change a store's catalog:
	// product listings together with their inventory records.
	CatalogUoW interface {
		TxManager
		StoreRepoFactory
		ProductRepoFactory
		InventoryRepoFactory
	}

	// CatalogUoWFactory creates new catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// ReviewUoW manages transactions for review operations, which verify
	// the product and purchase history and keep the rating summary in
	// step with the review itself.
	ReviewUoW interface {
		TxManager
		ProductRepoFactory
		OrderRepoFactory
		ReviewRepoFactory
		SummaryRepoFactory
	}

	// ReviewUoWFactory creates new review unit of work instances.
	ReviewUoWFactory interface {
		Create() ReviewUoW
	}

	// SummaryUoW manages transactions for rating summary maintenance.
	SummaryUoW interface {
		TxManager
		SummaryRepoFactory
	}

	// SummaryUoWFactory creates new summary unit of work instances.
	SummaryUoWFactory interface {
		Create() SummaryUoW
	}

	// CustomerUoW manages transactions for customer account operations.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates new customer unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// SavedUoW manages transactions that move items between the cart and
	// the customer's saved-for-later list.
	SavedUoW interface {
		TxManager
		CartRepoFactory
		CustomerRepoFactory
	}

	// SavedUoWFactory creates new saved-for-later unit of work instances.
	SavedUoWFactory interface {
		Create() SavedUoW
	}
)
