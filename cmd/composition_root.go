package cmd

import (
	"strconv"
	"time"

	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/kafka"
	"marketplace/internal/adapters/out/postgres"
	sessionredis "marketplace/internal/adapters/out/redis"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	sessions   *sessionredis.SessionStore
	publisher  *kafka.OrderEventPublisher
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	client := redis.NewClient(&redis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
	})

	ttl := sessionredis.DefaultSessionTTL
	if hours, err := strconv.Atoi(configs.SessionTTLHours); err == nil && hours > 0 {
		ttl = time.Duration(hours) * time.Hour
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		sessions:   sessionredis.NewSessionStore(client, ttl),
		publisher:  kafka.NewOrderEventPublisher(configs.KafkaHost, configs.KafkaOrderTopic),
	}
}

// SessionStore exposes the Redis-backed session store for the HTTP layer.
func (c *CompositionRoot) SessionStore() ports.SessionStore {
	return c.sessions
}

// Close releases resources held by outbound adapters.
func (c *CompositionRoot) Close() error {
	return c.publisher.Close()
}

// CreateHTTPServer wires every handler into the HTTP server.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	cmd := httpin.CommandHandlers{
		SignUp:             c.CreateSignUpCommandHandler(),
		UpdateProfile:      c.CreateUpdateProfileCommandHandler(),
		AddToWishlist:      c.CreateAddToWishlistCommandHandler(),
		RemoveFromWishlist: c.CreateRemoveFromWishlistCommandHandler(),
		SaveForLater:       c.CreateSaveForLaterCommandHandler(),
		RemoveSavedProduct: c.CreateRemoveSavedProductCommandHandler(),
		AddItemToCart:      c.CreateAddItemToCartCommandHandler(),
		RemoveItemFromCart: c.CreateRemoveItemFromCartCommandHandler(),
		ClearCart:          c.CreateClearCartCommandHandler(),
		Checkout:           c.CreateCheckoutCommandHandler(),
		PlaceOrder:         c.CreatePlaceOrderCommandHandler(),
		CancelOrderItem:    c.CreateCancelOrderItemCommandHandler(),
		CreateStore:        c.CreateCreateStoreCommandHandler(),
		UpdateStore:        c.CreateUpdateStoreCommandHandler(),
		RemoveStore:        c.CreateRemoveStoreCommandHandler(),
		AddProduct:         c.CreateAddProductCommandHandler(),
		UpdateProduct:      c.CreateUpdateProductCommandHandler(),
		RemoveProduct:      c.CreateRemoveProductCommandHandler(),
		CreateReview:       c.CreateCreateReviewCommandHandler(),
		AmendReview:        c.CreateAmendReviewCommandHandler(),
		RemoveReview:       c.CreateRemoveReviewCommandHandler(),
	}

	qry := httpin.QueryHandlers{
		GetCustomer:          c.CreateGetCustomerQueryHandler(),
		GetCustomerByEmail:   c.CreateGetCustomerByEmailQueryHandler(),
		GetProductDetails:    c.CreateGetProductDetailsQueryHandler(),
		SearchProducts:       c.CreateSearchProductsQueryHandler(),
		GetProductReviews:    c.CreateGetProductReviewsQueryHandler(),
		GetStoreDetails:      c.CreateGetStoreDetailsQueryHandler(),
		GetCart:              c.CreateGetCartQueryHandler(),
		GetWishlist:          c.CreateGetWishlistQueryHandler(),
		GetSavedProducts:     c.CreateGetSavedProductsQueryHandler(),
		GetPurchasedProducts: c.CreateGetPurchasedProductsQueryHandler(),
		GetOrder:             c.CreateGetOrderQueryHandler(),
		GetOrderItem:         c.CreateGetOrderItemQueryHandler(),
	}

	return httpin.NewServer(c.SessionStore(), cmd, qry)
}

func (c *CompositionRoot) CreateSignUpCommandHandler() commands.SignUpCommandHandler {
	return commands.NewSignUpCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateUpdateProfileCommandHandler() commands.UpdateProfileCommandHandler {
	return commands.NewUpdateProfileCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateAddToWishlistCommandHandler() commands.AddToWishlistCommandHandler {
	return commands.NewAddToWishlistCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateRemoveFromWishlistCommandHandler() commands.RemoveFromWishlistCommandHandler {
	return commands.NewRemoveFromWishlistCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateSaveForLaterCommandHandler() commands.SaveForLaterCommandHandler {
	var f commands.SavedUoWFactory = FuncSavedUoWFactory(func() commands.SavedUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSaveForLaterCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveSavedProductCommandHandler() commands.RemoveSavedProductCommandHandler {
	return commands.NewRemoveSavedProductCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateAddItemToCartCommandHandler() commands.AddItemToCartCommandHandler {
	return commands.NewAddItemToCartCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateRemoveItemFromCartCommandHandler() commands.RemoveItemFromCartCommandHandler {
	return commands.NewRemoveItemFromCartCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateClearCartCommandHandler() commands.ClearCartCommandHandler {
	return commands.NewClearCartCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckoutCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.PurchaseUoWFactory = FuncPurchaseUoWFactory(func() commands.PurchaseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateCancelOrderItemCommandHandler() commands.CancelOrderItemCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderItemCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateCreateStoreCommandHandler() commands.CreateStoreCommandHandler {
	return commands.NewCreateStoreCommandHandler(c.storeUoWFactory())
}

func (c *CompositionRoot) CreateUpdateStoreCommandHandler() commands.UpdateStoreCommandHandler {
	return commands.NewUpdateStoreCommandHandler(c.storeUoWFactory())
}

func (c *CompositionRoot) CreateRemoveStoreCommandHandler() commands.RemoveStoreCommandHandler {
	return commands.NewRemoveStoreCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateAddProductCommandHandler() commands.AddProductCommandHandler {
	return commands.NewAddProductCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	return commands.NewUpdateProductCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateRemoveProductCommandHandler() commands.RemoveProductCommandHandler {
	return commands.NewRemoveProductCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateCreateReviewCommandHandler() commands.CreateReviewCommandHandler {
	return commands.NewCreateReviewCommandHandler(c.reviewUoWFactory())
}

func (c *CompositionRoot) CreateAmendReviewCommandHandler() commands.AmendReviewCommandHandler {
	return commands.NewAmendReviewCommandHandler(c.reviewUoWFactory())
}

func (c *CompositionRoot) CreateRemoveReviewCommandHandler() commands.RemoveReviewCommandHandler {
	return commands.NewRemoveReviewCommandHandler(c.reviewUoWFactory())
}

func (c *CompositionRoot) CreateReconcileRatingsCommandHandler() commands.ReconcileRatingsCommandHandler {
	var f commands.SummaryUoWFactory = FuncSummaryUoWFactory(func() commands.SummaryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReconcileRatingsCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveAbandonedCartsCommandHandler() commands.RemoveAbandonedCartsCommandHandler {
	return commands.NewRemoveAbandonedCartsCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateGetCustomerQueryHandler() queries.GetCustomerQueryHandler {
	return queries.NewGetCustomerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerByEmailQueryHandler() queries.GetCustomerByEmailQueryHandler {
	return queries.NewGetCustomerByEmailQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductDetailsQueryHandler() queries.GetProductDetailsQueryHandler {
	return queries.NewGetProductDetailsQueryHandler(c.gormDB, services.NewDescriptionMarkup())
}

func (c *CompositionRoot) CreateSearchProductsQueryHandler() queries.SearchProductsQueryHandler {
	return queries.NewSearchProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductReviewsQueryHandler() queries.GetProductReviewsQueryHandler {
	return queries.NewGetProductReviewsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStoreDetailsQueryHandler() queries.GetStoreDetailsQueryHandler {
	return queries.NewGetStoreDetailsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWishlistQueryHandler() queries.GetWishlistQueryHandler {
	return queries.NewGetWishlistQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSavedProductsQueryHandler() queries.GetSavedProductsQueryHandler {
	return queries.NewGetSavedProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPurchasedProductsQueryHandler() queries.GetPurchasedProductsQueryHandler {
	return queries.NewGetPurchasedProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderItemQueryHandler() queries.GetOrderItemQueryHandler {
	return queries.NewGetOrderItemQueryHandler(c.gormDB)
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) cartUoWFactory() commands.CartUoWFactory {
	return FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) storeUoWFactory() commands.StoreUoWFactory {
	return FuncStoreUoWFactory(func() commands.StoreUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) reviewUoWFactory() commands.ReviewUoWFactory {
	return FuncReviewUoWFactory(func() commands.ReviewUoW {
		return c.uowFactory.Create()
	})
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncStoreUoWFactory func() commands.StoreUoW

func (f FuncStoreUoWFactory) Create() commands.StoreUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncReviewUoWFactory func() commands.ReviewUoW

func (f FuncReviewUoWFactory) Create() commands.ReviewUoW {
	return f()
}

type FuncSummaryUoWFactory func() commands.SummaryUoW

func (f FuncSummaryUoWFactory) Create() commands.SummaryUoW {
	return f()
}

type FuncSavedUoWFactory func() commands.SavedUoW

func (f FuncSavedUoWFactory) Create() commands.SavedUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncPurchaseUoWFactory func() commands.PurchaseUoW

func (f FuncPurchaseUoWFactory) Create() commands.PurchaseUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
