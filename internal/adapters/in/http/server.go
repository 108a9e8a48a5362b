// Package http exposes the marketplace as a JSON API over Echo.
// Handlers translate requests into commands and queries; authentication
// is a bearer session token resolved by SessionMiddleware.
package http

import (
	"net/http"
	"strconv"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// CommandHandlers bundles every write-side handler the server dispatches to.
type CommandHandlers struct {
	SignUp             commands.SignUpCommandHandler
	UpdateProfile      commands.UpdateProfileCommandHandler
	AddToWishlist      commands.AddToWishlistCommandHandler
	RemoveFromWishlist commands.RemoveFromWishlistCommandHandler
	SaveForLater       commands.SaveForLaterCommandHandler
	RemoveSavedProduct commands.RemoveSavedProductCommandHandler
	AddItemToCart      commands.AddItemToCartCommandHandler
	RemoveItemFromCart commands.RemoveItemFromCartCommandHandler
	ClearCart          commands.ClearCartCommandHandler
	Checkout           commands.CheckoutCommandHandler
	PlaceOrder         commands.PlaceOrderCommandHandler
	CancelOrderItem    commands.CancelOrderItemCommandHandler
	CreateStore        commands.CreateStoreCommandHandler
	UpdateStore        commands.UpdateStoreCommandHandler
	RemoveStore        commands.RemoveStoreCommandHandler
	AddProduct         commands.AddProductCommandHandler
	UpdateProduct      commands.UpdateProductCommandHandler
	RemoveProduct      commands.RemoveProductCommandHandler
	CreateReview       commands.CreateReviewCommandHandler
	AmendReview        commands.AmendReviewCommandHandler
	RemoveReview       commands.RemoveReviewCommandHandler
}

// QueryHandlers bundles every read-side handler the server dispatches to.
type QueryHandlers struct {
	GetCustomer          queries.GetCustomerQueryHandler
	GetCustomerByEmail   queries.GetCustomerByEmailQueryHandler
	GetProductDetails    queries.GetProductDetailsQueryHandler
	SearchProducts       queries.SearchProductsQueryHandler
	GetProductReviews    queries.GetProductReviewsQueryHandler
	GetStoreDetails      queries.GetStoreDetailsQueryHandler
	GetCart              queries.GetCartQueryHandler
	GetWishlist          queries.GetWishlistQueryHandler
	GetSavedProducts     queries.GetSavedProductsQueryHandler
	GetPurchasedProducts queries.GetPurchasedProductsQueryHandler
	GetOrder             queries.GetOrderQueryHandler
	GetOrderItem         queries.GetOrderItemQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	sessions ports.SessionStore
	commands CommandHandlers
	queries  QueryHandlers
}

// NewServer creates the HTTP server with its session store and use case handlers.
func NewServer(sessions ports.SessionStore, cmd CommandHandlers, qry QueryHandlers) *Server {
	return &Server{
		sessions: sessions,
		commands: cmd,
		queries:  qry,
	}
}

// RegisterRoutes mounts every route under /api/v1. Routes that act on
// the caller's data sit behind the session middleware.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	// Public surface.
	api.POST("/signup", s.SignUp)
	api.POST("/sessions", s.Login)
	api.GET("/products/search", s.SearchProducts)
	api.GET("/products/:id", s.GetProduct)
	api.GET("/products/:id/reviews", s.GetProductReviews)

	// Authenticated surface.
	auth := api.Group("", SessionMiddleware(s.sessions))
	auth.DELETE("/sessions", s.Logout)

	auth.GET("/me", s.GetProfile)
	auth.PUT("/me", s.UpdateProfile)
	auth.GET("/me/wishlist", s.GetWishlist)
	auth.POST("/me/wishlist/:productId", s.AddToWishlist)
	auth.DELETE("/me/wishlist/:productId", s.RemoveFromWishlist)
	auth.GET("/me/saved", s.GetSavedProducts)
	auth.POST("/me/saved/:productId", s.SaveForLater)
	auth.DELETE("/me/saved/:productId", s.RemoveSavedProduct)
	auth.GET("/me/purchases", s.GetPurchasedProducts)

	auth.GET("/cart", s.GetCart)
	auth.POST("/cart/items", s.AddCartItem)
	auth.DELETE("/cart/items/:productId", s.RemoveCartItem)
	auth.DELETE("/cart", s.ClearCart)
	auth.POST("/cart/checkout", s.Checkout)

	auth.POST("/orders", s.PlaceOrder)
	auth.GET("/orders", s.GetOrder)
	auth.GET("/orders/items/:id", s.GetOrderItem)
	auth.POST("/orders/items/:id/cancel", s.CancelOrderItem)

	auth.POST("/stores", s.CreateStore)
	auth.GET("/stores/:id", s.GetStore)
	auth.PUT("/stores/:id", s.UpdateStore)
	auth.DELETE("/stores/:id", s.RemoveStore)
	auth.POST("/stores/:id/products", s.AddProduct)
	auth.PUT("/products/:id", s.UpdateProduct)
	auth.DELETE("/products/:id", s.RemoveProduct)

	auth.POST("/products/:id/reviews", s.CreateReview)
	auth.PUT("/reviews/:id", s.AmendReview)
	auth.DELETE("/reviews/:id", s.RemoveReview)
}

// SignUp handles POST /api/v1/signup - creates a customer account.
func (s *Server) SignUp(ctx echo.Context) error {
	var req SignUpRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	customerID := kernel.NewUUID()
	cmd, err := commands.NewSignUpCommand(customerID, req.Name, req.Email)
	if err != nil {
		return badRequest(ctx, "invalid signup data: "+err.Error())
	}

	if err = s.commands.SignUp.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: customerID.String()})
}

// Login handles POST /api/v1/sessions - opens a session for an account.
// There is no credential check: identity providers live outside this
// service, so email lookup alone issues the session token.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	query, err := queries.NewGetCustomerByEmailQuery(req.Email)
	if err != nil {
		return badRequest(ctx, "invalid login data: "+err.Error())
	}

	account, err := s.queries.GetCustomerByEmail.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	token, err := s.sessions.Create(ctx.Request().Context(), account.ID)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, SessionResponse{Token: token})
}

// Logout handles DELETE /api/v1/sessions - revokes the caller's session.
func (s *Server) Logout(ctx echo.Context) error {
	if err := s.sessions.Revoke(ctx.Request().Context(), bearerToken(ctx)); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetProfile handles GET /api/v1/me - returns the caller's profile.
func (s *Server) GetProfile(ctx echo.Context) error {
	query, err := queries.NewGetCustomerQuery(callerID(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	profile, err := s.queries.GetCustomer.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCustomerResponse(profile))
}

// UpdateProfile handles PUT /api/v1/me - updates name and address.
func (s *Server) UpdateProfile(ctx echo.Context) error {
	var req UpdateProfileRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateProfileCommand(callerID(ctx), req.Name, req.Address)
	if err != nil {
		return badRequest(ctx, "invalid profile data: "+err.Error())
	}

	if err = s.commands.UpdateProfile.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetWishlist handles GET /api/v1/me/wishlist.
func (s *Server) GetWishlist(ctx echo.Context) error {
	query, err := queries.NewGetWishlistQuery(callerID(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	products, err := s.queries.GetWishlist.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toListedProductResponses(products))
}

// AddToWishlist handles POST /api/v1/me/wishlist/:productId.
func (s *Server) AddToWishlist(ctx echo.Context) error {
	productID, err := pathUUID(ctx, "productId")
	if err != nil {
		return badRequest(ctx, "invalid product id")
	}

	cmd, err := commands.NewAddToWishlistCommand(callerID(ctx), productID)
	if err != nil {
		return badRequest(ctx, "invalid wishlist data: "+err.Error())
	}

	if err = s.commands.AddToWishlist.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveFromWishlist handles DELETE /api/v1/me/wishlist/:productId.
func (s *Server) RemoveFromWishlist(ctx echo.Context) error {
	productID, err := pathUUID(ctx, "productId")
	if err != nil {
		return badRequest(ctx, "invalid product id")
	}

	cmd, err := commands.NewRemoveFromWishlistCommand(callerID(ctx), productID)
	if err != nil {
		return badRequest(ctx, "invalid wishlist data: "+err.Error())
	}

	if err = s.commands.RemoveFromWishlist.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetSavedProducts handles GET /api/v1/me/saved.
func (s *Server) GetSavedProducts(ctx echo.Context) error {
	query, err := queries.NewGetSavedProductsQuery(callerID(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	products, err := s.queries.GetSavedProducts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toListedProductResponses(products))
}

// SaveForLater handles POST /api/v1/me/saved/:productId - moves a product
// from the cart into the saved-for-later set.
func (s *Server) SaveForLater(ctx echo.Context) error {
	productID, err := pathUUID(ctx, "productId")
	if err != nil {
		return badRequest(ctx, "invalid product id")
	}

	cmd, err := commands.NewSaveForLaterCommand(callerID(ctx), productID)
	if err != nil {
		return badRequest(ctx, "invalid saved product data: "+err.Error())
	}

	if err = s.commands.SaveForLater.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveSavedProduct handles DELETE /api/v1/me/saved/:productId.
func (s *Server) RemoveSavedProduct(ctx echo.Context) error {
	productID, err := pathUUID(ctx, "productId")
	if err != nil {
		return badRequest(ctx, "invalid product id")
	}

	cmd, err := commands.NewRemoveSavedProductCommand(callerID(ctx), productID)
	if err != nil {
		return badRequest(ctx, "invalid saved product data: "+err.Error())
	}

	if err = s.commands.RemoveSavedProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetPurchasedProducts handles GET /api/v1/me/purchases - distinct
// products the caller has paid for.
func (s *Server) GetPurchasedProducts(ctx echo.Context) error {
	query, err := queries.NewGetPurchasedProductsQuery(callerID(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	products, err := s.queries.GetPurchasedProducts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toListedProductResponses(products))
}

// GetCart handles GET /api/v1/cart.
func (s *Server) GetCart(ctx echo.Context) error {
	query, err := queries.NewGetCartQuery(callerID(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	cart, err := s.queries.GetCart.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCartResponse(cart))
}

// AddCartItem handles POST /api/v1/cart/items - upserts a cart line.
func (s *Server) AddCartItem(ctx echo.Context) error {
	var req AddCartItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return badRequest(ctx, "invalid product id")
	}

	cmd, err := commands.NewAddItemToCartCommand(callerID(ctx), productID, req.Quantity)
	if err != nil {
		return badRequest(ctx, "invalid cart item data: "+err.Error())
	}

	if err = s.commands.AddItemToCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveCartItem handles DELETE /api/v1/cart/items/:productId.
func (s *Server) RemoveCartItem(ctx echo.Context) error {
	productID, err := pathUUID(ctx, "productId")
	if err != nil {
		return badRequest(ctx, "invalid product id")
	}

	cmd, err := commands.NewRemoveItemFromCartCommand(callerID(ctx), productID)
	if err != nil {
		return badRequest(ctx, "invalid cart item data: "+err.Error())
	}

	if err = s.commands.RemoveItemFromCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ClearCart handles DELETE /api/v1/cart.
func (s *Server) ClearCart(ctx echo.Context) error {
	cmd, err := commands.NewClearCartCommand(callerID(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.ClearCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Checkout handles POST /api/v1/cart/checkout - purchases the whole cart.
func (s *Server) Checkout(ctx echo.Context) error {
	var req CheckoutRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCheckoutCommand(callerID(ctx), req.Receiver, req.DeliveryAddress)
	if err != nil {
		return badRequest(ctx, "invalid checkout data: "+err.Error())
	}

	if err = s.commands.Checkout.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PlaceOrder handles POST /api/v1/orders - direct single-product purchase.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return badRequest(ctx, "invalid product id")
	}

	cmd, err := commands.NewPlaceOrderCommand(
		callerID(ctx), productID, req.Quantity, req.Receiver, req.DeliveryAddress)
	if err != nil {
		return badRequest(ctx, "invalid order data: "+err.Error())
	}

	if err = s.commands.PlaceOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrder handles GET /api/v1/orders - the caller's order history.
func (s *Server) GetOrder(ctx echo.Context) error {
	query, err := queries.NewGetOrderQuery(callerID(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	order, err := s.queries.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(order))
}

// GetOrderItem handles GET /api/v1/orders/items/:id - one purchased line.
func (s *Server) GetOrderItem(ctx echo.Context) error {
	itemID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid order item id")
	}

	query, err := queries.NewGetOrderItemQuery(callerID(ctx), itemID)
	if err != nil {
		return respondError(ctx, err)
	}

	item, err := s.queries.GetOrderItem.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderItemResponse(item))
}

// CancelOrderItem handles POST /api/v1/orders/items/:id/cancel.
func (s *Server) CancelOrderItem(ctx echo.Context) error {
	itemID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid order item id")
	}

	cmd, err := commands.NewCancelOrderItemCommand(callerID(ctx), itemID)
	if err != nil {
		return badRequest(ctx, "invalid cancellation data: "+err.Error())
	}

	if err = s.commands.CancelOrderItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateStore handles POST /api/v1/stores.
func (s *Server) CreateStore(ctx echo.Context) error {
	var req StoreRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	storeID := kernel.NewUUID()
	cmd, err := commands.NewCreateStoreCommand(storeID, callerID(ctx), req.Name, req.Description)
	if err != nil {
		return badRequest(ctx, "invalid store data: "+err.Error())
	}

	if err = s.commands.CreateStore.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: storeID.String()})
}

// GetStore handles GET /api/v1/stores/:id - the owner's store dashboard.
func (s *Server) GetStore(ctx echo.Context) error {
	storeID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid store id")
	}

	query, err := queries.NewGetStoreDetailsQuery(storeID, callerID(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	details, err := s.queries.GetStoreDetails.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toStoreDetailsResponse(details))
}

// UpdateStore handles PUT /api/v1/stores/:id.
func (s *Server) UpdateStore(ctx echo.Context) error {
	storeID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid store id")
	}

	var req StoreRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateStoreCommand(storeID, callerID(ctx), req.Name, req.Description)
	if err != nil {
		return badRequest(ctx, "invalid store data: "+err.Error())
	}

	if err = s.commands.UpdateStore.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveStore handles DELETE /api/v1/stores/:id - closes the store and
// delists its products.
func (s *Server) RemoveStore(ctx echo.Context) error {
	storeID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid store id")
	}

	cmd, err := commands.NewRemoveStoreCommand(storeID, callerID(ctx))
	if err != nil {
		return badRequest(ctx, "invalid store data: "+err.Error())
	}

	if err = s.commands.RemoveStore.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddProduct handles POST /api/v1/stores/:id/products.
func (s *Server) AddProduct(ctx echo.Context) error {
	storeID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid store id")
	}

	var req AddProductRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewAddProductCommand(
		productID, kernel.NewUUID(), storeID, callerID(ctx),
		req.Name, req.Description, req.PriceAmount, req.Stock)
	if err != nil {
		return badRequest(ctx, "invalid product data: "+err.Error())
	}

	if err = s.commands.AddProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: productID.String()})
}

// UpdateProduct handles PUT /api/v1/products/:id.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	productID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid product id")
	}

	var req UpdateProductRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateProductCommand(
		productID, callerID(ctx),
		req.Name, req.Description, req.PriceAmount, req.Restock)
	if err != nil {
		return badRequest(ctx, "invalid product data: "+err.Error())
	}

	if err = s.commands.UpdateProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveProduct handles DELETE /api/v1/products/:id.
func (s *Server) RemoveProduct(ctx echo.Context) error {
	productID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid product id")
	}

	cmd, err := commands.NewRemoveProductCommand(productID, callerID(ctx))
	if err != nil {
		return badRequest(ctx, "invalid product data: "+err.Error())
	}

	if err = s.commands.RemoveProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetProduct handles GET /api/v1/products/:id - a product page.
// The view query parameter selects the projection, defaulting to summary.
func (s *Server) GetProduct(ctx echo.Context) error {
	productID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid product id")
	}

	view := ctx.QueryParam("view")
	if view == "" {
		view = queries.ProductViewSummary
	}

	query, err := queries.NewGetProductDetailsQuery(productID, view)
	if err != nil {
		return respondError(ctx, err)
	}

	details, err := s.queries.GetProductDetails.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProductDetailsResponse(details, view == queries.ProductViewFull))
}

// SearchProducts handles GET /api/v1/products/search.
func (s *Server) SearchProducts(ctx echo.Context) error {
	priceMin := queryInt64(ctx, "priceMin")
	priceMax := queryInt64(ctx, "priceMax")
	limit := queryInt(ctx, "limit")
	offset := queryInt(ctx, "offset")

	query, err := queries.NewSearchProductsQuery(ctx.QueryParam("q"), priceMin, priceMax, limit, offset)
	if err != nil {
		return badRequest(ctx, "invalid search: "+err.Error())
	}

	hits, err := s.queries.SearchProducts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toSearchHitResponses(hits))
}

// CreateReview handles POST /api/v1/products/:id/reviews.
func (s *Server) CreateReview(ctx echo.Context) error {
	productID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid product id")
	}

	var req ReviewRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	reviewID := kernel.NewUUID()
	cmd, err := commands.NewCreateReviewCommand(reviewID, productID, callerID(ctx), req.Rating, req.Content)
	if err != nil {
		return badRequest(ctx, "invalid review data: "+err.Error())
	}

	if err = s.commands.CreateReview.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: reviewID.String()})
}

// GetProductReviews handles GET /api/v1/products/:id/reviews.
func (s *Server) GetProductReviews(ctx echo.Context) error {
	productID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid product id")
	}

	query, err := queries.NewGetProductReviewsQuery(productID, queryInt(ctx, "limit"), queryInt(ctx, "offset"))
	if err != nil {
		return respondError(ctx, err)
	}

	page, err := s.queries.GetProductReviews.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProductReviewsResponse(page))
}

// AmendReview handles PUT /api/v1/reviews/:id.
func (s *Server) AmendReview(ctx echo.Context) error {
	reviewID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid review id")
	}

	var req ReviewRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewAmendReviewCommand(reviewID, callerID(ctx), req.Rating, req.Content)
	if err != nil {
		return badRequest(ctx, "invalid review data: "+err.Error())
	}

	if err = s.commands.AmendReview.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveReview handles DELETE /api/v1/reviews/:id.
func (s *Server) RemoveReview(ctx echo.Context) error {
	reviewID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid review id")
	}

	cmd, err := commands.NewRemoveReviewCommand(reviewID, callerID(ctx))
	if err != nil {
		return badRequest(ctx, "invalid review data: "+err.Error())
	}

	if err = s.commands.RemoveReview.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// pathUUID parses a UUID path parameter.
func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

// queryInt parses an optional integer query parameter, zero when absent
// or malformed. Constructors apply their own defaults and clamps.
func queryInt(ctx echo.Context, name string) int {
	value, err := strconv.Atoi(ctx.QueryParam(name))
	if err != nil {
		return 0
	}
	return value
}

func queryInt64(ctx echo.Context, name string) int64 {
	value, err := strconv.ParseInt(ctx.QueryParam(name), 10, 64)
	if err != nil {
		return 0
	}
	return value
}
