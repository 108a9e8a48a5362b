package http

import (
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/services"
)

// Request bodies.

// SignUpRequest creates a customer account.
type SignUpRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginRequest opens a session for an existing account.
type LoginRequest struct {
	Email string `json:"email"`
}

// UpdateProfileRequest changes the caller's display name and address.
type UpdateProfileRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// AddCartItemRequest puts a product into the caller's cart.
type AddCartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CheckoutRequest purchases the caller's entire cart.
type CheckoutRequest struct {
	Receiver        string `json:"receiver"`
	DeliveryAddress string `json:"deliveryAddress"`
}

// PlaceOrderRequest purchases a single product directly.
type PlaceOrderRequest struct {
	ProductID       string `json:"productId"`
	Quantity        int    `json:"quantity"`
	Receiver        string `json:"receiver"`
	DeliveryAddress string `json:"deliveryAddress"`
}

// StoreRequest creates or updates a store.
type StoreRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AddProductRequest lists a product in a store.
type AddProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceAmount int64  `json:"priceAmount"`
	Stock       int    `json:"stock"`
}

// UpdateProductRequest changes a listing; Restock adds units on top of
// the current stock, zero means no restock.
type UpdateProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceAmount int64  `json:"priceAmount"`
	Restock     int    `json:"restock"`
}

// ReviewRequest creates or amends a review.
type ReviewRequest struct {
	Rating  int    `json:"rating"`
	Content string `json:"content"`
}

// Response bodies. Identifiers cross the wire as canonical UUID strings.

// CreatedResponse returns the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// SessionResponse returns a freshly issued session token.
type SessionResponse struct {
	Token string `json:"token"`
}

// CustomerResponse is the caller's profile.
type CustomerResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// DescriptionToken is one piece of a parsed product description.
type DescriptionToken struct {
	Text string `json:"text"`
	Link string `json:"link,omitempty"`
}

// ProductDetailsResponse is a product page projection.
type ProductDetailsResponse struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	PriceAmount  int64              `json:"priceAmount"`
	Rating       float64            `json:"rating"`
	ReviewsCount int                `json:"reviewsCount"`
	Description  []DescriptionToken `json:"description,omitempty"`
	Stock        int                `json:"stock,omitempty"`
	Sold         int                `json:"sold,omitempty"`
	StoreID      string             `json:"storeId,omitempty"`
	StoreName    string             `json:"storeName,omitempty"`
}

// SearchHitResponse is one product search hit.
type SearchHitResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	PriceAmount  int64   `json:"priceAmount"`
	Rating       float64 `json:"rating"`
	ReviewsCount int     `json:"reviewsCount"`
	StoreName    string  `json:"storeName"`
}

// CartResponse is the caller's cart priced at current prices.
type CartResponse struct {
	Lines []CartLineResponse `json:"lines"`
}

// CartLineResponse is one cart line.
type CartLineResponse struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	PriceAmount int64  `json:"priceAmount"`
	Stock       int    `json:"stock"`
}

// OrderResponse is the caller's order with all purchased lines.
type OrderResponse struct {
	OrderID string              `json:"orderId"`
	Items   []OrderItemResponse `json:"items"`
}

// OrderItemResponse is one purchased line with its price snapshot.
type OrderItemResponse struct {
	ID              string `json:"id"`
	ProductID       string `json:"productId"`
	ProductName     string `json:"productName"`
	Quantity        int    `json:"quantity"`
	PriceAmount     int64  `json:"priceAmount"`
	Status          string `json:"status"`
	Receiver        string `json:"receiver"`
	DeliveryAddress string `json:"deliveryAddress"`
}

// ListedProductResponse is one product on a wishlist, saved-for-later or
// purchase history page.
type ListedProductResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PriceAmount int64  `json:"priceAmount"`
	Stock       int    `json:"stock"`
	Deleted     bool   `json:"deleted"`
}

// StoreDetailsResponse is a storefront with its live listings.
type StoreDetailsResponse struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Products    []StoreProductResponse `json:"products"`
}

// StoreProductResponse is one live listing on a storefront page.
type StoreProductResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	PriceAmount  int64   `json:"priceAmount"`
	Stock        int     `json:"stock"`
	Rating       float64 `json:"rating"`
	ReviewsCount int     `json:"reviewsCount"`
}

// ProductReviewsResponse is a product's reviews with the summary pair.
type ProductReviewsResponse struct {
	Rating       float64          `json:"rating"`
	ReviewsCount int              `json:"reviewsCount"`
	Reviews      []ReviewResponse `json:"reviews"`
}

// ReviewResponse is one review with its author's display name.
type ReviewResponse struct {
	ID               string `json:"id"`
	CustomerName     string `json:"customerName"`
	Rating           int    `json:"rating"`
	Content          string `json:"content"`
	VerifiedPurchase bool   `json:"verifiedPurchase"`
}

func toDescriptionTokens(tokens []services.Token) []DescriptionToken {
	out := make([]DescriptionToken, 0, len(tokens))
	for _, token := range tokens {
		out = append(out, DescriptionToken{Text: token.Text, Link: token.Link})
	}
	return out
}

func toProductDetailsResponse(details queries.GetProductDetailsQueryResponse, full bool) ProductDetailsResponse {
	resp := ProductDetailsResponse{
		ID:           details.ID.String(),
		Name:         details.Name,
		PriceAmount:  details.PriceAmount,
		Rating:       details.Rating,
		ReviewsCount: details.ReviewsCount,
	}
	if full {
		resp.Description = toDescriptionTokens(details.Description)
		resp.Stock = details.Stock
		resp.Sold = details.Sold
		resp.StoreID = details.StoreID.String()
		resp.StoreName = details.StoreName
	}
	return resp
}

func toSearchHitResponses(hits []queries.SearchProductsQueryResponse) []SearchHitResponse {
	out := make([]SearchHitResponse, 0, len(hits))
	for _, hit := range hits {
		out = append(out, SearchHitResponse{
			ID:           hit.ID.String(),
			Name:         hit.Name,
			PriceAmount:  hit.PriceAmount,
			Rating:       hit.Rating,
			ReviewsCount: hit.ReviewsCount,
			StoreName:    hit.StoreName,
		})
	}
	return out
}

func toCartResponse(cart queries.GetCartQueryResponse) CartResponse {
	lines := make([]CartLineResponse, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		lines = append(lines, CartLineResponse{
			ProductID:   line.ProductID.String(),
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			PriceAmount: line.PriceAmount,
			Stock:       line.Stock,
		})
	}
	return CartResponse{Lines: lines}
}

func toOrderItemResponse(item queries.OrderItemResponse) OrderItemResponse {
	return OrderItemResponse{
		ID:              item.ID.String(),
		ProductID:       item.ProductID.String(),
		ProductName:     item.ProductName,
		Quantity:        item.Quantity,
		PriceAmount:     item.PriceAmount,
		Status:          item.Status,
		Receiver:        item.Receiver,
		DeliveryAddress: item.DeliveryAddress,
	}
}

func toOrderResponse(order queries.GetOrderQueryResponse) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, toOrderItemResponse(item))
	}
	return OrderResponse{OrderID: order.OrderID.String(), Items: items}
}

func toListedProductResponses(products []queries.ListedProductResponse) []ListedProductResponse {
	out := make([]ListedProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ListedProductResponse{
			ID:          p.ID.String(),
			Name:        p.Name,
			PriceAmount: p.PriceAmount,
			Stock:       p.Stock,
			Deleted:     p.Deleted,
		})
	}
	return out
}

func toStoreDetailsResponse(details queries.GetStoreDetailsQueryResponse) StoreDetailsResponse {
	products := make([]StoreProductResponse, 0, len(details.Products))
	for _, p := range details.Products {
		products = append(products, StoreProductResponse{
			ID:           p.ID.String(),
			Name:         p.Name,
			PriceAmount:  p.PriceAmount,
			Stock:        p.Stock,
			Rating:       p.Rating,
			ReviewsCount: p.ReviewsCount,
		})
	}
	return StoreDetailsResponse{
		ID:          details.ID.String(),
		Name:        details.Name,
		Description: details.Description,
		Products:    products,
	}
}

func toProductReviewsResponse(page queries.GetProductReviewsQueryResponse) ProductReviewsResponse {
	reviews := make([]ReviewResponse, 0, len(page.Reviews))
	for _, r := range page.Reviews {
		reviews = append(reviews, ReviewResponse{
			ID:               r.ID.String(),
			CustomerName:     r.CustomerName,
			Rating:           r.Rating,
			Content:          r.Content,
			VerifiedPurchase: r.VerifiedPurchase,
		})
	}
	return ProductReviewsResponse{
		Rating:       page.Rating,
		ReviewsCount: page.ReviewsCount,
		Reviews:      reviews,
	}
}

func toCustomerResponse(profile queries.GetCustomerQueryResponse) CustomerResponse {
	return CustomerResponse{
		ID:      profile.ID.String(),
		Name:    profile.Name,
		Email:   profile.Email,
		Address: profile.Address,
	}
}
