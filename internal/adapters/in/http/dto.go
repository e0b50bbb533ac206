package http

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// SignupRequest registers a new user account.
type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=administrator waiter cook cashier"`
}

// LoginRequest authenticates a user by credentials.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued token and the public user fields.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse is a user without credentials.
type UserResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// NewOrderRequest opens an order for a table.
type NewOrderRequest struct {
	Table string                `json:"table" validate:"required"`
	Items []NewOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// NewOrderItemRequest is one requested line of a new order.
type NewOrderItemRequest struct {
	ProductID int64 `json:"productId" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,gt=0"`
}

// UpdateOrderRequest is a partial order update. Omitted fields are left
// unchanged.
type UpdateOrderRequest struct {
	Status *string `json:"status,omitempty" validate:"omitempty,oneof=pending delivered"`
	CookID *int64  `json:"cookId,omitempty" validate:"omitempty,gt=0"`
}

// UpdateOrderItemRequest moves one order item to a new status.
type UpdateOrderItemRequest struct {
	Status string `json:"status" validate:"required,oneof=pending preparing ready"`
}

// NewProductRequest creates a catalog product.
type NewProductRequest struct {
	Name       string  `json:"name" validate:"required"`
	Price      float64 `json:"price" validate:"gte=0"`
	CategoryID *int64  `json:"categoryId,omitempty" validate:"omitempty,gt=0"`
}

// UpdateProductRequest is a partial product update.
type UpdateProductRequest struct {
	Name       *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Price      *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	CategoryID *int64   `json:"categoryId,omitempty" validate:"omitempty,gt=0"`
}

// NewCategoryRequest creates a product category.
type NewCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// ProductResponse is a catalog product.
type ProductResponse struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	CategoryID *int64  `json:"categoryId,omitempty"`
}

// CategoryResponse is a product category.
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
