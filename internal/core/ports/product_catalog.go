package ports

import (
	"context"

	"comanda/internal/core/domain/model/catalog"
)

// ProductUpdate carries the optional fields of a partial product update.
// Nil fields are left unchanged.
type ProductUpdate struct {
	Name       *string
	Price      *float64
	CategoryID *int64
}

// ProductCatalog is the catalog collaborator consumed by the lifecycle
// engine. The lifecycle itself only reads products to price orders; the
// mutating operations back the administrator dashboard.
type ProductCatalog interface {
	AddProduct(ctx context.Context, name string, price float64, categoryID *int64) (catalog.Product, error)
	GetProduct(ctx context.Context, id int64) (catalog.Product, error)
	GetAllProducts(ctx context.Context) ([]catalog.Product, error)
	UpdateProduct(ctx context.Context, id int64, update ProductUpdate) (catalog.Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	AddCategory(ctx context.Context, name string) (catalog.Category, error)
	GetAllCategories(ctx context.Context) ([]catalog.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}
