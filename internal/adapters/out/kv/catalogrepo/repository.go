// Package catalogrepo persists the product catalog as key-value records
// under "product:{id}" and "category:{id}".
package catalogrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"comanda/internal/core/domain/model/catalog"
	"comanda/internal/core/ports"
	"comanda/internal/pkg/errs"
)

const (
	productKeyPrefix  = "product:"
	categoryKeyPrefix = "category:"
)

func productKey(id int64) string {
	return fmt.Sprintf("%s%d", productKeyPrefix, id)
}

func categoryKey(id int64) string {
	return fmt.Sprintf("%s%d", categoryKeyPrefix, id)
}

// productDTO is the JSON document stored under "product:{id}".
type productDTO struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	CategoryID *int64  `json:"categoryId,omitempty"`
}

// categoryDTO is the JSON document stored under "category:{id}".
type categoryDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Repository implements ports.ProductCatalog on a key-value store.
type Repository struct {
	store ports.KVStore
	seq   ports.IDSequence
}

// NewRepository creates a key-value backed product catalog.
func NewRepository(store ports.KVStore, seq ports.IDSequence) *Repository {
	return &Repository{store: store, seq: seq}
}

// AddProduct allocates an identifier and persists a new product.
func (r *Repository) AddProduct(ctx context.Context, name string, price float64, categoryID *int64) (catalog.Product, error) {
	id, err := r.seq.NextID(ctx, "product")
	if err != nil {
		return catalog.Product{}, err
	}

	product := catalog.Product{ID: id, Name: name, Price: price, CategoryID: categoryID}
	if err := product.Validate(); err != nil {
		return catalog.Product{}, err
	}

	if err := r.writeProduct(ctx, product); err != nil {
		return catalog.Product{}, err
	}
	return product, nil
}

// GetProduct retrieves a product by id.
func (r *Repository) GetProduct(ctx context.Context, id int64) (catalog.Product, error) {
	value, err := r.store.Get(ctx, productKey(id))
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return catalog.Product{}, errs.NewObjectNotFoundError("product", id)
		}
		return catalog.Product{}, err
	}

	var dto productDTO
	if err := json.Unmarshal(value, &dto); err != nil {
		return catalog.Product{}, fmt.Errorf("unmarshal product record %d: %w", id, err)
	}
	return catalog.Product(dto), nil
}

// GetAllProducts retrieves every product sorted by id.
func (r *Repository) GetAllProducts(ctx context.Context) ([]catalog.Product, error) {
	records, err := r.store.ScanByPrefix(ctx, productKeyPrefix)
	if err != nil {
		return nil, err
	}

	products := make([]catalog.Product, 0, len(records))
	for _, record := range records {
		var dto productDTO
		if err := json.Unmarshal(record.Value, &dto); err != nil {
			return nil, fmt.Errorf("unmarshal product record %q: %w", record.Key, err)
		}
		products = append(products, catalog.Product(dto))
	}

	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

// UpdateProduct applies a partial update to a product. Nil fields keep their
// stored value.
func (r *Repository) UpdateProduct(ctx context.Context, id int64, update ports.ProductUpdate) (catalog.Product, error) {
	product, err := r.GetProduct(ctx, id)
	if err != nil {
		return catalog.Product{}, err
	}

	if update.Name != nil {
		product.Name = *update.Name
	}
	if update.Price != nil {
		product.Price = *update.Price
	}
	if update.CategoryID != nil {
		product.CategoryID = update.CategoryID
	}

	if err := product.Validate(); err != nil {
		return catalog.Product{}, err
	}

	if err := r.writeProduct(ctx, product); err != nil {
		return catalog.Product{}, err
	}
	return product, nil
}

// DeleteProduct removes a product. Deleting an absent product is not an error.
func (r *Repository) DeleteProduct(ctx context.Context, id int64) error {
	return r.store.Delete(ctx, productKey(id))
}

// AddCategory allocates an identifier and persists a new category.
func (r *Repository) AddCategory(ctx context.Context, name string) (catalog.Category, error) {
	id, err := r.seq.NextID(ctx, "category")
	if err != nil {
		return catalog.Category{}, err
	}

	category := catalog.Category{ID: id, Name: name}
	if err := category.Validate(); err != nil {
		return catalog.Category{}, err
	}

	value, err := json.Marshal(categoryDTO(category))
	if err != nil {
		return catalog.Category{}, fmt.Errorf("marshal category record %d: %w", id, err)
	}
	if err := r.store.Set(ctx, categoryKey(id), value); err != nil {
		return catalog.Category{}, err
	}
	return category, nil
}

// GetAllCategories retrieves every category sorted by id.
func (r *Repository) GetAllCategories(ctx context.Context) ([]catalog.Category, error) {
	records, err := r.store.ScanByPrefix(ctx, categoryKeyPrefix)
	if err != nil {
		return nil, err
	}

	categories := make([]catalog.Category, 0, len(records))
	for _, record := range records {
		var dto categoryDTO
		if err := json.Unmarshal(record.Value, &dto); err != nil {
			return nil, fmt.Errorf("unmarshal category record %q: %w", record.Key, err)
		}
		categories = append(categories, catalog.Category(dto))
	}

	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return categories, nil
}

// DeleteCategory removes a category. Products keep their dangling category
// reference; the read side treats an unknown category as uncategorized.
func (r *Repository) DeleteCategory(ctx context.Context, id int64) error {
	return r.store.Delete(ctx, categoryKey(id))
}

func (r *Repository) writeProduct(ctx context.Context, product catalog.Product) error {
	value, err := json.Marshal(productDTO(product))
	if err != nil {
		return fmt.Errorf("marshal product record %d: %w", product.ID, err)
	}
	return r.store.Set(ctx, productKey(product.ID), value)
}
