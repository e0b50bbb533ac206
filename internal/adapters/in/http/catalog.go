package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"comanda/internal/core/domain/model/catalog"
	"comanda/internal/core/ports"
)

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var req NewProductRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "invalid request body"})
	}
	if err := ctx.Validate(&req); err != nil {
		return s.writeError(ctx, err)
	}

	product, err := s.catalog.AddProduct(ctx.Request().Context(), req.Name, req.Price, req.CategoryID)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toProductResponse(product))
}

// ListProducts handles GET /api/v1/products.
func (s *Server) ListProducts(ctx echo.Context) error {
	products, err := s.catalog.GetAllProducts(ctx.Request().Context())
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		response = append(response, toProductResponse(product))
	}
	return ctx.JSON(http.StatusOK, response)
}

// UpdateProduct handles PUT /api/v1/products/:id.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req UpdateProductRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "invalid request body"})
	}
	if err := ctx.Validate(&req); err != nil {
		return s.writeError(ctx, err)
	}

	update := ports.ProductUpdate{Name: req.Name, Price: req.Price, CategoryID: req.CategoryID}
	product, err := s.catalog.UpdateProduct(ctx.Request().Context(), id, update)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toProductResponse(product))
}

// DeleteProduct handles DELETE /api/v1/products/:id.
func (s *Server) DeleteProduct(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.catalog.DeleteProduct(ctx.Request().Context(), id); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CreateCategory handles POST /api/v1/categories.
func (s *Server) CreateCategory(ctx echo.Context) error {
	var req NewCategoryRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "invalid request body"})
	}
	if err := ctx.Validate(&req); err != nil {
		return s.writeError(ctx, err)
	}

	category, err := s.catalog.AddCategory(ctx.Request().Context(), req.Name)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, CategoryResponse{ID: category.ID, Name: category.Name})
}

// ListCategories handles GET /api/v1/categories.
func (s *Server) ListCategories(ctx echo.Context) error {
	categories, err := s.catalog.GetAllCategories(ctx.Request().Context())
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		response = append(response, CategoryResponse{ID: category.ID, Name: category.Name})
	}
	return ctx.JSON(http.StatusOK, response)
}

// DeleteCategory handles DELETE /api/v1/categories/:id. Products keep their
// dangling reference; the read side treats them as uncategorized.
func (s *Server) DeleteCategory(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.catalog.DeleteCategory(ctx.Request().Context(), id); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func toProductResponse(product catalog.Product) ProductResponse {
	return ProductResponse{
		ID:         product.ID,
		Name:       product.Name,
		Price:      product.Price,
		CategoryID: product.CategoryID,
	}
}
