package handler

import "github.com/minimart/commerce-system/internal/core/domain"

type createProductRequest struct {
	Name     string   `json:"name"     validate:"required"`
	Price    *float64 `json:"price"    validate:"required"`
	Category string   `json:"category" validate:"required"`
}

type editProductRequest struct {
	Name        string   `json:"name" validate:"required"`
	NewPrice    *float64 `json:"new_price"`
	NewCategory string   `json:"new_category"`
}

type productsResponse struct {
	Status   domain.Status    `json:"status"`
	Products []domain.Product `json:"products,omitempty"`
	Error    string           `json:"error,omitempty"`
}
