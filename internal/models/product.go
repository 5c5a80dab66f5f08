package models

import "time"

type Product struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	Brand              string    `json:"brand"`
	Category           string    `json:"category"`
	PartNumber         string    `json:"part_number"`
	CompatibleVehicles string    `json:"compatible_vehicles"`
	Price              float64   `json:"price"`
	SalePrice          *float64  `json:"sale_price,omitempty"`
	StockQuantity      int       `json:"stock_quantity"`
	ImageURL           string    `json:"image_url"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// InStock reports whether the product can currently be purchased.
func (p *Product) InStock() bool {
	return p.StockQuantity > 0
}

type CreateProductRequest struct {
	Name               string   `json:"name" validate:"required,min=3,max=200"`
	Description        string   `json:"description,omitempty"`
	Brand              string   `json:"brand,omitempty" validate:"omitempty,max=100"`
	Category           string   `json:"category" validate:"required,oneof=engine suspension braking electrical body transmission"`
	PartNumber         string   `json:"part_number" validate:"required,min=3,max=50"`
	CompatibleVehicles string   `json:"compatible_vehicles,omitempty"`
	Price              float64  `json:"price" validate:"required,gt=0"`
	SalePrice          *float64 `json:"sale_price,omitempty" validate:"omitempty,gt=0"`
	StockQuantity      int      `json:"stock_quantity" validate:"gte=0"`
	ImageURL           string   `json:"image_url,omitempty" validate:"omitempty,url"`
}

type UpdateProductRequest struct {
	Name               *string  `json:"name,omitempty" validate:"omitempty,min=3,max=200"`
	Description        *string  `json:"description,omitempty"`
	Brand              *string  `json:"brand,omitempty" validate:"omitempty,max=100"`
	Category           *string  `json:"category,omitempty" validate:"omitempty,oneof=engine suspension braking electrical body transmission"`
	PartNumber         *string  `json:"part_number,omitempty" validate:"omitempty,min=3,max=50"`
	CompatibleVehicles *string  `json:"compatible_vehicles,omitempty"`
	Price              *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	SalePrice          *float64 `json:"sale_price,omitempty" validate:"omitempty,gt=0"`
	StockQuantity      *int     `json:"stock_quantity,omitempty" validate:"omitempty,gte=0"`
	ImageURL           *string  `json:"image_url,omitempty" validate:"omitempty,url"`
}
