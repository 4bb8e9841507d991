package model

import (
	"github.com/google/uuid"
)

type ProductType string

const (
	ProductStockOnly        ProductType = "STOCK_ONLY"
	ProductAssemblyRequired ProductType = "ASSEMBLY_REQUIRED"
	ProductMadeToOrder      ProductType = "MADE_TO_ORDER"
	ProductKit              ProductType = "KIT"
)

type Product struct {
	ID        uuid.UUID
	CompanyID uuid.UUID
	SKU       string
	Name      string
	Type      ProductType
}

// RequiresManufacture reports whether the product may only be sourced
// through a job card at the primary warehouse.
func (p *Product) RequiresManufacture() bool {
	return p.Type == ProductAssemblyRequired || p.Type == ProductMadeToOrder
}
