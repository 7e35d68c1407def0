package domain

import "time"

// Product is one canonical catalog entry, keyed by the supplier-assigned
// family id (ANumber). All variants sharing a family id belong to one
// product. SKU uniqueness holds across products and variants combined
// within a supplier namespace.
type Product struct {
	ID              int64
	SupplierCode    string
	ANumber         string // stable external key (family id)
	SKU             string
	Name            LocalizedText
	Description     LocalizedText
	Currency        string
	MainImageURL    *string
	PrimaryCategory *string
	Categories      []string
	PromidataHash   string // last content hash successfully synced
	Variants        []Variant
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Variant struct {
	ID              int64
	SKU             string
	Color           string
	Size            string
	Price           *float64
	ImageURL        *string
	PrimaryForColor bool
}

// DefaultCurrency applies when a supplier document carries no price tier.
const DefaultCurrency = "EUR"

type Category struct {
	Code       string `db:"code"`
	Name       string `db:"name"`
	ParentCode string `db:"parent_code"` // empty for root categories
}
