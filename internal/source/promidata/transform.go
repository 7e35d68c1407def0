package promidata

import (
	"encoding/json"
	"fmt"

	"promisync/internal/domain"
)

// Transform maps a raw supplier document into a canonical Product with
// nested Variants. Multilingual fields are preserved per language;
// absent languages stay unset. Currency defaults to the reference
// currency when no price tier is present anywhere in the family.
func Transform(doc *Document, supplierCode, contentHash string) (*domain.Product, error) {
	if doc.ANumber == "" {
		return nil, fmt.Errorf("document has no aNumber")
	}

	product := &domain.Product{
		SupplierCode:  supplierCode,
		ANumber:       doc.ANumber,
		SKU:           doc.Sku,
		Name:          domain.LocalizedText{},
		Description:   domain.LocalizedText{},
		Currency:      domain.DefaultCurrency,
		PromidataHash: contentHash,
	}
	if product.SKU == "" {
		product.SKU = doc.ANumber
	}

	for code, details := range doc.Details {
		lang, ok := domain.ParseLanguage(code)
		if !ok {
			continue
		}
		if details.Name != "" {
			product.Name[lang] = details.Name
		}
		if details.Description != "" {
			product.Description[lang] = details.Description
		}
	}

	product.MainImageURL = normalizeMedia(doc.MainImage)

	for _, ref := range doc.Categories {
		if ref.Code == "" {
			continue
		}
		product.Categories = append(product.Categories, ref.Code)
		if product.PrimaryCategory == nil {
			code := ref.Code
			product.PrimaryCategory = &code
		}
	}

	product.Variants = transformVariants(doc.Variants)

	for _, v := range product.Variants {
		if v.Price != nil {
			product.Currency = firstCurrency(doc.Variants)
			break
		}
	}

	return product, nil
}

// transformVariants maps child products and resolves exactly one
// primary-for-color variant per distinct color. An explicit source mark
// wins over position; with several marks, or none, the first variant in
// document order wins.
func transformVariants(children []ChildProduct) []domain.Variant {
	variants := make([]domain.Variant, 0, len(children))
	primaryByColor := make(map[string]int)  // color -> index into variants
	explicitColor := make(map[string]bool)  // color already has an explicit mark

	for _, child := range children {
		if child.Sku == "" {
			continue
		}

		v := domain.Variant{
			SKU:      child.Sku,
			Color:    child.Color,
			Size:     child.Size,
			ImageURL: normalizeMedia(child.Image),
		}
		if len(child.Prices) > 0 {
			amount := child.Prices[0].Amount
			v.Price = &amount
		}

		variants = append(variants, v)
		idx := len(variants) - 1
		marked := child.PrimaryColor != nil && *child.PrimaryColor

		if _, seen := primaryByColor[v.Color]; !seen {
			primaryByColor[v.Color] = idx
		} else if marked && !explicitColor[v.Color] {
			// an explicit mark demotes an earlier positional pick;
			// a second mark for the same color does not
			primaryByColor[v.Color] = idx
		}
		if marked {
			explicitColor[v.Color] = true
		}
	}

	for _, idx := range primaryByColor {
		variants[idx].PrimaryForColor = true
	}

	return variants
}

// normalizeMedia accepts either a structured media reference or a bare
// URL string and yields a single URL, or nil when absent.
func normalizeMedia(raw json.RawMessage) *string {
	if len(raw) == 0 {
		return nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s == "" {
			return nil
		}
		return &s
	}

	var ref mediaRef
	if err := json.Unmarshal(raw, &ref); err == nil && ref.URL != "" {
		return &ref.URL
	}
	return nil
}

func firstCurrency(children []ChildProduct) string {
	for _, child := range children {
		for _, tier := range child.Prices {
			if tier.Currency != "" {
				return tier.Currency
			}
		}
	}
	return domain.DefaultCurrency
}
