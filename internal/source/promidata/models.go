package promidata

import "encoding/json"

// Document is one supplier product file: the family head plus its child
// products. Detail blocks are keyed by supplier language code; media
// references come as either a structured object or a bare URL string.
type Document struct {
	ANumber    string             `json:"aNumber"`
	Sku        string             `json:"sku"`
	Details    map[string]Details `json:"productDetails"`
	MainImage  json.RawMessage    `json:"mainImage,omitempty"`
	Categories []CategoryRef      `json:"categories,omitempty"`
	Variants   []ChildProduct     `json:"childProducts"`
}

type Details struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type CategoryRef struct {
	Code string `json:"code"`
	Name string `json:"name,omitempty"`
}

type ChildProduct struct {
	Sku          string          `json:"sku"`
	Color        string          `json:"color,omitempty"`
	Size         string          `json:"size,omitempty"`
	PrimaryColor *bool           `json:"primaryColorVariant,omitempty"`
	Image        json.RawMessage `json:"image,omitempty"`
	Prices       []PriceTier     `json:"prices,omitempty"`
}

type PriceTier struct {
	Currency    string  `json:"currency"`
	Amount      float64 `json:"amount"`
	MinQuantity int     `json:"minQuantity,omitempty"`
}

// mediaRef is the structured form of an image reference.
type mediaRef struct {
	URL string `json:"url"`
}
