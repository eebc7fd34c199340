package model

import "time"

// ProductCard is the listing projection used by the home page rails.
type ProductCard struct {
	ID                 uint64   `db:"id" json:"id"`
	Name               string   `db:"name" json:"name"`
	Price              float64  `db:"price" json:"price"`
	ImageURL           string   `db:"image_url" json:"image_url"`
	CategoryID         uint64   `db:"category_id" json:"category_id"`
	Stock              int64    `db:"stock" json:"stock"`
	Rating             *float64 `db:"rating" json:"rating,omitempty"`
	DiscountPercentage *float64 `db:"discount_percentage" json:"discount_percentage,omitempty"`
	SalesCount         int64    `db:"sales_count" json:"sales_count"`

	// Derived for display, filled by the application layer.
	DisplayPrice  float64  `db:"-" json:"display_price"`
	OriginalPrice *float64 `db:"-" json:"original_price,omitempty"`
	Badge         string   `db:"-" json:"badge,omitempty"`
}

type CategorySummary struct {
	ID   uint64 `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// ProductDetail is the full product record served by the detail page,
// including the joined category summary and reviews.
type ProductDetail struct {
	ID                 uint64     `json:"id"`
	Name               string     `json:"name"`
	Price              float64    `json:"price"`
	Description        string     `json:"description"`
	ImageURL           string     `json:"image_url"`
	AdditionalImages   []string   `json:"additional_images"`
	CategoryID         uint64     `json:"category_id"`
	Stock              int64      `json:"stock"`
	IsFeatured         bool       `json:"is_featured"`
	Rating             *float64   `json:"rating,omitempty"`
	DiscountPercentage *float64   `json:"discount_percentage,omitempty"`
	HarvestDate        *time.Time `json:"harvest_date,omitempty"`
	Region             *string    `json:"region,omitempty"`
	IsOrganic          *bool      `json:"is_organic,omitempty"`
	Tags               []string   `json:"tags"`
	SalesCount         int64      `json:"sales_count"`
	CreatedAt          time.Time  `json:"created_at"`

	Category *CategorySummary `json:"category,omitempty"`
	Reviews  []Review         `json:"reviews"`

	// Derived for display, filled by the application layer.
	Gallery       []GalleryImage `json:"gallery"`
	DisplayPrice  float64        `json:"display_price"`
	OriginalPrice *float64       `json:"original_price,omitempty"`
	Badge         string         `json:"badge,omitempty"`
	AverageRating float64        `json:"average_rating"`
}

// GalleryImage is one gallery slot. Fallback entries are placeholders and
// must not be swapped again when they fail to load client-side.
type GalleryImage struct {
	URL      string `json:"url"`
	Fallback bool   `json:"fallback"`
}

// ProductDetailResponse bundles the product with its related products.
// Related degrades to empty when its query fails; the product still renders.
type ProductDetailResponse struct {
	Product *ProductDetail `json:"product"`
	Related []ProductCard  `json:"related_products"`
}
