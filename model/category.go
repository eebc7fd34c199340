package model

// Category as rendered on the home page. ProductCount is derived from a real
// aggregate query, not stored on the row.
type Category struct {
	ID           uint64  `db:"id" json:"id"`
	Name         string  `db:"name" json:"name"`
	Description  *string `db:"description" json:"description,omitempty"`
	ImageURL     *string `db:"image_url" json:"image_url,omitempty"`
	ProductCount int64   `db:"product_count" json:"product_count"`

	// Initial-letter avatar, filled when the category has no image.
	Initial    string `db:"-" json:"initial,omitempty"`
	AvatarColor string `db:"-" json:"avatar_color,omitempty"`
}
