package model

// WishlistResponse lists the product ids in the caller's wishlist.
type WishlistResponse struct {
	ProductIDs []uint64 `json:"product_ids"`
}

// ToggleWishlistResponse reports the membership state after a toggle.
type ToggleWishlistResponse struct {
	ProductID uint64 `json:"product_id"`
	InWishlist bool  `json:"in_wishlist"`
}

// CartResponse maps product id to quantity. Last writer wins per key.
type CartResponse struct {
	Items map[uint64]int `json:"items"`
}

type SetCartItemRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}
