package model

// HomeViewModel bundles the four home page rails. Built fresh on every fetch
// and replaced wholesale on refresh, never mutated in place.
type HomeViewModel struct {
	Featured    []ProductCard `json:"featured"`
	Newest      []ProductCard `json:"newest"`
	Categories  []Category    `json:"categories"`
	BestSellers []ProductCard `json:"best_sellers"`
}
