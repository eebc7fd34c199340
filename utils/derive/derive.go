package derive

import (
	"fmt"
	"math"
	"strings"

	"github.com/greenbasket/storefront/constant"
	"github.com/greenbasket/storefront/model"
)

// DiscountedPrice returns price*(1-pct/100) rounded to 2 decimals. Display
// only; the stored price is never mutated. Result is always <= price.
func DiscountedPrice(price, pct float64) float64 {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return round2(price * (1 - pct/100))
}

// DiscountBadge renders the "Save N%" label for a discount percentage.
func DiscountBadge(pct float64) string {
	return fmt.Sprintf("Save %d%%", int(math.Round(pct)))
}

// AverageRating is the arithmetic mean of the ratings. An empty sequence
// falls back to the product's own rating when present, else 0.
func AverageRating(ratings []int, fallback *float64) float64 {
	if len(ratings) == 0 {
		if fallback != nil {
			return *fallback
		}
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return float64(sum) / float64(len(ratings))
}

// ProfileCompleteness counts the non-empty entries of the fixed 18-field
// profile list and returns the nearest integer percentage. All fields weigh
// equally, nested address and social-link fields included.
func ProfileCompleteness(p *model.Profile) int {
	if p == nil {
		return 0
	}
	fields := []string{
		p.FirstName,
		p.LastName,
		p.Phone,
		p.AvatarURL,
		p.Bio,
		p.BirthDate,
		p.Gender,
		p.Occupation,
		p.Address.Street,
		p.Address.City,
		p.Address.State,
		p.Address.PostalCode,
		p.Address.Country,
		p.Website,
		p.SocialLinks.Facebook,
		p.SocialLinks.Twitter,
		p.SocialLinks.Instagram,
		p.SocialLinks.LinkedIn,
	}
	filled := 0
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			filled++
		}
	}
	return int(math.Round(float64(filled) / constant.ProfileFieldCount * 100))
}

// AvatarColor picks a deterministic palette color for initial-letter avatars.
func AvatarColor(id uint64) string {
	return constant.AvatarPalette[id%uint64(len(constant.AvatarPalette))]
}

// Initial returns the upper-cased first rune of a name, empty when blank.
func Initial(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	return strings.ToUpper(string([]rune(trimmed)[0]))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
