package placeholder

import (
	"fmt"
	"strings"

	"github.com/greenbasket/storefront/constant"
	"github.com/greenbasket/storefront/model"
)

// ImageURL builds a deterministic placeholder locator from a category label
// and a seed. Identical inputs always produce the identical string. It never
// fails; empty inputs fall back to the default category label.
func ImageURL(category, seed string, width, height int) string {
	label := sanitizeLabel(category)
	if label == "" {
		label = constant.DefaultPlaceholderCategory
	}
	if width <= 0 {
		width = constant.PlaceholderCardWidth
	}
	if height <= 0 {
		height = constant.PlaceholderCardHeight
	}
	s := sanitizeLabel(seed)
	if s == "" {
		return fmt.Sprintf("https://picsum.photos/seed/%s/%d/%d", label, width, height)
	}
	return fmt.Sprintf("https://picsum.photos/seed/%s-%s/%d/%d", label, s, width, height)
}

// CardImage returns the image for a single product card, substituting a
// placeholder when the stored URL is empty.
func CardImage(imageURL, productName string) string {
	if imageURL != "" {
		return imageURL
	}
	return ImageURL(constant.DefaultPlaceholderCategory, firstWord(productName)+"-0",
		constant.PlaceholderCardWidth, constant.PlaceholderCardHeight)
}

// GalleryOfFour returns exactly constant.GallerySize gallery entries: the
// real images first, then placeholders cycling through the fallback category
// labels, each seeded "{firstWordOfName}-{index}". Placeholder entries are
// marked Fallback so a client swaps a broken image at most once.
func GalleryOfFour(productName, primary string, additional []string) []model.GalleryImage {
	gallery := make([]model.GalleryImage, 0, constant.GallerySize)
	if primary != "" {
		gallery = append(gallery, model.GalleryImage{URL: primary})
	}
	for _, url := range additional {
		if len(gallery) == constant.GallerySize {
			break
		}
		if url == "" {
			continue
		}
		gallery = append(gallery, model.GalleryImage{URL: url})
	}

	word := firstWord(productName)
	for i := len(gallery); i < constant.GallerySize; i++ {
		category := constant.FallbackCategories[i%len(constant.FallbackCategories)]
		seed := fmt.Sprintf("%s-%d", word, i)
		gallery = append(gallery, model.GalleryImage{
			URL:      ImageURL(category, seed, constant.PlaceholderGalleryWidth, constant.PlaceholderGalleryHeight),
			Fallback: true,
		})
	}
	return gallery
}

// sanitizeLabel lower-cases the label and replaces every rune outside
// [a-z0-9-] with '-'.
func sanitizeLabel(label string) string {
	lower := strings.ToLower(strings.TrimSpace(label))
	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}

func firstWord(name string) string {
	fields := strings.Fields(strings.TrimSpace(name))
	if len(fields) == 0 {
		return constant.DefaultPlaceholderCategory
	}
	return sanitizeLabel(fields[0])
}
