package constant

// GallerySize is the fixed number of images every product gallery carries.
const GallerySize = 4

// FallbackCategories is the ordered cycle of labels used to seed placeholder
// images when a product has fewer than GallerySize real images.
var FallbackCategories = []string{"vegetables", "fruits", "farm", "produce", "harvest"}

// DefaultPlaceholderCategory is used for single card images outside a gallery.
const DefaultPlaceholderCategory = "produce"

const (
	PlaceholderCardWidth     = 600
	PlaceholderCardHeight    = 400
	PlaceholderGalleryWidth  = 800
	PlaceholderGalleryHeight = 600
)

// AvatarPalette backs the initial-letter avatars rendered for categories
// without an image. Index = id % len(AvatarPalette).
var AvatarPalette = []string{
	"#2E7D32",
	"#EF6C00",
	"#6A1B9A",
	"#1565C0",
	"#AD1457",
	"#00838F",
}

// ProfileFieldCount is the fixed number of profile fields counted by the
// completeness score.
const ProfileFieldCount = 18

type PrivacyLevel string

const (
	PrivacyPublic      PrivacyLevel = "public"
	PrivacyPrivate     PrivacyLevel = "private"
	PrivacyFriendsOnly PrivacyLevel = "friends_only"
)
