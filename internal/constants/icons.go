package constants

// CategoryIcons is the fixed set of icon identifiers offered by the icon
// picker. Identifiers follow the Material Design Icons naming the mobile
// client used, so both clients render the same glyphs.
var CategoryIcons = []string{
	"heart", "food-fork-drink", "basket", "calculator", "airplane",
	"home", "cart", "store", "cellphone", "ring",
	"church", "bus-side", "motorbike", "medical-bag", "coffee",
	"trending-up", "tshirt-crew", "account-group", "desktop-mac", "pine-tree",
	"tree-outline", "package-variant-closed", "hamburger", "image", "image-area",
	"camera", "poker-chip", "dice-multiple", "home-city",
	"bank", "rocket", "mushroom", "car", "book-open-page-variant",
	"ice-cream", "baby-carriage", "email", "wheelchair-accessibility", "music",
}

// ValidCategoryIcon reports whether an identifier belongs to the picker
// set.
func ValidCategoryIcon(name string) bool {
	for _, icon := range CategoryIcons {
		if icon == name {
			return true
		}
	}
	return false
}
