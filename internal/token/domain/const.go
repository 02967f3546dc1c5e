package domain

// Category classifies the third-party integration a token is issued for.
type Category string

// Known token categories.
const (
	CategoryAirline    Category = "airline"
	CategoryConsultant Category = "consultant"
	CategoryOther      Category = "other"
)

// Categories lists all known categories, used for input validation.
var Categories = []Category{CategoryAirline, CategoryConsultant, CategoryOther}

// IsValidCategory reports whether the given string is a known category.
func IsValidCategory(s string) bool {
	for _, c := range Categories {
		if string(c) == s {
			return true
		}
	}
	return false
}
