package entity

import "time"

// Categorías de documentación diaria.
const (
	CategoryMeals    = "meals"
	CategoryBehavior = "behavior"
	CategoryOuting   = "outing"
	CategoryMedical  = "medical"
	CategoryNotes    = "notes"
)

// AllCategories en el orden en que se muestran.
var AllCategories = []string{CategoryMeals, CategoryBehavior, CategoryOuting, CategoryMedical, CategoryNotes}

// ValidCategory indica si la categoría es una de las cinco soportadas.
func ValidCategory(category string) bool {
	for _, c := range AllCategories {
		if c == category {
			return true
		}
	}
	return false
}

// NormalizeCategories filtra categorías desconocidas y deduplica.
// Si el resultado queda vacío, habilita todas (un cliente sin categorías no es documentable).
func NormalizeCategories(categories []string) []string {
	seen := make(map[string]bool, len(categories))
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		if ValidCategory(c) && !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return append([]string{}, AllCategories...)
	}
	return out
}

// Client representa a una persona bajo cuidado sobre la que se documenta.
type Client struct {
	ID                string
	Name              string
	PhotoURL          string
	EnabledCategories []string // nunca vacío
	Notes             string
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// HasCategory indica si la categoría está habilitada para este cliente.
func (c *Client) HasCategory(category string) bool {
	for _, ec := range c.EnabledCategories {
		if ec == category {
			return true
		}
	}
	return false
}
