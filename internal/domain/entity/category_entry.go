package entity

import "time"

// Tipos de comida para entradas de categoría meals.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnacks    = "snacks"
)

// MaxDescriptionLen límite de caracteres de la descripción de una entrada.
const MaxDescriptionLen = 5000

// ValidMealType indica si el tipo de comida es uno de los soportados.
func ValidMealType(mealType string) bool {
	switch mealType {
	case MealBreakfast, MealLunch, MealDinner, MealSnacks:
		return true
	}
	return false
}

// IsMainMeal indica si el tipo de comida está sujeto a la regla de una-por-día.
// Snacks queda fuera: se permiten varios registros el mismo día.
func IsMainMeal(mealType string) bool {
	return mealType == MealBreakfast || mealType == MealLunch || mealType == MealDinner
}

// CategoryEntry es una entrada libre de documentación diaria.
// EntryDate es la fecha efectiva: la fecha explícita del caller si la dio,
// o el momento de creación si no.
type CategoryEntry struct {
	ID          string
	ClientID    string
	Category    string
	Description string
	MealType    string // solo para category = meals
	EntryDate   time.Time
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
