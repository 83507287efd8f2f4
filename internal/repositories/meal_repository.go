package repositories

import "gutcheck/internal/models"

// MealRepository defines the interface for meal data access. Every read and
// mutation is scoped by the owning user's id.
type MealRepository interface {
	Create(meal *models.Meal) error
	GetAllByUser(userID string) ([]models.Meal, error)
	GetByID(userID, id string) (*models.Meal, error)
	// Update persists the meal's description and legacy image mirror. When
	// replaceImages is true the attachment rows are swapped for meal.Images
	// in the same transaction.
	Update(meal *models.Meal, replaceImages bool) error
	Delete(userID, id string) error
}
