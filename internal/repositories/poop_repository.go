package repositories

import "gutcheck/internal/models"

// PoopRepository defines the interface for poop entry data access, with the
// same owner scoping as MealRepository.
type PoopRepository interface {
	Create(poop *models.Poop) error
	GetAllByUser(userID string) ([]models.Poop, error)
	GetByID(userID, id string) (*models.Poop, error)
	Update(poop *models.Poop) error
	Delete(userID, id string) error
}
