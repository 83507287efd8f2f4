package repositories

import (
	"errors"
	"fmt"

	"gutcheck/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMMealRepository is a GORM implementation of MealRepository.
type GORMMealRepository struct {
	db *gorm.DB
}

// NewGORMMealRepository creates a new instance of GORMMealRepository.
func NewGORMMealRepository(db *gorm.DB) *GORMMealRepository {
	return &GORMMealRepository{
		db: db,
	}
}

// Create creates a new meal and its image rows in the database.
func (r *GORMMealRepository) Create(meal *models.Meal) error {
	if meal.ID == "" {
		meal.ID = uuid.New().String()
	}
	if err := r.db.Create(meal).Error; err != nil {
		return fmt.Errorf("failed to create meal: %w", err)
	}
	return nil
}

// GetAllByUser retrieves all meals owned by userID, newest first. Images are
// preloaded in upload order.
func (r *GORMMealRepository) GetAllByUser(userID string) ([]models.Meal, error) {
	var meals []models.Meal
	err := r.db.
		Preload("Images", func(tx *gorm.DB) *gorm.DB { return tx.Order("position ASC") }).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&meals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get meals for user %s: %w", userID, err)
	}
	return meals, nil
}

// GetByID retrieves a single meal iff it exists and belongs to userID.
// A meal owned by someone else surfaces as ErrNotFound.
func (r *GORMMealRepository) GetByID(userID, id string) (*models.Meal, error) {
	var meal models.Meal
	err := r.db.
		Preload("Images", func(tx *gorm.DB) *gorm.DB { return tx.Order("position ASC") }).
		First(&meal, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get meal %s: %w", id, err)
	}
	return &meal, nil
}

// Update persists the meal's scalar fields, and when replaceImages is true
// swaps the image rows for meal.Images inside one transaction.
func (r *GORMMealRepository) Update(meal *models.Meal, replaceImages bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		columns := map[string]interface{}{
			"description": meal.Description,
		}
		if meal.Image != nil {
			columns["image_url"] = meal.Image.URL
			columns["image_key"] = meal.Image.Key
		}
		res := tx.Model(&models.Meal{}).
			Where("id = ? AND user_id = ?", meal.ID, meal.UserID).
			Updates(columns)
		if res.Error != nil {
			return fmt.Errorf("failed to update meal %s: %w", meal.ID, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}

		if replaceImages {
			if err := tx.Where("meal_id = ?", meal.ID).Delete(&models.MealImage{}).Error; err != nil {
				return fmt.Errorf("failed to clear meal images for %s: %w", meal.ID, err)
			}
			for i := range meal.Images {
				meal.Images[i].ID = 0
				meal.Images[i].MealID = meal.ID
			}
			if len(meal.Images) > 0 {
				if err := tx.Create(&meal.Images).Error; err != nil {
					return fmt.Errorf("failed to store meal images for %s: %w", meal.ID, err)
				}
			}
		}
		return nil
	})
}

// Delete removes a meal and its image rows, scoped by owner.
func (r *GORMMealRepository) Delete(userID, id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Meal{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete meal %s: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		if err := tx.Where("meal_id = ?", id).Delete(&models.MealImage{}).Error; err != nil {
			return fmt.Errorf("failed to delete meal images for %s: %w", id, err)
		}
		return nil
	})
}
