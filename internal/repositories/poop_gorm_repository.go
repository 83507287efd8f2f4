package repositories

import (
	"errors"
	"fmt"

	"gutcheck/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMPoopRepository is a GORM implementation of PoopRepository.
type GORMPoopRepository struct {
	db *gorm.DB
}

// NewGORMPoopRepository creates a new instance of GORMPoopRepository.
func NewGORMPoopRepository(db *gorm.DB) *GORMPoopRepository {
	return &GORMPoopRepository{
		db: db,
	}
}

// Create creates a new poop entry in the database.
func (r *GORMPoopRepository) Create(poop *models.Poop) error {
	if poop.ID == "" {
		poop.ID = uuid.New().String()
	}
	if err := r.db.Create(poop).Error; err != nil {
		return fmt.Errorf("failed to create poop entry: %w", err)
	}
	return nil
}

// GetAllByUser retrieves all poop entries owned by userID, newest first.
func (r *GORMPoopRepository) GetAllByUser(userID string) ([]models.Poop, error) {
	var poops []models.Poop
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&poops).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get poop entries for user %s: %w", userID, err)
	}
	return poops, nil
}

// GetByID retrieves a single poop entry iff it exists and belongs to userID.
func (r *GORMPoopRepository) GetByID(userID, id string) (*models.Poop, error) {
	var poop models.Poop
	if err := r.db.First(&poop, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get poop entry %s: %w", id, err)
	}
	return &poop, nil
}

// Update persists a poop entry's description, scoped by owner.
func (r *GORMPoopRepository) Update(poop *models.Poop) error {
	res := r.db.Model(&models.Poop{}).
		Where("id = ? AND user_id = ?", poop.ID, poop.UserID).
		Update("description", poop.Description)
	if res.Error != nil {
		return fmt.Errorf("failed to update poop entry %s: %w", poop.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a poop entry, scoped by owner.
func (r *GORMPoopRepository) Delete(userID, id string) error {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Poop{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete poop entry %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
