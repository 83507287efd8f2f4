package services

import (
	"encoding/json"
	"log"
	"strings"
	"time"

	"gutcheck/internal/models"
	"gutcheck/internal/repositories"
)

// PoopService handles business logic for poop entries. Same ownership rules
// as meals, no attachments.
type PoopService struct {
	poopRepo repositories.PoopRepository
	events   EventPublisher // may be nil
}

// NewPoopService creates a new PoopService.
func NewPoopService(poopRepo repositories.PoopRepository, events EventPublisher) *PoopService {
	return &PoopService{
		poopRepo: poopRepo,
		events:   events,
	}
}

// Create persists a new poop entry owned by userID.
func (s *PoopService) Create(userID, description string) (*models.Poop, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrDescriptionRequired
	}

	poop := &models.Poop{
		UserID:      userID,
		Description: description,
		CreatedAt:   time.Now(),
	}
	if err := s.poopRepo.Create(poop); err != nil {
		return nil, err
	}

	if s.events != nil {
		if body, err := json.Marshal(map[string]string{"id": poop.ID, "user_id": userID}); err == nil {
			if err := s.events.Publish("poop.created", body); err != nil {
				log.Printf("Warning: failed to publish poop.created event for %s: %v", poop.ID, err)
			}
		}
	}
	return poop, nil
}

// List returns all poop entries owned by userID, newest first.
func (s *PoopService) List(userID string) ([]models.Poop, error) {
	return s.poopRepo.GetAllByUser(userID)
}

// Get returns a single poop entry owned by userID.
func (s *PoopService) Get(userID, id string) (*models.Poop, error) {
	return s.poopRepo.GetByID(userID, id)
}

// Update replaces the description when a non-empty value is supplied; an
// empty description leaves the entry untouched.
func (s *PoopService) Update(userID, id, description string) (*models.Poop, error) {
	poop, err := s.poopRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}

	if d := strings.TrimSpace(description); d != "" {
		poop.Description = d
		if err := s.poopRepo.Update(poop); err != nil {
			return nil, err
		}
	}
	return poop, nil
}

// Delete removes a poop entry owned by userID.
func (s *PoopService) Delete(userID, id string) error {
	return s.poopRepo.Delete(userID, id)
}
