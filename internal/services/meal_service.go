package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"mime/multipart"
	"strings"
	"sync"
	"time"

	"gutcheck/internal/models"
	"gutcheck/internal/repositories"
	"gutcheck/internal/storage"
)

// MealService handles business logic for meal entries: owner-scoped CRUD
// plus attachment bookkeeping against the storage backend.
type MealService struct {
	mealRepo repositories.MealRepository
	store    storage.Store
	events   EventPublisher // may be nil
}

// NewMealService creates a new MealService. events may be nil to disable
// activity event publishing.
func NewMealService(mealRepo repositories.MealRepository, store storage.Store, events EventPublisher) *MealService {
	return &MealService{
		mealRepo: mealRepo,
		store:    store,
		events:   events,
	}
}

// Create stores the uploaded images and persists a new meal owned by userID.
// It requires a non-empty description and at least one image.
func (s *MealService) Create(ctx context.Context, userID, description string, files []*multipart.FileHeader) (*models.Meal, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrDescriptionRequired
	}
	if len(files) == 0 {
		return nil, ErrImageRequired
	}

	images, err := s.saveAttachments(ctx, userID, files)
	if err != nil {
		return nil, err
	}

	meal := &models.Meal{
		UserID:      userID,
		Images:      images,
		Image:       &models.Image{URL: images[0].URL, Key: images[0].Key},
		Description: description,
		CreatedAt:   time.Now(),
	}
	if err := s.mealRepo.Create(meal); err != nil {
		s.deleteAttachments(ctx, meal.Images)
		return nil, err
	}

	s.publish("meal.created", meal.ID, userID)
	return meal, nil
}

// List returns all meals owned by userID, newest first.
func (s *MealService) List(userID string) ([]models.Meal, error) {
	return s.mealRepo.GetAllByUser(userID)
}

// Get returns a single meal owned by userID.
func (s *MealService) Get(userID, id string) (*models.Meal, error) {
	return s.mealRepo.GetByID(userID, id)
}

// Update replaces the description and/or the full image set of a meal. When
// new images are supplied the previously stored ones are deleted from the
// backend first; those deletions are best-effort and never fail the update.
func (s *MealService) Update(ctx context.Context, userID, id, description string, files []*multipart.FileHeader) (*models.Meal, error) {
	meal, err := s.mealRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}

	if d := strings.TrimSpace(description); d != "" {
		meal.Description = d
	}

	replaceImages := len(files) > 0
	if replaceImages {
		s.deleteAttachments(ctx, meal.Images)

		images, err := s.saveAttachments(ctx, userID, files)
		if err != nil {
			return nil, err
		}
		meal.Images = images
		meal.Image = &models.Image{URL: images[0].URL, Key: images[0].Key}
	}

	if err := s.mealRepo.Update(meal, replaceImages); err != nil {
		return nil, err
	}
	return meal, nil
}

// Delete removes a meal after best-effort-deleting its stored images.
func (s *MealService) Delete(ctx context.Context, userID, id string) error {
	meal, err := s.mealRepo.GetByID(userID, id)
	if err != nil {
		return err
	}

	s.deleteAttachments(ctx, meal.Images)

	if err := s.mealRepo.Delete(userID, id); err != nil {
		return err
	}
	s.publish("meal.deleted", id, userID)
	return nil
}

// saveAttachments stores every upload and returns the image rows in upload
// order. On failure the already-stored files are cleaned up best-effort.
func (s *MealService) saveAttachments(ctx context.Context, userID string, files []*multipart.FileHeader) ([]models.MealImage, error) {
	images := make([]models.MealImage, 0, len(files))
	for i, file := range files {
		img, err := s.store.Save(ctx, userID, file)
		if err != nil {
			s.deleteAttachments(ctx, images)
			return nil, fmt.Errorf("failed to store image %s: %w", file.Filename, err)
		}
		images = append(images, models.MealImage{
			Position: i,
			URL:      img.URL,
			Key:      img.Key,
		})
	}
	return images, nil
}

// deleteAttachments removes stored images in parallel. Each failure is
// logged and swallowed; the batch always runs to completion.
func (s *MealService) deleteAttachments(ctx context.Context, images []models.MealImage) {
	var wg sync.WaitGroup
	for _, img := range images {
		wg.Add(1)
		go func(key string) {
			defer wg.Done()
			if err := s.store.Delete(ctx, key); err != nil {
				log.Printf("Warning: failed to delete stored image %s: %v", key, err)
			}
		}(img.Key)
	}
	wg.Wait()
}

func (s *MealService) publish(event, id, userID string) {
	if s.events == nil {
		return
	}
	body, err := json.Marshal(map[string]string{"id": id, "user_id": userID})
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", event, err)
		return
	}
	if err := s.events.Publish(event, body); err != nil {
		log.Printf("Warning: failed to publish %s event for %s: %v", event, id, err)
	}
}
