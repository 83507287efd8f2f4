package services_test

import (
	"context"
	"errors"
	"testing"

	"gutcheck/internal/models"
	"gutcheck/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockEventPublisher is a mock implementation of services.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(routingKey string, body []byte) error {
	args := m.Called(routingKey, body)
	return args.Error(0)
}

func TestActivityEventsAreBestEffort(t *testing.T) {
	mockRepo := new(MockPoopRepository)
	mockEvents := new(MockEventPublisher)
	service := services.NewPoopService(mockRepo, mockEvents)

	// A created entry publishes a poop.created event
	mockRepo.On("Create", mock.AnythingOfType("*models.Poop")).Return(nil).Once()
	mockEvents.On("Publish", "poop.created", mock.Anything).Return(nil).Once()
	_, err := service.Create("user-1", "loose")
	assert.NoError(t, err)

	// A broker failure never fails the create
	mockRepo.On("Create", mock.AnythingOfType("*models.Poop")).Return(nil).Once()
	mockEvents.On("Publish", "poop.created", mock.Anything).Return(errors.New("broker down")).Once()
	_, err = service.Create("user-1", "still fine")
	assert.NoError(t, err)

	mockRepo.AssertExpectations(t)
	mockEvents.AssertExpectations(t)
}

func TestMealEventsAreBestEffort(t *testing.T) {
	mockRepo := new(MockMealRepository)
	mockStore := new(MockStore)
	mockEvents := new(MockEventPublisher)
	service := services.NewMealService(mockRepo, mockStore, mockEvents)

	mockStore.On("Save", mock.Anything, "user-1", mock.Anything).
		Return(models.Image{URL: "http://x/uploads/meals/a.jpg", Key: "a.jpg"}, nil).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.Meal")).Return(nil).Once()
	mockEvents.On("Publish", "meal.created", mock.Anything).Return(errors.New("broker down")).Once()

	_, err := service.Create(context.Background(), "user-1", "pasta", uploadFileHeaders(t, "a.jpg"))
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockEvents.AssertExpectations(t)
}
