package handlers

import (
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"strings"

	"gutcheck/internal/repositories"
	"gutcheck/internal/services"

	"github.com/gofiber/fiber/v2"
)

// MealHandler handles HTTP requests for meal entries. Create and update are
// multipart endpoints carrying a description field and up to maxFiles image
// files under the "images" field.
type MealHandler struct {
	mealService *services.MealService
	maxFiles    int
	maxBytes    int64
}

// NewMealHandler creates a new MealHandler with the configured upload limits.
func NewMealHandler(mealService *services.MealService, maxFiles int, maxBytes int64) *MealHandler {
	return &MealHandler{
		mealService: mealService,
		maxFiles:    maxFiles,
		maxBytes:    maxBytes,
	}
}

// RegisterRoutes registers the meal routes with the Fiber app. The update
// route is a POST for parity with the multipart create.
func (h *MealHandler) RegisterRoutes(router fiber.Router) {
	mealRoutes := router.Group("/meals")
	mealRoutes.Post("/", h.HandleCreate)
	mealRoutes.Get("/", h.HandleList)
	mealRoutes.Get("/:id", h.HandleGet)
	mealRoutes.Post("/:id", h.HandleUpdate)
	mealRoutes.Delete("/:id", h.HandleDelete)
}

// imageFiles pulls the uploaded files out of the multipart form, enforcing
// the count, media-type and per-file size limits before anything is stored.
// A non-multipart request simply yields no files.
func (h *MealHandler) imageFiles(c *fiber.Ctx) ([]*multipart.FileHeader, error) {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil, nil
	}
	files := form.File["images"]
	if len(files) > h.maxFiles {
		return nil, fmt.Errorf("a maximum of %d images is allowed", h.maxFiles)
	}
	for _, file := range files {
		if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
			return nil, errors.New("only image uploads are allowed")
		}
		if file.Size > h.maxBytes {
			return nil, fmt.Errorf("image %s exceeds the maximum file size", file.Filename)
		}
	}
	return files, nil
}

// HandleCreate creates a meal from a multipart form.
func (h *MealHandler) HandleCreate(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	files, err := h.imageFiles(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": capitalize(err.Error())})
	}

	meal, err := h.mealService.Create(c.UserContext(), userID, c.FormValue("description"), files)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDescriptionRequired):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Description is required"})
		case errors.Is(err, services.ErrImageRequired):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "At least one image is required"})
		default:
			log.Printf("Create meal error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(meal)
}

// HandleList returns all of the caller's meals, newest first.
func (h *MealHandler) HandleList(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	meals, err := h.mealService.List(userID)
	if err != nil {
		log.Printf("Get meals error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(meals)
}

// HandleGet returns a single meal by id.
func (h *MealHandler) HandleGet(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	meal, err := h.mealService.Get(userID, c.Params("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Meal not found"})
		}
		log.Printf("Get meal error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(meal)
}

// HandleUpdate updates a meal's description and optionally replaces its
// image set.
func (h *MealHandler) HandleUpdate(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	files, err := h.imageFiles(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": capitalize(err.Error())})
	}

	meal, err := h.mealService.Update(c.UserContext(), userID, c.Params("id"), c.FormValue("description"), files)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Meal not found"})
		}
		log.Printf("Update meal error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(meal)
}

// HandleDelete removes a meal and its stored images.
func (h *MealHandler) HandleDelete(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.mealService.Delete(c.UserContext(), userID, c.Params("id")); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Meal not found"})
		}
		log.Printf("Delete meal error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(fiber.Map{"message": "Meal deleted"})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
