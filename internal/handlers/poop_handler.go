package handlers

import (
	"errors"
	"log"

	"gutcheck/internal/repositories"
	"gutcheck/internal/services"

	"github.com/gofiber/fiber/v2"
)

// PoopHandler handles HTTP requests for poop entries.
type PoopHandler struct {
	poopService *services.PoopService
}

// NewPoopHandler creates a new PoopHandler.
func NewPoopHandler(poopService *services.PoopService) *PoopHandler {
	return &PoopHandler{
		poopService: poopService,
	}
}

// RegisterRoutes registers the poop routes with the Fiber app.
func (h *PoopHandler) RegisterRoutes(router fiber.Router) {
	poopRoutes := router.Group("/poops")
	poopRoutes.Post("/", h.HandleCreate)
	poopRoutes.Get("/", h.HandleList)
	poopRoutes.Get("/:id", h.HandleGet)
	poopRoutes.Put("/:id", h.HandleUpdate)
	poopRoutes.Delete("/:id", h.HandleDelete)
}

// PoopRequest is the JSON body for creating or updating a poop entry.
type PoopRequest struct {
	Description string `json:"description"`
}

// HandleCreate creates a poop entry for the caller.
func (h *PoopHandler) HandleCreate(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var req PoopRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	poop, err := h.poopService.Create(userID, req.Description)
	if err != nil {
		if errors.Is(err, services.ErrDescriptionRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Description is required"})
		}
		log.Printf("Create poop error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	return c.Status(fiber.StatusCreated).JSON(poop)
}

// HandleList returns all of the caller's poop entries, newest first.
func (h *PoopHandler) HandleList(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	poops, err := h.poopService.List(userID)
	if err != nil {
		log.Printf("Get poops error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(poops)
}

// HandleGet returns a single poop entry by id.
func (h *PoopHandler) HandleGet(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	poop, err := h.poopService.Get(userID, c.Params("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Poop entry not found"})
		}
		log.Printf("Get poop error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(poop)
}

// HandleUpdate replaces a poop entry's description when one is supplied.
func (h *PoopHandler) HandleUpdate(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var req PoopRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	poop, err := h.poopService.Update(userID, c.Params("id"), req.Description)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Poop entry not found"})
		}
		log.Printf("Update poop error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(poop)
}

// HandleDelete removes a poop entry.
func (h *PoopHandler) HandleDelete(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.poopService.Delete(userID, c.Params("id")); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Poop entry not found"})
		}
		log.Printf("Delete poop error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(fiber.Map{"message": "Poop entry deleted"})
}
