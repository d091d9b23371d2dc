package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/diario-cuidado/internal/application/dto"
	"github.com/tu-usuario/diario-cuidado/internal/application/usecase"
)

// CardHandler maneja las peticiones HTTP de plantillas de ficha.
type CardHandler struct {
	uc *usecase.CardUseCase
}

// NewCardHandler construye el handler.
func NewCardHandler(uc *usecase.CardUseCase) *CardHandler {
	return &CardHandler{uc: uc}
}

// Create POST /api/cards (solo admin)
func (h *CardHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCardRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	card, err := h.uc.Create(GetActor(c), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(card)
}

// GetByID GET /api/cards/:id
func (h *CardHandler) GetByID(c *fiber.Ctx) error {
	card, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(card)
}

// Update PUT /api/cards/:id (solo admin)
func (h *CardHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCardRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	card, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(card)
}

// Delete DELETE /api/cards/:id (solo admin; arrastra las entradas de campo)
func (h *CardHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return writeDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Assign PUT /api/cards/:id/clients (solo admin; reemplaza el conjunto)
func (h *CardHandler) Assign(c *fiber.Ctx) error {
	var in dto.AssignCardRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	card, err := h.uc.Assign(c.Params("id"), in.ClientIDs)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(card)
}

// ListForClient GET /api/clients/:id/cards
func (h *CardHandler) ListForClient(c *fiber.Ctx) error {
	list, err := h.uc.ListForClient(GetActor(c), c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(list)
}
