package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/diario-cuidado/internal/application/dto"
	"github.com/tu-usuario/diario-cuidado/internal/application/usecase"
)

// EntryHandler maneja las peticiones HTTP de entradas de categoría.
type EntryHandler struct {
	uc *usecase.CategoryEntryUseCase
}

// NewEntryHandler construye el handler.
func NewEntryHandler(uc *usecase.CategoryEntryUseCase) *EntryHandler {
	return &EntryHandler{uc: uc}
}

// Create POST /api/entries
// Para meals con breakfast/lunch/dinner un segundo envío del mismo día
// efectivo muta el registro existente (responde 200 en lugar de 201).
func (h *EntryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	entry, err := h.uc.Create(GetActor(c), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	status := fiber.StatusCreated
	if !entry.CreatedAt.Equal(entry.UpdatedAt) {
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(entry)
}

// List GET /api/clients/:id/entries?category=&search=&start_date=&end_date=
func (h *EntryHandler) List(c *fiber.Ctx) error {
	q := dto.ListEntriesQuery{
		Category:  c.Query("category"),
		Search:    c.Query("search"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}
	list, err := h.uc.List(GetActor(c), c.Params("id"), q)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(list)
}

// Update PUT /api/entries/:id
func (h *EntryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	entry, err := h.uc.Update(GetActor(c), c.Params("id"), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(entry)
}

// Delete DELETE /api/entries/:id
func (h *EntryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetActor(c), c.Params("id")); err != nil {
		return writeDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
