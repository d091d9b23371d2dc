package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/diario-cuidado/internal/application/dto"
	"github.com/tu-usuario/diario-cuidado/internal/application/usecase"
)

// FieldEntryHandler maneja las peticiones HTTP de valores de campo de ficha.
type FieldEntryHandler struct {
	uc *usecase.CardFieldUseCase
}

// NewFieldEntryHandler construye el handler.
func NewFieldEntryHandler(uc *usecase.CardFieldUseCase) *FieldEntryHandler {
	return &FieldEntryHandler{uc: uc}
}

// Upsert POST /api/field-entries
// Crea o edita el valor del campo para el día elegido; la respuesta incluye
// el is_locked resultante. Un campo bloqueado rechaza a staff con LOCKED.
func (h *FieldEntryHandler) Upsert(c *fiber.Ctx) error {
	var in dto.UpsertFieldEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	entry, err := h.uc.Upsert(GetActor(c), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	status := fiber.StatusCreated
	if !entry.CreatedAt.Equal(entry.UpdatedAt) {
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(entry)
}

// SetLock PATCH /api/field-entries/:id/lock (solo admin)
func (h *FieldEntryHandler) SetLock(c *fiber.Ctx) error {
	var in dto.SetLockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.IsLocked == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "is_locked es requerido"})
	}
	entry, err := h.uc.SetLock(GetActor(c), c.Params("id"), *in.IsLocked)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(entry)
}

// List GET /api/cards/:id/field-entries?client_id=&date=
func (h *FieldEntryHandler) List(c *fiber.Ctx) error {
	clientID := c.Query("client_id")
	if clientID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "client_id es requerido"})
	}
	list, err := h.uc.ListForCardClient(GetActor(c), c.Params("id"), clientID, c.Query("date"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(list)
}
