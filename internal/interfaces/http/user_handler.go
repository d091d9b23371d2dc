package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/diario-cuidado/internal/application/dto"
	"github.com/tu-usuario/diario-cuidado/internal/application/usecase"
)

// UserHandler maneja la administración de usuarios (solo admin).
type UserHandler struct {
	uc *usecase.UserAdminUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserAdminUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List GET /api/users?limit=20&offset=0
func (h *UserHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.List(limit, offset)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(list)
}

// SetRole PUT /api/users/:id/role
// Cambiar el propio rol está prohibido aunque el actor sea admin.
func (h *UserHandler) SetRole(c *fiber.Ctx) error {
	var in dto.UpdateRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	user, err := h.uc.SetRole(GetActor(c), c.Params("id"), in.Role)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(user)
}

// SetAssignedClients PUT /api/users/:id/clients
// Reemplaza el conjunto asignado; un objetivo admin siempre se rechaza.
func (h *UserHandler) SetAssignedClients(c *fiber.Ctx) error {
	var in dto.AssignClientsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	user, err := h.uc.SetAssignedClients(c.Params("id"), in.ClientIDs)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(user)
}
