// Package access concentra las reglas de autorización por cliente y el
// invariante de roles. Toda mutación que toque role o assigned_clients
// debe pasar por CheckRoleInvariant; todo acceso a datos de un cliente
// debe pasar por CanAccess.
package access

import (
	"github.com/tu-usuario/diario-cuidado/internal/domain"
	"github.com/tu-usuario/diario-cuidado/internal/domain/entity"
)

// CanAccess decide si un usuario con el rol y asignación dados puede operar
// sobre los datos del cliente. Admin siempre puede; staff solo si el cliente
// está en su conjunto asignado.
func CanAccess(role string, assignedClients []string, clientID string) bool {
	if role == entity.RoleAdmin {
		return true
	}
	for _, id := range assignedClients {
		if id == clientID {
			return true
		}
	}
	return false
}

// CheckRoleInvariant valida el invariante admin ⇒ sin clientes asignados.
// Se llama desde cada mutación de rol o asignación en lugar de duplicar
// la regla por endpoint.
func CheckRoleInvariant(role string, assignedClients []string) error {
	if !entity.ValidRole(role) {
		return domain.ErrInvalidInput
	}
	if role == entity.RoleAdmin && len(assignedClients) > 0 {
		return domain.ErrForbidden
	}
	return nil
}
