package entity

import (
	"fmt"
	"time"
)

const (
	// CardFieldCount número fijo de campos de una ficha.
	CardFieldCount = 11
	// DateFieldIndex índice del campo fecha/hora (su valor es opcional).
	DateFieldIndex = 10
	// MaxTitleLen límite del título de la ficha y de cada campo.
	MaxTitleLen = 100
)

// Card es la plantilla de una ficha de documentación: título, 11 campos
// configurables y el conjunto de clientes a los que aplica.
type Card struct {
	ID              string
	Title           string
	FieldTitles     []string // siempre de largo CardFieldCount
	EnabledFields   []int    // índices 0..10, nunca vacío
	AssignedClients []string
	CreatedBy       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NormalizeFieldTitles ajusta los títulos a exactamente CardFieldCount posiciones:
// recorta el exceso, rellena los faltantes y reemplaza títulos en blanco por "untitled {n}".
func NormalizeFieldTitles(titles []string) []string {
	out := make([]string, CardFieldCount)
	for i := 0; i < CardFieldCount; i++ {
		title := ""
		if i < len(titles) {
			title = titles[i]
		}
		if title == "" {
			title = fmt.Sprintf("untitled %d", i+1)
		}
		out[i] = title
	}
	return out
}

// NormalizeEnabledFields filtra índices fuera de 0..10, deduplica y, si el
// resultado queda vacío, habilita los 11 campos.
func NormalizeEnabledFields(fields []int) []int {
	seen := make(map[int]bool, len(fields))
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		if f < 0 || f >= CardFieldCount || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	if len(out) == 0 {
		out = make([]int, CardFieldCount)
		for i := range out {
			out[i] = i
		}
	}
	return out
}

// IsFieldEnabled indica si el índice está habilitado en la plantilla.
func (c *Card) IsFieldEnabled(index int) bool {
	for _, f := range c.EnabledFields {
		if f == index {
			return true
		}
	}
	return false
}

// IsAssignedTo indica si la ficha está asignada al cliente.
func (c *Card) IsAssignedTo(clientID string) bool {
	for _, id := range c.AssignedClients {
		if id == clientID {
			return true
		}
	}
	return false
}
