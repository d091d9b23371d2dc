package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/diario-cuidado/internal/application/dto"
	"github.com/tu-usuario/diario-cuidado/internal/application/usecase"
	"github.com/tu-usuario/diario-cuidado/internal/domain"
	"github.com/tu-usuario/diario-cuidado/internal/domain/entity"
)

const cardK = "card-k"

func testCard(assigned ...string) *entity.Card {
	now := time.Now()
	return &entity.Card{
		ID:              cardK,
		Title:           "Ficha diaria",
		FieldTitles:     entity.NormalizeFieldTitles(nil),
		EnabledFields:   entity.NormalizeEnabledFields(nil),
		AssignedClients: assigned,
		CreatedBy:       adminID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func newFieldUC(fields *fakeFieldRepo, card *entity.Card, client *entity.Client, users *fakeUserRepo) *usecase.CardFieldUseCase {
	return usecase.NewCardFieldUseCase(fields, newFakeCardRepo(card), newFakeClientRepo(client), users)
}

func upsertReq(fieldIndex int, value string) dto.UpsertFieldEntryRequest {
	return dto.UpsertFieldEntryRequest{
		CardID:     cardK,
		ClientID:   clientA,
		FieldIndex: fieldIndex,
		Value:      value,
		Date:       "2024-01-10",
	}
}

// Escenario completo de la máquina de estados: staff crea y bloquea, el
// reintento de staff se rechaza, un admin desbloquea y el staff vuelve a
// editar, lo que re-bloquea.
func TestUpsert_CicloBloqueoCompleto(t *testing.T) {
	fields := newFakeFieldRepo()
	uc := newFieldUC(fields, testCard(clientA), activeClient(clientA), newFakeUserRepo(staffUser(clientA)))

	created, err := uc.Upsert(staffActor, upsertReq(3, "durmió bien"))
	require.NoError(t, err)
	assert.True(t, created.IsLocked, "la creación por staff bloquea de inmediato")

	_, err = uc.Upsert(staffActor, upsertReq(3, "corrección"))
	assert.ErrorIs(t, err, domain.ErrLocked, "staff no puede reeditar un campo bloqueado")

	unlocked, err := uc.SetLock(adminActor, created.ID, false)
	require.NoError(t, err)
	assert.False(t, unlocked.IsLocked)

	reedited, err := uc.Upsert(staffActor, upsertReq(3, "durmió regular"))
	require.NoError(t, err)
	assert.Equal(t, created.ID, reedited.ID, "misma clave de identidad, misma fila")
	assert.Equal(t, "durmió regular", reedited.Value)
	assert.True(t, reedited.IsLocked, "la reedición de staff vuelve a bloquear")
}

func TestUpsert_AdminCreaSinBloquear(t *testing.T) {
	fields := newFakeFieldRepo()
	uc := newFieldUC(fields, testCard(clientA), activeClient(clientA), newFakeUserRepo(staffUser(clientA)))

	created, err := uc.Upsert(adminActor, upsertReq(0, "valor inicial"))
	require.NoError(t, err)
	assert.False(t, created.IsLocked, "el primer guardado de un admin queda abierto")

	// El reenvío de admin tampoco bloquea.
	edited, err := uc.Upsert(adminActor, upsertReq(0, "valor corregido"))
	require.NoError(t, err)
	assert.False(t, edited.IsLocked)
}

func TestUpsert_AdminEditaBloqueadoYConservaElFlag(t *testing.T) {
	fields := newFakeFieldRepo()
	uc := newFieldUC(fields, testCard(clientA), activeClient(clientA), newFakeUserRepo(staffUser(clientA)))

	created, err := uc.Upsert(staffActor, upsertReq(5, "original"))
	require.NoError(t, err)
	require.True(t, created.IsLocked)

	edited, err := uc.Upsert(adminActor, upsertReq(5, "corregido por admin"))
	require.NoError(t, err)
	assert.Equal(t, "corregido por admin", edited.Value)
	assert.True(t, edited.IsLocked,
		"el reenvío de admin sobre fila bloqueada no la desbloquea")
}

func TestUpsert_DiasDistintosSonFilasDistintas(t *testing.T) {
	fields := newFakeFieldRepo()
	uc := newFieldUC(fields, testCard(clientA), activeClient(clientA), newFakeUserRepo(staffUser(clientA)))

	day1, err := uc.Upsert(staffActor, upsertReq(3, "lunes"))
	require.NoError(t, err)

	req := upsertReq(3, "martes")
	req.Date = "2024-01-11"
	day2, err := uc.Upsert(staffActor, req)
	require.NoError(t, err)

	assert.NotEqual(t, day1.ID, day2.ID, "cada día de documentación es su propia fila")
}

func TestUpsert_CampoFechaAceptaSoloEventoParcial(t *testing.T) {
	fields := newFakeFieldRepo()
	uc := newFieldUC(fields, testCard(clientA), activeClient(clientA), newFakeUserRepo(staffUser(clientA)))

	// Solo event_time, sin value ni event_date.
	req := upsertReq(entity.DateFieldIndex, "")
	req.EventTime = "14:30"
	created, err := uc.Upsert(staffActor, req)
	require.NoError(t, err)
	assert.Equal(t, "14:30", created.EventTime)
	assert.Nil(t, created.EventDate)

	// Sin nada de los tres se rechaza.
	empty := upsertReq(entity.DateFieldIndex, "")
	empty.Date = "2024-01-12"
	_, err = uc.Upsert(staffActor, empty)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpsert_Validaciones(t *testing.T) {
	fields := newFakeFieldRepo()
	uc := newFieldUC(fields, testCard(clientA), activeClient(clientA), newFakeUserRepo(staffUser(clientA)))

	t.Run("índice fuera de rango", func(t *testing.T) {
		_, err := uc.Upsert(staffActor, upsertReq(11, "x"))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
	t.Run("value requerido en campos 0..9", func(t *testing.T) {
		_, err := uc.Upsert(staffActor, upsertReq(2, ""))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
	t.Run("event_time solo aplica al campo fecha", func(t *testing.T) {
		req := upsertReq(2, "x")
		req.EventTime = "09:00"
		_, err := uc.Upsert(staffActor, req)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
	t.Run("event_time malformada", func(t *testing.T) {
		req := upsertReq(entity.DateFieldIndex, "")
		req.EventTime = "25:00"
		_, err := uc.Upsert(staffActor, req)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestUpsert_CampoDeshabilitadoRechaza(t *testing.T) {
	card := testCard(clientA)
	card.EnabledFields = []int{0, 1}
	uc := newFieldUC(newFakeFieldRepo(), card, activeClient(clientA), newFakeUserRepo(staffUser(clientA)))

	_, err := uc.Upsert(staffActor, upsertReq(5, "x"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpsert_FichaNoAsignadaAlClienteRechaza(t *testing.T) {
	// La ficha existe pero no lista a clientA.
	uc := newFieldUC(newFakeFieldRepo(), testCard(clientB), activeClient(clientA), newFakeUserRepo(staffUser(clientA)))

	_, err := uc.Upsert(staffActor, upsertReq(0, "x"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpsert_ClienteInactivoRechaza(t *testing.T) {
	inactive := activeClient(clientA)
	inactive.IsActive = false
	uc := newFieldUC(newFakeFieldRepo(), testCard(clientA), inactive, newFakeUserRepo(staffUser(clientA)))

	_, err := uc.Upsert(staffActor, upsertReq(0, "x"))
	assert.ErrorIs(t, err, domain.ErrClientInactive)
}

func TestSetLock_SoloAdmin(t *testing.T) {
	fields := newFakeFieldRepo()
	uc := newFieldUC(fields, testCard(clientA), activeClient(clientA), newFakeUserRepo(staffUser(clientA)))

	created, err := uc.Upsert(staffActor, upsertReq(1, "x"))
	require.NoError(t, err)

	_, err = uc.SetLock(staffActor, created.ID, false)
	assert.ErrorIs(t, err, domain.ErrForbidden, "staff no puede tocar el flag de bloqueo")

	_, err = uc.SetLock(adminActor, "no-existe", false)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListForCardClient_FiltraPorDia(t *testing.T) {
	fields := newFakeFieldRepo()
	uc := newFieldUC(fields, testCard(clientA), activeClient(clientA), newFakeUserRepo(staffUser(clientA)))

	_, err := uc.Upsert(staffActor, upsertReq(0, "a"))
	require.NoError(t, err)
	_, err = uc.Upsert(staffActor, upsertReq(1, "b"))
	require.NoError(t, err)
	other := upsertReq(0, "otro día")
	other.Date = "2024-01-11"
	_, err = uc.Upsert(staffActor, other)
	require.NoError(t, err)

	all, err := uc.ListForCardClient(staffActor, cardK, clientA, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	day, err := uc.ListForCardClient(staffActor, cardK, clientA, "2024-01-10")
	require.NoError(t, err)
	assert.Len(t, day, 2)
}
