package auth_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/diario-cuidado/internal/application/auth"
	"github.com/tu-usuario/diario-cuidado/internal/application/dto"
	"github.com/tu-usuario/diario-cuidado/internal/domain"
	"github.com/tu-usuario/diario-cuidado/internal/domain/entity"
	pkgjwt "github.com/tu-usuario/diario-cuidado/pkg/jwt"
)

type memUserRepo struct {
	users   map[string]*entity.User
	findErr error // fallo simulado de almacenamiento en FindByEmail
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(user *entity.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) { return r.users[id], nil }

func (r *memUserRepo) FindByEmail(email string) (*entity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) UpdateRole(id, role string) error { return nil }

func (r *memUserRepo) ReplaceAssignments(userID string, clientIDs []string) error { return nil }

func (r *memUserRepo) List(limit, offset int) ([]*entity.User, error) { return nil, nil }

var testJWT = auth.JWTConfig{Secret: "secret-de-test", ExpMinutes: 60, Issuer: "diario-test"}

func TestRegister_SiempreCreaStaff(t *testing.T) {
	uc := auth.NewAuthUseCase(newMemUserRepo(), testJWT)

	user, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "ana@example.com",
		Password: "contraseña-larga",
		Name:     "Ana",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleStaff, user.Role, "el registro nunca otorga admin")
	assert.Empty(t, user.AssignedClients)
	assert.NotEmpty(t, user.ID)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc := auth.NewAuthUseCase(newMemUserRepo(), testJWT)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@example.com", Password: "12345678"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "ana@example.com", Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// Un fallo del almacenamiento al verificar el email debe aflorar, no
// leerse como "email disponible".
func TestRegister_FalloDeAlmacenamientoAflora(t *testing.T) {
	repo := newMemUserRepo()
	repo.findErr = errors.New("conexión perdida")
	uc := auth.NewAuthUseCase(repo, testJWT)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@example.com", Password: "12345678"})
	assert.ErrorIs(t, err, repo.findErr)
	assert.Empty(t, repo.users, "no debe persistirse usuario alguno")
}

func TestLogin_TokenConRolYUserID(t *testing.T) {
	repo := newMemUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	registered, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@example.com", Password: "12345678"})
	require.NoError(t, err)

	resp, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "12345678"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	userID, role, err := pkgjwt.Parse(testJWT.Secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, userID)
	assert.Equal(t, entity.RoleStaff, role)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc := auth.NewAuthUseCase(newMemUserRepo(), testJWT)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@example.com", Password: "12345678"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
