package auth_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/application/auth"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/application/dto"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/entity"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/mocks"
	pkgjwt "github.com/KIMHYUNJUN95/return-linen-management-main-sub000/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func newUseCase(t *testing.T) (*auth.AuthUseCase, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "haru-test"})
	return uc, repo
}

func TestRegisterUser_PrimerUsuarioEsAdmin(t *testing.T) {
	uc, repo := newUseCase(t)
	ctx := context.Background()

	repo.EXPECT().GetByEmail(ctx, "jiwoo@haru.kr").Return(nil, nil)
	repo.EXPECT().Count(ctx).Return(0, nil)
	repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *entity.User) error {
		assert.NotEqual(t, "password123", u.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password123")))
		return nil
	})

	out, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: " Jiwoo@HARU.kr ", Password: "password123", Name: "지우"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.Role)
	assert.Equal(t, "jiwoo@haru.kr", out.Email)
	assert.Equal(t, "지우", out.Name)
	assert.Equal(t, entity.UserStatusActive, out.Status)
}

func TestRegisterUser_SiguientesSonStaff(t *testing.T) {
	uc, repo := newUseCase(t)
	ctx := context.Background()

	repo.EXPECT().GetByEmail(ctx, "staff@haru.kr").Return(nil, nil)
	repo.EXPECT().Count(ctx).Return(3, nil)
	repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	out, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "staff@haru.kr", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleStaff, out.Role)
	assert.Equal(t, "staff@haru.kr", out.Name, "sin nombre se usa el email")
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	uc, repo := newUseCase(t)
	ctx := context.Background()

	repo.EXPECT().GetByEmail(ctx, "dup@haru.kr").Return(&entity.User{ID: "x"}, nil)

	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "dup@haru.kr", Password: "password123"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegisterUser_PasswordCorta(t *testing.T) {
	uc, _ := newUseCase(t)
	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{Email: "a@haru.kr", Password: "1234567"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &entity.User{
		ID: "00000000-0000-0000-0000-000000000001", Email: "a@haru.kr", Name: "민수",
		PasswordHash: string(hash), Role: entity.RoleStaff, Status: entity.UserStatusActive,
	}

	t.Run("credenciales correctas devuelven token con claims", func(t *testing.T) {
		uc, repo := newUseCase(t)
		repo.EXPECT().GetByEmail(gomock.Any(), "a@haru.kr").Return(user, nil)

		out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "A@haru.kr", Password: "password123"})
		require.NoError(t, err)
		id, err := pkgjwt.Parse(testSecret, out.Token)
		require.NoError(t, err)
		assert.Equal(t, pkgjwt.Identity{UserID: user.ID, Name: "민수", Role: entity.RoleStaff}, id)
	})

	t.Run("password incorrecta", func(t *testing.T) {
		uc, repo := newUseCase(t)
		repo.EXPECT().GetByEmail(gomock.Any(), "a@haru.kr").Return(user, nil)
		_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "a@haru.kr", Password: "nope-nope"})
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("usuario inexistente", func(t *testing.T) {
		uc, repo := newUseCase(t)
		repo.EXPECT().GetByEmail(gomock.Any(), "x@haru.kr").Return(nil, nil)
		_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "x@haru.kr", Password: "password123"})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("usuario inactivo", func(t *testing.T) {
		inactive := *user
		inactive.Status = entity.UserStatusInactive
		uc, repo := newUseCase(t)
		repo.EXPECT().GetByEmail(gomock.Any(), "a@haru.kr").Return(&inactive, nil)
		_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "a@haru.kr", Password: "password123"})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestMe(t *testing.T) {
	uc, repo := newUseCase(t)
	id := "00000000-0000-0000-0000-000000000009"
	repo.EXPECT().GetByID(gomock.Any(), id).Return(&entity.User{ID: id, Status: entity.UserStatusActive, Role: entity.RoleAdmin}, nil)

	out, err := uc.Me(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.Role)

	_, err = uc.Me(context.Background(), "no-es-uuid")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
