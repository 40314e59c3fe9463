package authenticating

import (
	"errors"
	"testing"

	"github.com/kpiboard/metrics-dashboard-api/infrastructure/repository/mocks"
	"github.com/kpiboard/metrics-dashboard-api/internal/config"
	"github.com/kpiboard/metrics-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type seederSpy struct {
	seededUserID string
	err          error
}

func (s *seederSpy) SeedUser(userID string) error {
	s.seededUserID = userID
	return s.err
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{Secret: "segredo-de-teste"},
	}
}

func registerRequest() *domain.RegisterRequest {
	return &domain.RegisterRequest{
		Name:     "Maria",
		Email:    "maria@example.com",
		Password: "senha-muito-forte",
	}
}

func TestRegister_CriaUsuarioEDisparaSeed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	seeder := &seederSpy{}

	userRepo.EXPECT().GetUserByEmail("maria@example.com").Return(nil, nil)

	var created *domain.User
	userRepo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(user *domain.User) error {
		created = user
		return nil
	})

	service := NewService(userRepo, seeder, testConfig())
	user, err := service.Register(registerRequest())

	assert.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "maria@example.com", user.Email)
	// A senha nunca é persistida em claro
	assert.NotEqual(t, "senha-muito-forte", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("senha-muito-forte")))
	assert.Equal(t, user.ID, seeder.seededUserID)
}

func TestRegister_EmailEhNormalizadoAntesDaConsulta(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)

	userRepo.EXPECT().GetUserByEmail("maria@example.com").Return(nil, nil)
	userRepo.EXPECT().CreateUser(gomock.Any()).Return(nil)

	request := registerRequest()
	request.Email = "  MaRia@Example.COM "

	service := NewService(userRepo, &seederSpy{}, testConfig())
	user, err := service.Register(request)

	assert.NoError(t, err)
	assert.Equal(t, "maria@example.com", user.Email)
}

func TestRegister_EmailJaCadastrado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)

	userRepo.EXPECT().GetUserByEmail("maria@example.com").Return(&domain.User{ID: "u1"}, nil)

	service := NewService(userRepo, &seederSpy{}, testConfig())
	_, err := service.Register(registerRequest())

	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestRegister_SenhaCurtaEhRecusada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)

	request := registerRequest()
	request.Password = "curta"

	service := NewService(userRepo, &seederSpy{}, testConfig())
	_, err := service.Register(request)

	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestRegister_FalhaDoSeedNaoImpedeORegistro(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	seeder := &seederSpy{err: errors.New("banco indisponível")}

	userRepo.EXPECT().GetUserByEmail("maria@example.com").Return(nil, nil)
	userRepo.EXPECT().CreateUser(gomock.Any()).Return(nil)

	service := NewService(userRepo, seeder, testConfig())
	user, err := service.Register(registerRequest())

	assert.NoError(t, err)
	assert.NotNil(t, user)
}

func TestLogin_SenhaErrada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)

	hash, _ := bcrypt.GenerateFromPassword([]byte("senha-correta"), bcrypt.MinCost)
	userRepo.EXPECT().GetUserByEmail("maria@example.com").Return(&domain.User{
		ID:           "u1",
		Email:        "maria@example.com",
		PasswordHash: string(hash),
	}, nil)

	service := NewService(userRepo, &seederSpy{}, testConfig())
	_, err := service.Login("maria@example.com", "senha-errada")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UsuarioInexistenteNaoVazaDetalhe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)

	userRepo.EXPECT().GetUserByEmail("ninguem@example.com").Return(nil, nil)

	service := NewService(userRepo, &seederSpy{}, testConfig())
	_, err := service.Login("ninguem@example.com", "qualquer")

	// Mesmo erro de credenciais, sem distinguir usuário ausente
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_TokenEmitidoEhValido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)

	hash, _ := bcrypt.GenerateFromPassword([]byte("senha-correta"), bcrypt.MinCost)
	userRepo.EXPECT().GetUserByEmail("maria@example.com").Return(&domain.User{
		ID:           "u1",
		Name:         "Maria",
		Email:        "maria@example.com",
		PasswordHash: string(hash),
	}, nil)

	service := NewService(userRepo, &seederSpy{}, testConfig())
	response, err := service.Login("maria@example.com", "senha-correta")

	assert.NoError(t, err)
	assert.NotEmpty(t, response.Token)

	claims, err := service.ValidateToken(response.Token)
	assert.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "maria@example.com", claims.UserEmail)
}

func TestValidateToken_TokenAdulteradoEhRecusado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)

	service := NewService(userRepo, &seederSpy{}, testConfig())
	_, err := service.ValidateToken("cabecalho.corpo.assinatura")

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGetUserProfile_UsuarioInexistente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)

	userRepo.EXPECT().GetUserByID("u1").Return(nil, nil)

	service := NewService(userRepo, &seederSpy{}, testConfig())
	_, err := service.GetUserProfile("u1")

	assert.ErrorIs(t, err, ErrUserNotFound)
}
