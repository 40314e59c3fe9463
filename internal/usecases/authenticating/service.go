package authenticating

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/kpiboard/metrics-dashboard-api/infrastructure/repository"
	"github.com/kpiboard/metrics-dashboard-api/internal/config"
	"github.com/kpiboard/metrics-dashboard-api/internal/domain"
	"github.com/kpiboard/metrics-dashboard-api/pkg/apiErrors"
	"github.com/kpiboard/metrics-dashboard-api/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// Seeder prepara os dados iniciais de um usuário recém-registrado
type Seeder interface {
	SeedUser(userID string) error
}

// Authenticator é o provedor de identidade: emite e valida os tokens que
// escopam todos os documentos do dashboard por usuário
type Authenticator interface {
	Register(request *domain.RegisterRequest) (*domain.User, error)
	Login(email, password string) (*domain.LoginResponse, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	GetUserProfile(userID string) (*domain.User, error)
}

type Service struct {
	userRepo repository.UserRepository
	seeder   Seeder
	cfg      *config.Config
}

func NewService(userRepo repository.UserRepository, seeder Seeder, cfg *config.Config) Authenticator {
	return &Service{
		userRepo: userRepo,
		seeder:   seeder,
		cfg:      cfg,
	}
}

func (s *Service) Register(request *domain.RegisterRequest) (*domain.User, error) {
	if request.Email == "" || request.Name == "" || request.Password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email, nome e senha são obrigatórios")
	}

	if len(request.Password) < 8 {
		return nil, NewAuthError(ErrWeakPassword, apiErrors.ErrInvalidFormat, "A senha deve ter pelo menos 8 caracteres")
	}

	email := handleEmail(request.Email)

	existing, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário")
	}
	if existing != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email já cadastrado")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	userID, err := utils.GenerateID()
	if err != nil {
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrInternalServer, "Falha ao gerar identificador do usuário")
	}

	user := &domain.User{
		ID:           userID,
		Name:         request.Name,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	if err := s.userRepo.CreateUser(user); err != nil {
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao criar usuário")
	}

	// Seed explícito por usuário, sem flag global de inicialização
	if s.seeder != nil {
		if err := s.seeder.SeedUser(user.ID); err != nil {
			logrus.WithError(err).WithField("user_id", user.ID).Warn("Seed inicial do usuário falhou")
		}
	}

	return user, nil
}

func (s *Service) Login(email, password string) (*domain.LoginResponse, error) {
	user, err := s.userRepo.GetUserByEmail(handleEmail(email))
	if err != nil {
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário")
	}
	if user == nil {
		return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token")
	}

	return &domain.LoginResponse{
		Token: token,
		User:  user,
	}, nil
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	claims := &domain.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		if strings.Contains(err.Error(), "expired") {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	if !token.Valid || claims.UserID == "" {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	return claims, nil
}

func (s *Service) GetUserProfile(userID string) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário")
	}
	if user == nil {
		return nil, NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "")
	}
	return user, nil
}

func (s *Service) generateToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := &domain.Claims{
		UserID:    user.ID,
		UserName:  user.Name,
		UserEmail: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.Secret))
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}
