package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"members_roulette/internal/common"
	"members_roulette/internal/common/security"
	"members_roulette/internal/domain/model"
	"members_roulette/internal/domain/repository"

	"github.com/google/uuid"
)

type AuthService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	sessionTTL  time.Duration
}

func NewAuthService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, sessionTTL time.Duration) *AuthService {
	return &AuthService{userRepo: userRepo, sessionRepo: sessionRepo, sessionTTL: sessionTTL}
}

func (s *AuthService) SessionTTL() time.Duration {
	return s.sessionTTL
}

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *AuthService) Signup(ctx context.Context, req SignupRequest) error {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return common.ValidationError("Todos os campos são obrigatórios.")
	}

	exists, err := s.userRepo.ExistsByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		return fmt.Errorf("Erro no servidor: %w", err)
	}
	if exists {
		return common.ConflictError("Usuário ou email já existe.")
	}

	hashedPassword, err := security.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("Erro no servidor: %w", err)
	}

	user := &model.User{
		ID:             uuid.NewString(),
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: hashedPassword,
		Role:           model.RoleUser,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// The store enforces uniqueness too; a losing race lands here.
		if errors.Is(err, common.ErrConflict) {
			return common.ConflictError("Usuário ou email já existe.")
		}
		return fmt.Errorf("Erro no servidor: %w", err)
	}
	return nil
}

// Login validates credentials and records a fresh session in the session
// store. Unknown username and wrong password produce the same error so the
// response cannot be used to enumerate usernames.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*model.Session, error) {
	if req.Username == "" || req.Password == "" {
		return nil, common.ValidationError("Usuário e senha são obrigatórios.")
	}

	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.UnauthorizedError("Usuário ou senha inválidos.")
		}
		return nil, fmt.Errorf("Erro no servidor: %w", err)
	}

	if !security.CheckPasswordHash(req.Password, user.HashedPassword) {
		return nil, common.UnauthorizedError("Usuário ou senha inválidos.")
	}

	session := &model.Session{
		Token:    uuid.NewString(),
		UserID:   user.ID,
		Username: user.Username,
	}
	if err := s.sessionRepo.SaveSession(ctx, session, s.sessionTTL); err != nil {
		return nil, fmt.Errorf("Erro no servidor: %w", err)
	}
	return session, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	if err := s.sessionRepo.DeleteSession(ctx, token); err != nil {
		return fmt.Errorf("Erro ao encerrar sessão: %w", err)
	}
	return nil
}
