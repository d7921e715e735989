package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"members_roulette/internal/common"
	"members_roulette/internal/common/security"
	"members_roulette/internal/domain/model"
	"members_roulette/internal/domain/repository"

	"github.com/google/uuid"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Role     *string `json:"role"`
}

// SanitizedUser is the echo returned on creation: no password, no id.
type SanitizedUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (s *UserService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("Erro ao buscar usuários: %w", err)
	}
	return users, nil
}

func (s *UserService) CreateUser(ctx context.Context, req CreateUserRequest) (*SanitizedUser, error) {
	if len(req.Username) < 3 || len(req.Username) > 30 {
		return nil, common.ValidationError("Username é obrigatório e deve ter entre 3 e 30 caracteres.")
	}
	if !strings.Contains(req.Email, "@") {
		return nil, common.ValidationError("Email válido é obrigatório.")
	}
	if len(req.Password) < 6 {
		return nil, common.ValidationError("Senha é obrigatória e deve ter ao menos 6 caracteres.")
	}
	if req.Role != "" && !model.IsValidRole(req.Role) {
		return nil, common.ValidationError(`Role deve ser "user" ou "admin" se informado.`)
	}

	hashedPassword, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("Erro ao criar usuário: %w", err)
	}

	role := req.Role
	if role == "" {
		role = model.RoleUser
	}

	user := &model.User{
		ID:             uuid.NewString(),
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: hashedPassword,
		Role:           role,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrConflict) {
			return nil, common.ConflictError("Erro ao criar usuário: usuário ou email já existe.")
		}
		return nil, fmt.Errorf("Erro ao criar usuário: %w", err)
	}

	return &SanitizedUser{Username: user.Username, Email: user.Email, Role: user.Role}, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*model.User, error) {
	if req.Username != nil && (len(*req.Username) < 3 || len(*req.Username) > 30) {
		return nil, common.ValidationError("Username deve ter entre 3 e 30 caracteres.")
	}
	if req.Email != nil && !strings.Contains(*req.Email, "@") {
		return nil, common.ValidationError("Email inválido.")
	}
	if req.Role != nil && !model.IsValidRole(*req.Role) {
		return nil, common.ValidationError(`Role deve ser "user" ou "admin".`)
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("Usuário não encontrado")
		}
		return nil, fmt.Errorf("Erro ao atualizar usuário: %w", err)
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Role != nil {
		user.Role = *req.Role
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("Usuário não encontrado")
		}
		if errors.Is(err, common.ErrConflict) {
			return nil, common.ConflictError("Erro ao atualizar usuário: usuário ou email já existe.")
		}
		return nil, fmt.Errorf("Erro ao atualizar usuário: %w", err)
	}

	user.HashedPassword = ""
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.NotFoundError("Usuário não encontrado")
		}
		return fmt.Errorf("Erro ao remover usuário: %w", err)
	}
	return nil
}
