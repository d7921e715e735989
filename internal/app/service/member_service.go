package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"members_roulette/internal/common"
	"members_roulette/internal/domain/model"
	"members_roulette/internal/domain/repository"

	"github.com/google/uuid"
)

type MemberService struct {
	memberRepo repository.MemberRepository
}

func NewMemberService(memberRepo repository.MemberRepository) *MemberService {
	return &MemberService{memberRepo: memberRepo}
}

type CreateMemberRequest struct {
	Nome     string `json:"Nome"`
	Sexo     string `json:"Sexo"`
	Idade    *int   `json:"Idade"`
	Endereco string `json:"Endereco"`
	Email    string `json:"Email"`
	Telefone string `json:"Telefone"`
}

// UpdateMemberRequest uses pointers so absent fields can be told apart from
// zero values: only present fields are merged into the stored record.
type UpdateMemberRequest struct {
	Nome     *string `json:"Nome"`
	Sexo     *string `json:"Sexo"`
	Idade    *int    `json:"Idade"`
	Endereco *string `json:"Endereco"`
	Email    *string `json:"Email"`
	Telefone *string `json:"Telefone"`
}

func (r *UpdateMemberRequest) empty() bool {
	return r.Nome == nil && r.Sexo == nil && r.Idade == nil &&
		r.Endereco == nil && r.Email == nil && r.Telefone == nil
}

func (s *MemberService) ListMembers(ctx context.Context) ([]model.Member, error) {
	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("Erro ao buscar membros: %w", err)
	}
	return members, nil
}

func (s *MemberService) CreateMember(ctx context.Context, req CreateMemberRequest) (*model.Member, error) {
	if req.Nome == "" || req.Sexo == "" || req.Idade == nil {
		return nil, common.ValidationError("Nome, Sexo e Idade são obrigatórios.")
	}

	member := &model.Member{
		ID:           uuid.NewString(),
		Nome:         req.Nome,
		Sexo:         req.Sexo,
		Idade:        *req.Idade,
		Endereco:     req.Endereco,
		Email:        req.Email,
		Telefone:     req.Telefone,
		DataCadastro: time.Now().UTC(),
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("Erro ao criar membro: %w", err)
	}
	return member, nil
}

func (s *MemberService) UpdateMember(ctx context.Context, id string, req UpdateMemberRequest) (*model.Member, error) {
	if req.empty() {
		return nil, common.ValidationError("Nenhum dado para atualizar foi fornecido.")
	}

	member, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("Membro não encontrado.")
		}
		return nil, fmt.Errorf("Erro ao atualizar membro: %w", err)
	}

	if req.Nome != nil {
		member.Nome = *req.Nome
	}
	if req.Sexo != nil {
		member.Sexo = *req.Sexo
	}
	if req.Idade != nil {
		member.Idade = *req.Idade
	}
	if req.Endereco != nil {
		member.Endereco = *req.Endereco
	}
	if req.Email != nil {
		member.Email = *req.Email
	}
	if req.Telefone != nil {
		member.Telefone = *req.Telefone
	}

	if err := s.memberRepo.Update(ctx, member); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("Membro não encontrado.")
		}
		return nil, fmt.Errorf("Erro ao atualizar membro: %w", err)
	}
	return member, nil
}

func (s *MemberService) DeleteMember(ctx context.Context, id string) error {
	if err := s.memberRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.NotFoundError("Membro não encontrado.")
		}
		return fmt.Errorf("Erro ao deletar membro: %w", err)
	}
	return nil
}
