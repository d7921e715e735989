package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"members_roulette/internal/common"
	"members_roulette/internal/domain/model"
)

type MemberRepository interface {
	List(ctx context.Context) ([]model.Member, error)
	Create(ctx context.Context, member *model.Member) error
	FindByID(ctx context.Context, id string) (*model.Member, error)
	Update(ctx context.Context, member *model.Member) error
	Delete(ctx context.Context, id string) error
}

type pgMemberRepository struct {
	db *sql.DB
}

func NewPgMemberRepository(db *sql.DB) MemberRepository {
	return &pgMemberRepository{db: db}
}

func (r *pgMemberRepository) List(ctx context.Context) ([]model.Member, error) {
	query := `SELECT id, nome, sexo, idade, endereco, email, telefone, data_cadastro
	          FROM members ORDER BY data_cadastro`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgMemberRepository.List: %w", err)
	}
	defer rows.Close()

	members := []model.Member{}
	for rows.Next() {
		var m model.Member
		var endereco, email, telefone sql.NullString
		if err := rows.Scan(&m.ID, &m.Nome, &m.Sexo, &m.Idade, &endereco, &email, &telefone, &m.DataCadastro); err != nil {
			return nil, fmt.Errorf("pgMemberRepository.List: %w", err)
		}
		m.Endereco = endereco.String
		m.Email = email.String
		m.Telefone = telefone.String
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgMemberRepository.List: %w", err)
	}
	return members, nil
}

func (r *pgMemberRepository) Create(ctx context.Context, m *model.Member) error {
	query := `INSERT INTO members (id, nome, sexo, idade, endereco, email, telefone, data_cadastro)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.Nome, m.Sexo, m.Idade, nullable(m.Endereco), nullable(m.Email), nullable(m.Telefone), m.DataCadastro)
	if err != nil {
		return fmt.Errorf("pgMemberRepository.Create: %w", err)
	}
	return nil
}

func (r *pgMemberRepository) FindByID(ctx context.Context, id string) (*model.Member, error) {
	query := `SELECT id, nome, sexo, idade, endereco, email, telefone, data_cadastro
	          FROM members WHERE id = $1`
	m := &model.Member{}
	var endereco, email, telefone sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&m.ID, &m.Nome, &m.Sexo, &m.Idade, &endereco, &email, &telefone, &m.DataCadastro,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgMemberRepository.FindByID: %w", err)
	}
	m.Endereco = endereco.String
	m.Email = email.String
	m.Telefone = telefone.String
	return m, nil
}

func (r *pgMemberRepository) Update(ctx context.Context, m *model.Member) error {
	query := `UPDATE members SET nome = $1, sexo = $2, idade = $3, endereco = $4, email = $5, telefone = $6
	          WHERE id = $7`
	result, err := r.db.ExecContext(ctx, query,
		m.Nome, m.Sexo, m.Idade, nullable(m.Endereco), nullable(m.Email), nullable(m.Telefone), m.ID)
	if err != nil {
		return fmt.Errorf("pgMemberRepository.Update: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgMemberRepository.Update: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgMemberRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("pgMemberRepository.Delete: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgMemberRepository.Delete: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
