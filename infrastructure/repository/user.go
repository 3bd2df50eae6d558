package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/app-rank-navi-api/infrastructure/database/postgres"
	"github.com/vfg2006/app-rank-navi-api/internal/domain"
	"github.com/vfg2006/app-rank-navi-api/pkg/utils"
)

const (
	usersTable = "users u"
)

var userColumns = []string{
	"u.id",
	"u.email",
	"u.name",
	"u.password_hash",
	"u.role",
	"u.created_at",
	"u.last_signed_in",
}

type UserRepository interface {
	Create(user *domain.User) error
	GetByEmail(email string) (*domain.User, error)
	GetByID(id string) (*domain.User, error)
	UpdateLastSignedIn(id string) error
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

// Create insere o usuário gerando um id curto quando não informado.
func (r *userRepository) Create(user *domain.User) error {
	if user.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id do usuário: %w", err)
		}
		user.ID = id
	}

	if user.Role == "" {
		user.Role = domain.RoleUser
	}

	query, args, err := squirrel.
		Insert("users").
		Columns("id", "email", "name", "password_hash", "role").
		Values(user.ID, user.Email, user.Name, user.PasswordHash, user.Role).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao inserir usuário: %w", err)
	}

	return nil
}

func (r *userRepository) GetByEmail(email string) (*domain.User, error) {
	return r.getBy(squirrel.Eq{"u.email": email})
}

func (r *userRepository) GetByID(id string) (*domain.User, error) {
	return r.getBy(squirrel.Eq{"u.id": id})
}

func (r *userRepository) UpdateLastSignedIn(id string) error {
	query, args, err := squirrel.
		Update("users").
		Set("last_signed_in", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar último acesso: %w", err)
	}

	return nil
}

func (r *userRepository) getBy(pred squirrel.Eq) (*domain.User, error) {
	query, args, err := squirrel.
		Select(userColumns...).
		From(usersTable).
		Where(pred).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	user := &domain.User{}
	err = r.conn.QueryRow(query, args...).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
		&user.LastSignedIn,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear usuário: %w", err)
	}

	return user, nil
}
