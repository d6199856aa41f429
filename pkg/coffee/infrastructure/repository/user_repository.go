package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/Douai-hub/coffee/pkg/coffee/domain/model"
)

type userRow struct {
	ID             string    `db:"id"`
	Name           string    `db:"name"`
	Email          string    `db:"email"`
	HashedPassword string    `db:"hashed_password"`
	Address        []byte    `db:"address"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func NewUserRepository(db *sqlx.DB) model.UserRepository {
	return &userRepository{db: db}
}

type userRepository struct {
	db *sqlx.DB
}

func (r *userRepository) NextID() (uuid.UUID, error) {
	return uuid.New(), nil
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	address, err := json.Marshal(user.Address)
	if err != nil {
		return errors.Wrap(err, "marshal user address")
	}

	const query = `
		INSERT INTO users (id, name, email, hashed_password, address, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err = r.db.ExecContext(ctx, query,
		user.ID.String(), user.Name, user.Email, user.HashedPassword,
		address, user.CreatedAt, user.UpdatedAt,
	)
	return errors.Wrap(err, "insert user")
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	address, err := json.Marshal(user.Address)
	if err != nil {
		return errors.Wrap(err, "marshal user address")
	}

	const query = `
		UPDATE users SET name = ?, email = ?, hashed_password = ?, address = ?, updated_at = ?
		WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query,
		user.Name, user.Email, user.HashedPassword, address, user.UpdatedAt, user.ID.String(),
	)
	if err != nil {
		return errors.Wrap(err, "update user")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "rows affected")
	}
	if affected == 0 {
		return model.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) Find(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return r.find(ctx, `SELECT id, name, email, hashed_password, address, created_at, updated_at FROM users WHERE id = ?`, id.String())
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.find(ctx, `SELECT id, name, email, hashed_password, address, created_at, updated_at FROM users WHERE email = ?`, email)
}

func (r *userRepository) find(ctx context.Context, query string, arg interface{}) (*model.User, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, query, arg); err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrUserNotFound
		}
		return nil, errors.Wrap(err, "select user")
	}

	id, err := uuid.Parse(row.ID)
	if err != nil {
		return nil, errors.Wrap(err, "parse user id")
	}

	user := &model.User{
		ID:             id,
		Name:           row.Name,
		Email:          row.Email,
		HashedPassword: row.HashedPassword,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
	if len(row.Address) > 0 {
		if err := json.Unmarshal(row.Address, &user.Address); err != nil {
			return nil, errors.Wrap(err, "unmarshal user address")
		}
	}
	return user, nil
}
