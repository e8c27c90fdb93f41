package user

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"delivery/internal/entities"
	"delivery/internal/repository"
	"delivery/internal/service/user"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	query := `SELECT user_id, name, phone, profile_image
		FROM users
		WHERE user_id = $1`

	var userModel UserDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&userModel.ID,
			&userModel.Name,
			&userModel.Phone,
			&userModel.ProfileImage,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository get error: %w", err)
	}

	return ToDomain(&userModel), nil
}

func (r *Repository) Update(ctx context.Context, userModifyEntity entities.UserModify) (*entities.User, error) {
	userModifyModel := FromDomainModify(&userModifyEntity)

	builder := qb.
		Update("users")

	// опционнные поля
	if userModifyModel.Name != nil {
		builder = builder.Set("name", userModifyModel.Name)
	}
	if userModifyModel.Phone != nil {
		builder = builder.Set("phone", userModifyModel.Phone)
	}
	if userModifyModel.ProfileImage != nil {
		builder = builder.Set("profile_image", userModifyModel.ProfileImage)
	}

	builder = builder.
		Where(sq.Eq{"user_id": userModifyModel.ID}).
		Suffix("RETURNING user_id, name, phone, profile_image")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository update error: %w", err)
	}

	var userModel UserDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&userModel.ID,
			&userModel.Name,
			&userModel.Phone,
			&userModel.ProfileImage,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, user.ErrPhoneTaken
		}

		return nil, fmt.Errorf("unexpected user repository update error: %w", err)
	}

	return ToDomain(&userModel), nil
}

func (r *Repository) PhoneInUse(ctx context.Context, phone string, excludeUserID int64) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM users WHERE phone = $1 AND user_id != $2
	)`

	var inUse bool
	err := r.querier.QueryRow(ctx, query, phone, excludeUserID).Scan(&inUse)
	if err != nil {
		return false, fmt.Errorf("unexpected user repository phone check error: %w", err)
	}

	return inUse, nil
}
