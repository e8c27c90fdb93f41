package address

import (
	"context"
	"fmt"

	"delivery/internal/entities"
	"delivery/internal/repository"
	"delivery/internal/service/user"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, addressModify entities.AddressModify) (*entities.Address, error) {
	query := `
		INSERT INTO addresses (user_id, address, latitude, longitude)
		VALUES ($1, $2, $3, $4)
		RETURNING address_id, user_id, address, latitude, longitude
	`

	var addressModel AddressDB
	err := r.querier.QueryRow(
		ctx,
		query,
		addressModify.UserID,
		addressModify.Address,
		addressModify.Latitude,
		addressModify.Longitude,
	).Scan(
		&addressModel.ID,
		&addressModel.UserID,
		&addressModel.Address,
		&addressModel.Latitude,
		&addressModel.Longitude,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected address repository create error: %w", err)
	}

	return ToDomain(&addressModel), nil
}

// Delete удаляет адрес только вместе с проверкой владельца: чужой
// address_id неотличим от несуществующего.
func (r *Repository) Delete(ctx context.Context, addressID, userID int64) error {
	query := `
		DELETE FROM addresses WHERE address_id = $1 AND user_id = $2
	`
	result, err := r.querier.Exec(ctx, query, addressID, userID)
	if err != nil {
		return fmt.Errorf("unexpected address repository delete error: %w", err)
	}

	rowsAffected := result.RowsAffected()
	if rowsAffected == 0 {
		return user.ErrAddressNotFound
	}

	return nil
}

func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]entities.Address, error) {
	query := `
		SELECT address_id, user_id, address, latitude, longitude
		FROM addresses
		WHERE user_id = $1
		ORDER BY address_id
	`

	rows, err := r.querier.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("unexpected address repository list error: %w", err)
	}
	defer rows.Close()

	addresses := make([]entities.Address, 0)
	for rows.Next() {
		var addressModel AddressDB
		err := rows.Scan(
			&addressModel.ID,
			&addressModel.UserID,
			&addressModel.Address,
			&addressModel.Latitude,
			&addressModel.Longitude,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected address repository list scan error: %w", err)
		}
		addresses = append(addresses, *ToDomain(&addressModel))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected address repository list rows error: %w", err)
	}

	return addresses, nil
}

func (r *Repository) BelongsToUser(ctx context.Context, addressID, userID int64) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM addresses WHERE address_id = $1 AND user_id = $2
	)`

	var belongs bool
	err := r.querier.QueryRow(ctx, query, addressID, userID).Scan(&belongs)
	if err != nil {
		return false, fmt.Errorf("unexpected address repository ownership check error: %w", err)
	}

	return belongs, nil
}
