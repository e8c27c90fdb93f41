package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"delivery/internal/entities"
	"delivery/internal/repository"
	"delivery/internal/service/order"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderCreate entities.OrderCreate) (int64, error) {
	// rider_id намеренно не указываем: заказ создаётся без исполнителя
	query := `
		INSERT INTO orders (sender_id, receiver_id, address_id, item_description, image)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING order_id
	`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		orderCreate.SenderID,
		orderCreate.ReceiverID,
		orderCreate.AddressID,
		orderCreate.ItemDescription,
		orderCreate.Image,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) AppendStatus(ctx context.Context, statusAppend entities.OrderStatusAppend) (*entities.OrderStatus, error) {
	query := `
		INSERT INTO order_statuses (order_id, status, image, description)
		VALUES ($1, $2, $3, $4)
		RETURNING status_id, order_id, status, image, description, created_at
	`

	var statusDB OrderStatusDB
	err := r.querier.QueryRow(
		ctx,
		query,
		statusAppend.OrderID,
		statusAppend.Code,
		statusAppend.Image,
		statusAppend.Description,
	).Scan(
		&statusDB.StatusID,
		&statusDB.OrderID,
		&statusDB.Status,
		&statusDB.Image,
		&statusDB.Description,
		&statusDB.CreatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository append status error: %w", err)
	}

	return ToStatusDomain(&statusDB), nil
}

// GetLatestStatus возвращает последнюю строку истории: строку с
// максимальным status_id, created_at в выборе не участвует.
func (r *Repository) GetLatestStatus(ctx context.Context, orderID int64) (*entities.OrderStatus, error) {
	query := `
		SELECT status_id, order_id, status, image, description, created_at
		FROM order_statuses
		WHERE order_id = $1
		ORDER BY status_id DESC
		LIMIT 1
	`

	var statusDB OrderStatusDB
	err := r.querier.QueryRow(ctx, query, orderID).Scan(
		&statusDB.StatusID,
		&statusDB.OrderID,
		&statusDB.Status,
		&statusDB.Image,
		&statusDB.Description,
		&statusDB.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get latest status error: %w", err)
	}

	return ToStatusDomain(&statusDB), nil
}

func (r *Repository) ListBySender(ctx context.Context, userID int64) ([]entities.OrderView, error) {
	query := `
		SELECT
			o.order_id, o.item_description, o.image,
			ls.status, ls.created_at,
			u.user_id, u.name, u.phone, u.profile_image,
			a.address, a.latitude, a.longitude
		FROM orders o
		JOIN users u ON u.user_id = o.receiver_id
		LEFT JOIN addresses a ON a.address_id = o.address_id
		LEFT JOIN LATERAL (
			SELECT s.status, s.created_at
			FROM order_statuses s
			WHERE s.order_id = o.order_id
			ORDER BY s.status_id DESC
			LIMIT 1
		) ls ON TRUE
		WHERE o.sender_id = $1
		ORDER BY o.order_id DESC
	`

	return r.listViews(ctx, query, userID)
}

func (r *Repository) ListByReceiver(ctx context.Context, userID int64) ([]entities.OrderView, error) {
	query := `
		SELECT
			o.order_id, o.item_description, o.image,
			ls.status, ls.created_at,
			u.user_id, u.name, u.phone, u.profile_image,
			a.address, a.latitude, a.longitude
		FROM orders o
		JOIN users u ON u.user_id = o.sender_id
		LEFT JOIN addresses a ON a.address_id = o.address_id
		LEFT JOIN LATERAL (
			SELECT s.status, s.created_at
			FROM order_statuses s
			WHERE s.order_id = o.order_id
			ORDER BY s.status_id DESC
			LIMIT 1
		) ls ON TRUE
		WHERE o.receiver_id = $1
		ORDER BY o.order_id DESC
	`

	return r.listViews(ctx, query, userID)
}

func (r *Repository) listViews(ctx context.Context, query string, userID int64) ([]entities.OrderView, error) {
	rows, err := r.querier.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	views := make([]entities.OrderView, 0)
	for rows.Next() {
		var viewDB OrderViewDB
		err := rows.Scan(
			&viewDB.OrderID,
			&viewDB.ItemDescription,
			&viewDB.ItemImage,
			&viewDB.StatusCode,
			&viewDB.StatusAt,
			&viewDB.CounterpartyID,
			&viewDB.CounterpartyName,
			&viewDB.CounterpartyPhone,
			&viewDB.CounterpartyImage,
			&viewDB.Address,
			&viewDB.Latitude,
			&viewDB.Longitude,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list scan error: %w", err)
		}
		views = append(views, *ToViewDomain(&viewDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository list rows error: %w", err)
	}

	return views, nil
}
