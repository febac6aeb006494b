package infrastructure

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"savoria/internal/modules/orders/application/port"
	"savoria/internal/modules/orders/domain"
)

const schema = `
CREATE SEQUENCE IF NOT EXISTS order_numbers START 100000;
CREATE TABLE IF NOT EXISTS orders (
	id               UUID PRIMARY KEY,
	order_number     BIGINT NOT NULL DEFAULT nextval('order_numbers'),
	customer_id      TEXT NOT NULL,
	customer_name    TEXT NOT NULL,
	customer_email   TEXT NOT NULL,
	reservation_date TEXT NOT NULL,
	reservation_time TEXT NOT NULL,
	guests           INT NOT NULL,
	table_id         INT NOT NULL,
	items            JSONB NOT NULL,
	total_amount     BIGINT NOT NULL,
	status           TEXT NOT NULL,
	payment_method   TEXT NOT NULL,
	customer_notes   TEXT NOT NULL DEFAULT '',
	admin_notes      TEXT NOT NULL DEFAULT '',
	created_at       TIMESTAMPTZ NOT NULL,
	updated_at       TIMESTAMPTZ NOT NULL
);`

const orderColumns = `id, order_number, customer_id, customer_name, customer_email,
	reservation_date, reservation_time, guests, table_id, items, total_amount,
	status, payment_method, customer_notes, admin_notes, created_at, updated_at`

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// EnsureSchema creates the orders table and its number sequence when absent.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure orders schema: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Insert(ctx context.Context, order *domain.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("marshal order items: %w", err)
	}
	now := time.Now().UTC()
	err = r.db.QueryRowContext(ctx, `
		INSERT INTO orders (
			id, customer_id, customer_name, customer_email,
			reservation_date, reservation_time, guests, table_id,
			items, total_amount, status, payment_method,
			customer_notes, admin_notes, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, '', $14, $14)
		RETURNING order_number
	`, order.ID, order.CustomerID, order.CustomerName, order.CustomerEmail,
		order.ReservationDate, order.ReservationTime, order.Guests, order.TableID,
		items, order.TotalAmount, order.Status, order.PaymentMethod,
		order.CustomerNotes, now).
		Scan(&order.OrderNumber)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	order.CreatedAt = now
	order.UpdatedAt = now
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (domain.Order, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	return scanOrder(row)
}

func (r *PostgresRepository) GetByNumber(ctx context.Context, number int64) (domain.Order, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE order_number = $1`, number)
	return scanOrder(row)
}

func (r *PostgresRepository) List(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, expected, next domain.Status, adminNotes string, updatedAt time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET status = $1, admin_notes = $2, updated_at = $3
		WHERE id = $4 AND status = $5
	`, next, adminNotes, updatedAt, id, expected)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if affected == 0 {
		if _, err := r.Get(ctx, id); err != nil {
			return err
		}
		return port.ErrStatusConflict
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (domain.Order, error) {
	var (
		order   domain.Order
		items   []byte
		status  string
		created time.Time
		updated time.Time
	)
	err := row.Scan(&order.ID, &order.OrderNumber, &order.CustomerID, &order.CustomerName,
		&order.CustomerEmail, &order.ReservationDate, &order.ReservationTime,
		&order.Guests, &order.TableID, &items, &order.TotalAmount,
		&status, &order.PaymentMethod, &order.CustomerNotes, &order.AdminNotes,
		&created, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Order{}, port.ErrOrderNotFound
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("scan order: %w", err)
	}
	if err := json.Unmarshal(items, &order.Items); err != nil {
		return domain.Order{}, fmt.Errorf("unmarshal order items: %w", err)
	}
	order.Status = domain.NormalizeStatus(status)
	order.CreatedAt = created.UTC()
	order.UpdatedAt = updated.UTC()
	return order, nil
}
