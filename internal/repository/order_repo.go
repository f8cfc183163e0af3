package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tmoeller732/five-star-flame-grill-api/internal/model"
)

type OrderRepository struct {
	DB *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{DB: db}
}

// Insert persists the order snapshot and fills in the server-assigned id and
// created_at. Items go into a jsonb column; the row never references live
// cart state.
func (r *OrderRepository) Insert(ctx context.Context, o *model.Order) error {
	itemsJSON, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("marshal order items: %w", err)
	}
	query := `
		INSERT INTO orders (customerid, guest, email, first_name, last_name, phone,
			items, subtotal_cents, tax_cents, grand_total_cents,
			special_instructions, status, estimated_wait_minutes, pickup_time, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING orderid, created_at
	`
	now := time.Now()
	if err := r.DB.QueryRow(ctx, query,
		o.CustomerID, o.Guest, o.Email, o.FirstName, o.LastName, o.Phone,
		itemsJSON, o.SubtotalCents, o.TaxCents, o.GrandTotalCents,
		o.SpecialInstructions, o.Status, o.EstimatedWaitMinutes, o.PickupTime, now,
	).Scan(&o.OrderID, &o.CreatedAt); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, orderID int64) (*model.Order, error) {
	query := `SELECT orderid, customerid, guest, email, first_name, last_name, phone,
			items, subtotal_cents, tax_cents, grand_total_cents,
			special_instructions, status, estimated_wait_minutes, pickup_time, created_at
			FROM orders WHERE orderid=$1 AND deleted_at IS NULL`
	o, err := scanOrder(r.DB.QueryRow(ctx, query, orderID))
	if err != nil {
		return nil, errors.New("order not found")
	}
	return o, nil
}

// ListByCustomer returns a member's order history, newest first.
func (r *OrderRepository) ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	query := `SELECT orderid, customerid, guest, email, first_name, last_name, phone,
			items, subtotal_cents, tax_cents, grand_total_cents,
			special_instructions, status, estimated_wait_minutes, pickup_time, created_at
			FROM orders WHERE customerid=$1 AND deleted_at IS NULL ORDER BY orderid DESC`
	return r.queryOrders(ctx, query, customerID)
}

// List returns orders for the admin dashboard, optionally filtered by status.
func (r *OrderRepository) List(ctx context.Context, status *model.OrderStatus) ([]model.Order, error) {
	base := `SELECT orderid, customerid, guest, email, first_name, last_name, phone,
			items, subtotal_cents, tax_cents, grand_total_cents,
			special_instructions, status, estimated_wait_minutes, pickup_time, created_at
			FROM orders WHERE deleted_at IS NULL`
	if status != nil {
		return r.queryOrders(ctx, base+` AND status=$1 ORDER BY orderid DESC`, *status)
	}
	return r.queryOrders(ctx, base+` ORDER BY orderid DESC`)
}

// UpdateStatus moves an order through the kitchen workflow (admin action).
func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	query := `UPDATE orders SET status=$1 WHERE orderid=$2 AND deleted_at IS NULL`
	tag, err := r.DB.Exec(ctx, query, status, orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("order not found")
	}
	return nil
}

func (r *OrderRepository) queryOrders(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*model.Order, error) {
	var o model.Order
	var itemsJSON []byte
	if err := row.Scan(&o.OrderID, &o.CustomerID, &o.Guest, &o.Email, &o.FirstName, &o.LastName, &o.Phone,
		&itemsJSON, &o.SubtotalCents, &o.TaxCents, &o.GrandTotalCents,
		&o.SpecialInstructions, &o.Status, &o.EstimatedWaitMinutes, &o.PickupTime, &o.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
		return nil, fmt.Errorf("unmarshal order items: %w", err)
	}
	return &o, nil
}
