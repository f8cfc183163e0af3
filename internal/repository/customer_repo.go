package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tmoeller732/five-star-flame-grill-api/internal/model"
)

type CustomerRepository struct {
	DB *pgxpool.Pool
}

func NewCustomerRepository(db *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

// Create creates a customer row (used only during public registration)
func (r *CustomerRepository) Create(ctx context.Context, authID int64, email string, firstName, lastName *string) (int64, error) {
	var id int64
	query := `
		INSERT INTO customers (authid, email, first_name, last_name, loyalty_points, created_at)
		VALUES ($1, $2, $3, $4, 0, $5)
		RETURNING customerid
	`
	if err := r.DB.QueryRow(ctx, query, authID, email, firstName, lastName, time.Now()).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// GetByAuthID returns a customer by authid. Checkout reads the phone off this
// row for member orders.
func (r *CustomerRepository) GetByAuthID(ctx context.Context, authID int64) (*model.Customer, error) {
	var c model.Customer
	query := `SELECT customerid, authid, email, first_name, last_name, phone, loyalty_points, created_at, deleted_at
			FROM customers WHERE authid=$1 AND deleted_at IS NULL`
	if err := r.DB.QueryRow(ctx, query, authID).Scan(&c.CustomerID, &c.AuthID, &c.Email, &c.FirstName, &c.LastName, &c.Phone, &c.LoyaltyPoints, &c.CreatedAt, &c.DeletedAt); err != nil {
		return nil, errors.New("customer not found")
	}
	return &c, nil
}

// Update allows a member to update their own profile
func (r *CustomerRepository) Update(ctx context.Context, customerID int64, firstName, lastName, phone *string) error {
	query := `UPDATE customers SET first_name=$1, last_name=$2, phone=$3 WHERE customerid=$4 AND deleted_at IS NULL`
	tag, err := r.DB.Exec(ctx, query, firstName, lastName, phone, customerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("customer not found or deleted")
	}
	return nil
}

// ListAll returns all customers (admin dashboard).
func (r *CustomerRepository) ListAll(ctx context.Context) ([]model.Customer, error) {
	query := `SELECT customerid, authid, email, first_name, last_name, phone, loyalty_points, created_at, deleted_at
			FROM customers ORDER BY customerid`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Customer
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.CustomerID, &c.AuthID, &c.Email, &c.FirstName, &c.LastName, &c.Phone, &c.LoyaltyPoints, &c.CreatedAt, &c.DeletedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
