package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/tmoeller732/five-star-flame-grill-api/internal/model"
	"github.com/tmoeller732/five-star-flame-grill-api/internal/repository"
)

type OrderService struct {
	Repo      *repository.OrderRepository
	Customers *repository.CustomerRepository
}

func NewOrderService(r *repository.OrderRepository, cr *repository.CustomerRepository) *OrderService {
	return &OrderService{Repo: r, Customers: cr}
}

// History returns a member's past orders.
func (s *OrderService) History(ctx context.Context, authID int64) ([]model.Order, error) {
	c, err := s.Customers.GetByAuthID(ctx, authID)
	if err != nil {
		return nil, err
	}
	return s.Repo.ListByCustomer(ctx, c.CustomerID)
}

// GetForMember returns one order, rejecting orders that belong to someone
// else. Guests see their confirmation only in the checkout response.
func (s *OrderService) GetForMember(ctx context.Context, authID, orderID int64) (*model.Order, error) {
	c, err := s.Customers.GetByAuthID(ctx, authID)
	if err != nil {
		return nil, err
	}
	o, err := s.Repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.CustomerID == nil || *o.CustomerID != c.CustomerID {
		return nil, errors.New("order not found")
	}
	return o, nil
}

// ListAll backs the admin dashboard, optionally filtered by status.
func (s *OrderService) ListAll(ctx context.Context, status string) ([]model.Order, error) {
	if status == "" {
		return s.Repo.List(ctx, nil)
	}
	st := model.OrderStatus(status)
	if !st.Valid() {
		return nil, fmt.Errorf("unknown order status %q", status)
	}
	return s.Repo.List(ctx, &st)
}

// UpdateStatus is the only path that mutates an order after creation.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID int64, status string) error {
	st := model.OrderStatus(status)
	if !st.Valid() {
		return fmt.Errorf("unknown order status %q", status)
	}
	return s.Repo.UpdateStatus(ctx, orderID, st)
}
