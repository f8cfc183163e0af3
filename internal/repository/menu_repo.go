package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tmoeller732/five-star-flame-grill-api/internal/model"
)

type MenuRepository struct {
	DB *pgxpool.Pool
}

func NewMenuRepository(db *pgxpool.Pool) *MenuRepository {
	return &MenuRepository{DB: db}
}

// ListItems returns the available menu, insertion order within category.
func (r *MenuRepository) ListItems(ctx context.Context) ([]model.MenuItem, error) {
	query := `SELECT menuitemid, name, description, price_cents, category, image_url, available, created_at
			FROM menuitems WHERE deleted_at IS NULL AND available ORDER BY category, menuitemid`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.MenuItem
	for rows.Next() {
		var m model.MenuItem
		if err := rows.Scan(&m.MenuItemID, &m.Name, &m.Description, &m.PriceCents, &m.Category, &m.ImageURL, &m.Available, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *MenuRepository) GetItem(ctx context.Context, id int64) (*model.MenuItem, error) {
	var m model.MenuItem
	query := `SELECT menuitemid, name, description, price_cents, category, image_url, available, created_at
			FROM menuitems WHERE menuitemid=$1 AND deleted_at IS NULL`
	if err := r.DB.QueryRow(ctx, query, id).Scan(&m.MenuItemID, &m.Name, &m.Description, &m.PriceCents, &m.Category, &m.ImageURL, &m.Available, &m.CreatedAt); err != nil {
		return nil, errors.New("menu item not found")
	}
	return &m, nil
}

// ListCustomizations returns the modifiers offered for one menu item.
func (r *MenuRepository) ListCustomizations(ctx context.Context, menuItemID int64) ([]model.Customization, error) {
	query := `SELECT customizationid, name, price_cents, category
			FROM menu_customizations WHERE menuitemid=$1 AND deleted_at IS NULL ORDER BY category, customizationid`
	rows, err := r.DB.Query(ctx, query, menuItemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Customization
	for rows.Next() {
		var c model.Customization
		if err := rows.Scan(&c.ID, &c.Name, &c.PriceCents, &c.Category); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// GetCustomizations resolves the requested modifier ids against one menu item,
// so cart drafts carry menu prices rather than client-supplied ones. An id
// that does not belong to the item is an error.
func (r *MenuRepository) GetCustomizations(ctx context.Context, menuItemID int64, ids []int64) ([]model.Customization, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT customizationid, name, price_cents, category
			FROM menu_customizations WHERE menuitemid=$1 AND customizationid = ANY($2) AND deleted_at IS NULL`
	rows, err := r.DB.Query(ctx, query, menuItemID, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byID := make(map[int64]model.Customization, len(ids))
	for rows.Next() {
		var c model.Customization
		if err := rows.Scan(&c.ID, &c.Name, &c.PriceCents, &c.Category); err != nil {
			return nil, err
		}
		byID[c.ID] = c
	}

	out := make([]model.Customization, 0, len(ids))
	for _, id := range ids {
		c, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("customization %d not offered for this item", id)
		}
		out = append(out, c)
	}
	return out, nil
}
