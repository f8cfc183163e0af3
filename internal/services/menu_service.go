package services

import (
	"context"
	"errors"

	"github.com/tmoeller732/five-star-flame-grill-api/internal/model"
	"github.com/tmoeller732/five-star-flame-grill-api/internal/repository"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(r *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: r}
}

func (s *MenuService) List(ctx context.Context) ([]model.MenuItem, error) {
	return s.Repo.ListItems(ctx)
}

type MenuItemDetail struct {
	model.MenuItem
	Customizations []model.Customization `json:"customizations"`
}

func (s *MenuService) Get(ctx context.Context, id int64) (*MenuItemDetail, error) {
	item, err := s.Repo.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}
	cs, err := s.Repo.ListCustomizations(ctx, id)
	if err != nil {
		return nil, err
	}
	return &MenuItemDetail{MenuItem: *item, Customizations: cs}, nil
}

// PriceDraft turns an add-to-cart request into a line-item draft priced from
// the menu. Client-supplied prices never enter the cart.
func (s *MenuService) PriceDraft(ctx context.Context, menuItemID int64, quantity int, customizationIDs []int64) (*model.LineItemDraft, error) {
	if quantity <= 0 {
		return nil, errors.New("quantity must be positive")
	}
	item, err := s.Repo.GetItem(ctx, menuItemID)
	if err != nil {
		return nil, err
	}
	if !item.Available {
		return nil, errors.New("menu item is not available")
	}
	cs, err := s.Repo.GetCustomizations(ctx, menuItemID, customizationIDs)
	if err != nil {
		return nil, err
	}
	return &model.LineItemDraft{
		MenuItemID:     item.MenuItemID,
		Name:           item.Name,
		Description:    item.Description,
		BasePriceCents: item.PriceCents,
		Quantity:       quantity,
		Customizations: cs,
		Category:       item.Category,
	}, nil
}
