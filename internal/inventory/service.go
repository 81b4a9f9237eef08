package inventory

import (
	"context"
	"fmt"

	"monolith-service/internal/resource"
)

var ErrItemNotFound = fmt.Errorf("inventory item %w", resource.ErrNotFound)

type Service interface {
	CreateItem(ctx context.Context, req *CreateItemRequest) (*Item, error)
	GetAllItems(ctx context.Context) ([]Item, error)
	GetItemByID(ctx context.Context, id int) (*Item, error)
	UpdateItem(ctx context.Context, id int, req *UpdateItemRequest) (*Item, error)
	DeleteItem(ctx context.Context, id int) error
}

type service struct {
	repo      Repository
	validator *resource.Validator
	notifier  *resource.Notifier
}

func NewService(repo Repository, notifier *resource.Notifier) Service {
	return &service{
		repo:      repo,
		validator: resource.NewValidator(),
		notifier:  notifier,
	}
}

func (s *service) CreateItem(ctx context.Context, req *CreateItemRequest) (*Item, error) {
	if err := s.validator.Required(req); err != nil {
		return nil, err
	}

	item, err := req.NewItem(resource.Now())
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, ResourceName, resource.ActionCreated, item.ID)
	return item, nil
}

func (s *service) GetAllItems(ctx context.Context) ([]Item, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetItemByID(ctx context.Context, id int) (*Item, error) {
	if id <= 0 {
		return nil, ErrItemNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) UpdateItem(ctx context.Context, id int, req *UpdateItemRequest) (*Item, error) {
	if id <= 0 {
		return nil, ErrItemNotFound
	}

	item, err := s.repo.Update(ctx, id, req.Apply)
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, ResourceName, resource.ActionUpdated, item.ID)
	return item, nil
}

func (s *service) DeleteItem(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrItemNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.notifier.Notify(ctx, ResourceName, resource.ActionDeleted, id)
	return nil
}
