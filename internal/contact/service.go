package contact

import (
	"context"
	"fmt"

	"monolith-service/internal/resource"
)

var ErrContactNotFound = fmt.Errorf("contact %w", resource.ErrNotFound)

type Service interface {
	CreateContact(ctx context.Context, req *CreateContactRequest) (*Contact, error)
	GetAllContacts(ctx context.Context) ([]Contact, error)
	GetContactByID(ctx context.Context, id int) (*Contact, error)
	UpdateContact(ctx context.Context, id int, req *UpdateContactRequest) (*Contact, error)
	DeleteContact(ctx context.Context, id int) error
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

func (s *service) CreateContact(ctx context.Context, req *CreateContactRequest) (*Contact, error) {
	if err := s.validator.Required(req); err != nil {
		return nil, err
	}

	contact := req.NewContact(resource.Now())
	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, ResourceName, resource.ActionCreated, contact.ID)
	return contact, nil
}

func (s *service) GetAllContacts(ctx context.Context) ([]Contact, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetContactByID(ctx context.Context, id int) (*Contact, error) {
	if id <= 0 {
		return nil, ErrContactNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) UpdateContact(ctx context.Context, id int, req *UpdateContactRequest) (*Contact, error) {
	if id <= 0 {
		return nil, ErrContactNotFound
	}

	contact, err := s.repo.Update(ctx, id, req.Apply)
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, ResourceName, resource.ActionUpdated, contact.ID)
	return contact, nil
}

func (s *service) DeleteContact(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrContactNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.notifier.Notify(ctx, ResourceName, resource.ActionDeleted, id)
	return nil
}
