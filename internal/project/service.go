package project

import (
	"context"
	"fmt"

	"monolith-service/internal/resource"
)

var ErrProjectNotFound = fmt.Errorf("project %w", resource.ErrNotFound)

type Service interface {
	CreateProject(ctx context.Context, req *CreateProjectRequest) (*Project, error)
	GetAllProjects(ctx context.Context) ([]Project, error)
	GetProjectByID(ctx context.Context, id int) (*Project, error)
	UpdateProject(ctx context.Context, id int, req *UpdateProjectRequest) (*Project, error)
	DeleteProject(ctx context.Context, id int) error
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

func (s *service) CreateProject(ctx context.Context, req *CreateProjectRequest) (*Project, error) {
	if err := s.validator.Required(req); err != nil {
		return nil, err
	}

	project, err := req.NewProject(resource.Now())
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, project); err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, ResourceName, resource.ActionCreated, project.ID)
	return project, nil
}

func (s *service) GetAllProjects(ctx context.Context) ([]Project, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetProjectByID(ctx context.Context, id int) (*Project, error) {
	if id <= 0 {
		return nil, ErrProjectNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) UpdateProject(ctx context.Context, id int, req *UpdateProjectRequest) (*Project, error) {
	if id <= 0 {
		return nil, ErrProjectNotFound
	}

	project, err := s.repo.Update(ctx, id, req.Apply)
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, ResourceName, resource.ActionUpdated, project.ID)
	return project, nil
}

func (s *service) DeleteProject(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrProjectNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.notifier.Notify(ctx, ResourceName, resource.ActionDeleted, id)
	return nil
}
