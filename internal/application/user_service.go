package application

import (
	"context"
	"errors"

	"github.com/rizkypratama/user-crud-api/internal/domain/entity"
	repo "github.com/rizkypratama/user-crud-api/internal/domain/repository"
)

// Service sits between the HTTP handlers and the repository. Absence of a
// user is not an error at this level: lookups on a missing id return
// (nil, nil) and the HTTP layer renders a null user with status 200.
type Service struct {
	Repo repo.UserRepository
}

func NewService(r repo.UserRepository) *Service {
	return &Service{Repo: r}
}

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
	Phone    *string
}

func (s *Service) Create(ctx context.Context, in CreateUserInput) (*entity.User, error) {
	u := &entity.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
		Phone:    in.Phone,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) List(ctx context.Context) ([]entity.User, error) {
	users, err := s.Repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []entity.User{}
	}
	return users, nil
}

func (s *Service) Get(ctx context.Context, id string) (*entity.User, error) {
	u, err := s.Repo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, nil
	}
	return u, err
}

func (s *Service) Update(ctx context.Context, id string, in UpdateUserInput) (*entity.User, error) {
	u, err := s.Repo.UpdateByID(ctx, id, repo.UserFields{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
		Phone:    in.Phone,
	})
	if errors.Is(err, repo.ErrNotFound) {
		return nil, nil
	}
	return u, err
}

func (s *Service) Delete(ctx context.Context, id string) (*entity.User, error) {
	u, err := s.Repo.DeleteByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, nil
	}
	return u, err
}
