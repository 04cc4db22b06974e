package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rizkypratama/user-crud-api/internal/application"
	"github.com/rizkypratama/user-crud-api/internal/domain/entity"
	"github.com/rizkypratama/user-crud-api/internal/domain/repository"
)

// stubRepo lets each test plug in just the behavior it needs.
type stubRepo struct {
	createFn   func(ctx context.Context, u *entity.User) error
	findAllFn  func(ctx context.Context) ([]entity.User, error)
	findByIDFn func(ctx context.Context, id string) (*entity.User, error)
	updateFn   func(ctx context.Context, id string, f repository.UserFields) (*entity.User, error)
	deleteFn   func(ctx context.Context, id string) (*entity.User, error)
}

func (s *stubRepo) Create(ctx context.Context, u *entity.User) error { return s.createFn(ctx, u) }
func (s *stubRepo) FindAll(ctx context.Context) ([]entity.User, error) {
	return s.findAllFn(ctx)
}
func (s *stubRepo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return s.findByIDFn(ctx, id)
}
func (s *stubRepo) UpdateByID(ctx context.Context, id string, f repository.UserFields) (*entity.User, error) {
	return s.updateFn(ctx, id, f)
}
func (s *stubRepo) DeleteByID(ctx context.Context, id string) (*entity.User, error) {
	return s.deleteFn(ctx, id)
}

func TestCreateAssignsStoreID(t *testing.T) {
	svc := application.NewService(&stubRepo{
		createFn: func(_ context.Context, u *entity.User) error {
			u.ID = "651f1f77bcf86cd799439011"
			return nil
		},
	})

	u, err := svc.Create(context.Background(), application.CreateUserInput{
		Name: "John Doe", Email: "john@example.com", Password: "Passw0rd!", Phone: "1234567890",
	})
	require.NoError(t, err)
	assert.Equal(t, "651f1f77bcf86cd799439011", u.ID)
	assert.Equal(t, "John Doe", u.Name)
}

func TestListNeverReturnsNil(t *testing.T) {
	svc := application.NewService(&stubRepo{
		findAllFn: func(context.Context) ([]entity.User, error) { return nil, nil },
	})

	users, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestGetMapsNotFoundToAbsent(t *testing.T) {
	svc := application.NewService(&stubRepo{
		findByIDFn: func(context.Context, string) (*entity.User, error) {
			return nil, repository.ErrNotFound
		},
	})

	u, err := svc.Get(context.Background(), "651f1f77bcf86cd799439011")
	assert.NoError(t, err)
	assert.Nil(t, u)
}

func TestGetPropagatesStoreErrors(t *testing.T) {
	boom := errors.New("connection reset")
	svc := application.NewService(&stubRepo{
		findByIDFn: func(context.Context, string) (*entity.User, error) { return nil, boom },
	})

	_, err := svc.Get(context.Background(), "651f1f77bcf86cd799439011")
	assert.ErrorIs(t, err, boom)
}

func TestUpdateAndDeleteMapNotFoundToAbsent(t *testing.T) {
	svc := application.NewService(&stubRepo{
		updateFn: func(context.Context, string, repository.UserFields) (*entity.User, error) {
			return nil, repository.ErrNotFound
		},
		deleteFn: func(context.Context, string) (*entity.User, error) {
			return nil, repository.ErrNotFound
		},
	})

	u, err := svc.Update(context.Background(), "651f1f77bcf86cd799439011", application.UpdateUserInput{})
	assert.NoError(t, err)
	assert.Nil(t, u)

	u, err = svc.Delete(context.Background(), "651f1f77bcf86cd799439011")
	assert.NoError(t, err)
	assert.Nil(t, u)
}
