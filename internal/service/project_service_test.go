package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/genesehub/internal/models"
	"github.com/ignatzorin/genesehub/internal/pkg/apperror"
)

type mockProjectStore struct {
	mock.Mock
}

func (m *mockProjectStore) ListByAuthor(ctx context.Context, authorID string) ([]models.Project, error) {
	args := m.Called(ctx, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Project), args.Error(1)
}

func TestProjectService_ListProjects(t *testing.T) {
	store := new(mockProjectStore)
	svc := NewProjectService(store)
	ctx := context.Background()

	want := []models.Project{{ID: 2, Titulo: "B"}, {ID: 1, Titulo: "A"}}
	store.On("ListByAuthor", ctx, "user-1").Return(want, nil)

	got, err := svc.ListProjects(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, want, got, "порядок хранилища сохраняется")
}

func TestProjectService_ListProjects_NilBecomesEmpty(t *testing.T) {
	store := new(mockProjectStore)
	svc := NewProjectService(store)
	ctx := context.Background()

	store.On("ListByAuthor", ctx, "user-1").Return(nil, nil)

	got, err := svc.ListProjects(ctx, "user-1")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestProjectService_ListProjects_Failure(t *testing.T) {
	store := new(mockProjectStore)
	svc := NewProjectService(store)
	ctx := context.Background()

	store.On("ListByAuthor", ctx, "user-1").Return(nil, errors.New("relation does not exist"))

	_, err := svc.ListProjects(ctx, "user-1")
	require.Error(t, err)
	appErr := apperror.From(err)
	assert.Equal(t, apperror.ErrCodeInternal, appErr.Code)
	assert.Equal(t, "error fetching projects: relation does not exist", appErr.PublicMessage())
}
