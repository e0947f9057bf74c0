package service

import (
	"context"

	"github.com/ignatzorin/genesehub/internal/models"
	"github.com/ignatzorin/genesehub/internal/pkg/apperror"
)

// ProjectStore описывает чтение проектов из хранилища.
type ProjectStore interface {
	ListByAuthor(ctx context.Context, authorID string) ([]models.Project, error)
}

// ProjectService возвращает проекты текущего пользователя.
type ProjectService struct {
	store ProjectStore
}

// NewProjectService создаёт сервис проектов.
func NewProjectService(store ProjectStore) *ProjectService {
	return &ProjectService{store: store}
}

// ListProjects возвращает проекты автора в порядке хранилища.
func (s *ProjectService) ListProjects(ctx context.Context, authorID string) ([]models.Project, error) {
	projects, err := s.store.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, apperror.Internal(err, "error fetching projects")
	}
	if projects == nil {
		projects = []models.Project{}
	}
	return projects, nil
}
