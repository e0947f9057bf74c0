package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/genesehub/internal/models"
	"github.com/ignatzorin/genesehub/internal/repository/common"
)

var projectColumns = []string{"id", "titulo", "tipo_midia"}

// ProjectRepository читает проекты из таблицы "Projetos".
type ProjectRepository struct {
	db *sqlx.DB
}

// NewProjectRepository создаёт экземпляр репозитория.
func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// ListByAuthor возвращает проекты автора в порядке хранилища.
func (r *ProjectRepository) ListByAuthor(ctx context.Context, authorID string) ([]models.Project, error) {
	projects, err := common.SelectByField[models.Project](ctx, r.db, TableProjects, projectColumns, "id_autor", authorID)
	if err != nil {
		return nil, fmt.Errorf("project repository: %w", err)
	}
	return projects, nil
}
