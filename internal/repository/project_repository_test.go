package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/genesehub/internal/db/dbtest"
)

func TestProjectRepository_ListByAuthor_FiltersByAuthor(t *testing.T) {
	conn := dbtest.Open(t)
	dbtest.Exec(t, conn, `INSERT INTO "Projetos" (id, titulo, tipo_midia, id_autor) VALUES (?, ?, ?, ?)`, 1, "Curta-metragem", "Vídeo", "user-1")
	dbtest.Exec(t, conn, `INSERT INTO "Projetos" (id, titulo, tipo_midia, id_autor) VALUES (?, ?, ?, ?)`, 2, "Projeto alheio", "Foto", "user-2")
	dbtest.Exec(t, conn, `INSERT INTO "Projetos" (id, titulo, id_autor) VALUES (?, ?, ?)`, 3, "Sem tipo", "user-1")
	repo := NewProjectRepository(conn)

	projects, err := repo.ListByAuthor(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, projects, 2)

	ids := []int64{projects[0].ID, projects[1].ID}
	assert.ElementsMatch(t, []int64{1, 3}, ids)
	for _, p := range projects {
		assert.NotEqual(t, "Projeto alheio", p.Titulo)
		if p.ID == 3 {
			assert.Nil(t, p.TipoMidia)
		}
	}
}

func TestProjectRepository_ListByAuthor_Empty(t *testing.T) {
	repo := NewProjectRepository(dbtest.Open(t))

	projects, err := repo.ListByAuthor(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Empty(t, projects)
}
