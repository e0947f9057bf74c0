package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/genesehub/internal/models"
	"github.com/ignatzorin/genesehub/internal/pkg/apperror"
	"github.com/ignatzorin/genesehub/internal/repository/common"
)

// Имена таблиц в схеме Supabase.
const (
	TableProfiles    = "Perfis"
	TableSocialLinks = "Links_Sociais"
	TableProjects    = "Projetos"
)

var (
	profileColumns    = []string{"id", "nome_completo", "biografia", "foto_url", "telefone"}
	socialLinkColumns = []string{"id_perfil", "plataforma", "url"}
)

// ProfileRepository работает с таблицами "Perfis" и "Links_Sociais" напрямую через SQL.
type ProfileRepository struct {
	db *sqlx.DB
}

// NewProfileRepository создаёт экземпляр репозитория.
func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// GetProfile возвращает профиль или apperror.ErrProfileNotFound.
func (r *ProfileRepository) GetProfile(ctx context.Context, id string) (*models.Profile, error) {
	profile, err := common.GetByField[models.Profile](ctx, r.db, TableProfiles, profileColumns, "id", id, apperror.ErrProfileNotFound)
	if err != nil {
		return nil, fmt.Errorf("profile repository: %w", err)
	}
	return profile, nil
}

// ListSocialLinks возвращает все социальные ссылки профиля в порядке хранилища.
func (r *ProfileRepository) ListSocialLinks(ctx context.Context, profileID string) ([]models.SocialLink, error) {
	links, err := common.SelectByField[models.SocialLink](ctx, r.db, TableSocialLinks, socialLinkColumns, "id_perfil", profileID)
	if err != nil {
		return nil, fmt.Errorf("profile repository: %w", err)
	}
	return links, nil
}

// UpdateProfile применяет частичное обновление: в SET попадают только накопленные поля.
// Отсутствие строки профиля ошибкой не считается.
func (r *ProfileRepository) UpdateProfile(ctx context.Context, id string, changes *models.ProfileChanges) error {
	if changes == nil || changes.Empty() {
		return nil
	}

	fields := changes.Fields()
	sets := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields)+1)
	for _, f := range fields {
		sets = append(sets, common.Ident(f.Column)+" = ?")
		args = append(args, f.Value)
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?",
		common.Ident(TableProfiles), strings.Join(sets, ", "), common.Ident("id"))

	if _, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("profile repository: update profile: %w", err)
	}

	return nil
}

// UpsertSocialLinks вставляет или перезаписывает ссылки по ключу (id_perfil, plataforma).
func (r *ProfileRepository) UpsertSocialLinks(ctx context.Context, links []models.SocialLink) error {
	if len(links) == 0 {
		return nil
	}

	base := fmt.Sprintf("INSERT INTO %s (%s)", common.Ident(TableSocialLinks), common.Columns(socialLinkColumns...))
	onConflict := fmt.Sprintf("ON CONFLICT (%s, %s) DO UPDATE SET %s = EXCLUDED.%s",
		common.Ident("id_perfil"), common.Ident("plataforma"), common.Ident("url"), common.Ident("url"))

	err := common.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		inserter := common.NewBatchInserter(tx, base, onConflict, len(socialLinkColumns), len(links))
		for _, link := range links {
			if err := inserter.Add(ctx, link.IDPerfil, link.Plataforma, link.URL); err != nil {
				return err
			}
		}
		return inserter.Flush(ctx)
	})
	if err != nil {
		return fmt.Errorf("profile repository: upsert social links: %w", err)
	}

	return nil
}

// PingContext проверяет доступность базы.
func (r *ProfileRepository) PingContext(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
