// Package postgrest реализует хранилище портфолио поверх REST API Supabase (PostgREST).
package postgrest

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	supabase "github.com/supabase-community/postgrest-go"

	"github.com/ignatzorin/genesehub/internal/models"
	"github.com/ignatzorin/genesehub/internal/pkg/apperror"
)

const (
	restPath = "/rest/v1"
	schema   = "public"

	tableProfiles    = "Perfis"
	tableSocialLinks = "Links_Sociais"
	tableProjects    = "Projetos"

	profileColumns    = "id,nome_completo,biografia,foto_url,telefone"
	socialLinkColumns = "id_perfil,plataforma,url"
	projectColumns    = "id,titulo,tipo_midia"

	socialLinkConflict = "id_perfil,plataforma"
	returnMinimal      = "minimal"
)

// Client обращается к таблицам портфолио через postgrest-go.
type Client struct {
	rest *supabase.Client
}

// NewClient создаёт клиента для адреса проекта Supabase (SUPABASE_URL).
// transport, если задан, используется для всех запросов (таймауты, прокси).
func NewClient(supabaseURL, apiKey string, transport http.RoundTripper) (*Client, error) {
	rest := supabase.NewClient(strings.TrimRight(supabaseURL, "/")+restPath, schema, map[string]string{
		"apikey":        apiKey,
		"Authorization": "Bearer " + apiKey,
	})
	if rest.ClientError != nil {
		return nil, fmt.Errorf("postgrest: %w", rest.ClientError)
	}
	if transport != nil {
		rest.Transport.Parent = transport
	}

	return &Client{rest: rest}, nil
}

// GetProfile возвращает профиль или apperror.ErrProfileNotFound, если строки нет.
func (c *Client) GetProfile(ctx context.Context, id string) (*models.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rows []models.Profile
	if _, err := c.rest.From(tableProfiles).Select(profileColumns, "", false).Eq("id", id).ExecuteTo(&rows); err != nil {
		return nil, fmt.Errorf("postgrest: get profile: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("postgrest: get profile: %w", apperror.ErrProfileNotFound)
	}

	return &rows[0], nil
}

// ListSocialLinks возвращает ссылки профиля в порядке ответа PostgREST.
func (c *Client) ListSocialLinks(ctx context.Context, profileID string) ([]models.SocialLink, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	links := []models.SocialLink{}
	if _, err := c.rest.From(tableSocialLinks).Select(socialLinkColumns, "", false).Eq("id_perfil", profileID).ExecuteTo(&links); err != nil {
		return nil, fmt.Errorf("postgrest: list social links: %w", err)
	}

	return links, nil
}

// ListByAuthor возвращает проекты автора.
func (c *Client) ListByAuthor(ctx context.Context, authorID string) ([]models.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	projects := []models.Project{}
	if _, err := c.rest.From(tableProjects).Select(projectColumns, "", false).Eq("id_autor", authorID).ExecuteTo(&projects); err != nil {
		return nil, fmt.Errorf("postgrest: list projects: %w", err)
	}

	return projects, nil
}

// UpdateProfile отправляет PATCH только с накопленными полями.
func (c *Client) UpdateProfile(ctx context.Context, id string, changes *models.ProfileChanges) error {
	if changes == nil || changes.Empty() {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, _, err := c.rest.From(tableProfiles).Update(changes.Map(), returnMinimal, "").Eq("id", id).Execute(); err != nil {
		return fmt.Errorf("postgrest: update profile: %w", err)
	}

	return nil
}

// UpsertSocialLinks вставляет ссылки с merge-duplicates по ключу (id_perfil, plataforma).
func (c *Client) UpsertSocialLinks(ctx context.Context, links []models.SocialLink) error {
	if len(links) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, _, err := c.rest.From(tableSocialLinks).Upsert(links, socialLinkConflict, returnMinimal, "").Execute(); err != nil {
		return fmt.Errorf("postgrest: upsert social links: %w", err)
	}

	return nil
}

// PingContext проверяет, что REST API отвечает и ключ принят (HEAD по таблице профилей).
func (c *Client) PingContext(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, _, err := c.rest.From(tableProfiles).Select("id", "", true).Limit(1, "").Execute(); err != nil {
		return fmt.Errorf("postgrest: ping: %w", err)
	}
	return nil
}
