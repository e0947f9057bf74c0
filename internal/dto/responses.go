package dto

import "github.com/ignatzorin/genesehub/internal/models"

// Placeholder card metrics. They are not stored anywhere yet.
const (
	DefaultMediaType  = "Geral"
	PlaceholderLikes  = 120
	PlaceholderViews  = 500
	PlaceholderRating = 4.8
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ProjectCard represents a project card in the profile gallery.
type ProjectCard struct {
	ID            int64   `json:"id"`
	Titulo        string  `json:"titulo"`
	TipoMidia     string  `json:"tipo_midia"`
	Curtidas      int     `json:"curtidas"`
	Visualizacoes int     `json:"visualizacoes"`
	NotaMedia     float64 `json:"nota_media"`
}

// NewProjectCards builds gallery cards, filling the media type default and placeholder metrics.
func NewProjectCards(projects []models.Project) []ProjectCard {
	cards := make([]ProjectCard, 0, len(projects))
	for _, p := range projects {
		mediaType := DefaultMediaType
		if v, ok := models.Supplied(p.TipoMidia); ok {
			mediaType = v
		}
		cards = append(cards, ProjectCard{
			ID:            p.ID,
			Titulo:        p.Titulo,
			TipoMidia:     mediaType,
			Curtidas:      PlaceholderLikes,
			Visualizacoes: PlaceholderViews,
			NotaMedia:     PlaceholderRating,
		})
	}
	return cards
}

// ProfilePage is the flattened profile used by the HTML templates.
type ProfilePage struct {
	ID           string
	Email        string
	NomeCompleto string
	Biografia    string
	FotoURL      string
	Telefone     string
	LinkedInURL  string
	GitHubURL    string
}

// NewProfilePage flattens a ProfileView; absent fields become empty strings.
func NewProfilePage(view *models.ProfileView) ProfilePage {
	return ProfilePage{
		ID:           view.ID,
		Email:        deref(view.Email),
		NomeCompleto: deref(view.NomeCompleto),
		Biografia:    deref(view.Biografia),
		FotoURL:      deref(view.FotoURL),
		Telefone:     deref(view.Telefone),
		LinkedInURL:  deref(view.LinkedInURL),
		GitHubURL:    deref(view.GitHubURL),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
