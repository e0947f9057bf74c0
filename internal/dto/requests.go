package dto

import "github.com/ignatzorin/genesehub/internal/models"

// ProfileUpdateForm represents the profile edit form posted to /perfil/me/update.
// Every field is optional; a nil pointer means the field was not submitted.
type ProfileUpdateForm struct {
	NomeCompleto *string `form:"nome_completo"`
	Biografia    *string `form:"biografia"`
	Telefone     *string `form:"telefone"`
	LinkedInURL  *string `form:"linkedin_url"`
	GitHubURL    *string `form:"github_url"`
}

// ToModel converts the form into a service-level update.
func (f ProfileUpdateForm) ToModel() models.ProfileUpdate {
	return models.ProfileUpdate{
		NomeCompleto: f.NomeCompleto,
		Biografia:    f.Biografia,
		Telefone:     f.Telefone,
		LinkedInURL:  f.LinkedInURL,
		GitHubURL:    f.GitHubURL,
	}
}
