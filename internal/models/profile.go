package models

import "strings"

// Колонки таблицы "Perfis", доступные для частичного обновления.
const (
	ColumnFullName = "nome_completo"
	ColumnBio      = "biografia"
	ColumnPhone    = "telefone"
)

// Платформы социальных ссылок.
const (
	PlatformLinkedIn = "LinkedIn"
	PlatformGitHub   = "GitHub"
)

// Profile описывает запись профиля в таблице "Perfis".
type Profile struct {
	ID           string  `db:"id" json:"id"`
	NomeCompleto *string `db:"nome_completo" json:"nome_completo,omitempty"`
	Biografia    *string `db:"biografia" json:"biografia,omitempty"`
	FotoURL      *string `db:"foto_url" json:"foto_url,omitempty"`
	Telefone     *string `db:"telefone" json:"telefone,omitempty"`
}

// SocialLink описывает строку "Links_Sociais"; пара (IDPerfil, Plataforma) уникальна.
type SocialLink struct {
	IDPerfil   string `db:"id_perfil" json:"id_perfil"`
	Plataforma string `db:"plataforma" json:"plataforma"`
	URL        string `db:"url" json:"url"`
}

// ProfileView объединяет профиль с его ссылками LinkedIn и GitHub.
type ProfileView struct {
	ID           string  `json:"id"`
	Email        *string `json:"email,omitempty"`
	NomeCompleto *string `json:"nome_completo,omitempty"`
	Biografia    *string `json:"biografia,omitempty"`
	FotoURL      *string `json:"foto_url,omitempty"`
	Telefone     *string `json:"telefone,omitempty"`
	LinkedInURL  *string `json:"linkedin_url,omitempty"`
	GitHubURL    *string `json:"github_url,omitempty"`
}

// FindLinkURL возвращает URL первой ссылки на платформе или nil.
func FindLinkURL(links []SocialLink, platform string) *string {
	for _, link := range links {
		if link.Plataforma == platform {
			url := link.URL
			return &url
		}
	}
	return nil
}

// ProfileUpdate содержит поля формы редактирования. nil означает «поле не передано».
type ProfileUpdate struct {
	NomeCompleto *string
	Biografia    *string
	Telefone     *string
	LinkedInURL  *string
	GitHubURL    *string
}

// ProfileField это пара колонка/значение частичного обновления.
type ProfileField struct {
	Column string
	Value  string
}

// ProfileChanges накапливает только реально переданные поля профиля.
// Пустые и отсутствующие значения пропускаются, поэтому существующие данные не затираются.
type ProfileChanges struct {
	fields []ProfileField
}

// Set добавляет поле, если значение передано и не пустое.
func (c *ProfileChanges) Set(column string, value *string) *ProfileChanges {
	v, ok := Supplied(value)
	if !ok {
		return c
	}
	for i := range c.fields {
		if c.fields[i].Column == column {
			c.fields[i].Value = v
			return c
		}
	}
	c.fields = append(c.fields, ProfileField{Column: column, Value: v})
	return c
}

// Fields возвращает накопленные поля в порядке добавления.
func (c *ProfileChanges) Fields() []ProfileField {
	out := make([]ProfileField, len(c.fields))
	copy(out, c.fields)
	return out
}

// Map возвращает изменения в виде колонка → значение.
func (c *ProfileChanges) Map() map[string]string {
	out := make(map[string]string, len(c.fields))
	for _, f := range c.fields {
		out[f.Column] = f.Value
	}
	return out
}

// Empty сообщает, что обновлять нечего.
func (c *ProfileChanges) Empty() bool {
	return len(c.fields) == 0
}

// Changes строит набор изменений профиля из формы.
func (u ProfileUpdate) Changes() *ProfileChanges {
	changes := &ProfileChanges{}
	changes.
		Set(ColumnFullName, u.NomeCompleto).
		Set(ColumnBio, u.Biografia).
		Set(ColumnPhone, u.Telefone)
	return changes
}

// Links строит строки социальных ссылок для платформ, по которым передан непустой URL.
func (u ProfileUpdate) Links(profileID string) []SocialLink {
	var links []SocialLink
	if url, ok := Supplied(u.LinkedInURL); ok {
		links = append(links, SocialLink{IDPerfil: profileID, Plataforma: PlatformLinkedIn, URL: url})
	}
	if url, ok := Supplied(u.GitHubURL); ok {
		links = append(links, SocialLink{IDPerfil: profileID, Plataforma: PlatformGitHub, URL: url})
	}
	return links
}

// Supplied сообщает, было ли значение реально передано. Пробелы учитываются
// только при проверке на пустоту, само значение возвращается как есть.
func Supplied(value *string) (string, bool) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return "", false
	}
	return *value, true
}
