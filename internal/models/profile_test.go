package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestProfileUpdate_Changes_OnlySuppliedFields(t *testing.T) {
	upd := ProfileUpdate{
		NomeCompleto: strPtr("Ada"),
		Biografia:    strPtr("   "),
		Telefone:     nil,
	}

	changes := upd.Changes()

	assert.False(t, changes.Empty())
	assert.Equal(t, []ProfileField{{Column: ColumnFullName, Value: "Ada"}}, changes.Fields())
	assert.Equal(t, map[string]string{ColumnFullName: "Ada"}, changes.Map())
}

func TestProfileUpdate_Changes_AllEmpty(t *testing.T) {
	upd := ProfileUpdate{
		NomeCompleto: strPtr(""),
		Biografia:    strPtr(""),
		LinkedInURL:  strPtr(""),
		GitHubURL:    strPtr(""),
	}

	assert.True(t, upd.Changes().Empty())
	assert.Empty(t, upd.Links("user-1"))
}

func TestProfileChanges_SetOverwritesSameColumn(t *testing.T) {
	changes := &ProfileChanges{}
	changes.Set(ColumnBio, strPtr("first")).Set(ColumnBio, strPtr(" second "))

	assert.Equal(t, []ProfileField{{Column: ColumnBio, Value: " second "}}, changes.Fields())
}

func TestSupplied(t *testing.T) {
	tests := []struct {
		name      string
		value     *string
		want      string
		wantFound bool
	}{
		{name: "nil", value: nil},
		{name: "empty", value: strPtr("")},
		{name: "whitespace only", value: strPtr(" \t\n ")},
		{name: "plain", value: strPtr("Ada"), want: "Ada", wantFound: true},
		{name: "padded value kept as is", value: strPtr("  Ada  "), want: "  Ada  ", wantFound: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Supplied(tt.value)
			assert.Equal(t, tt.wantFound, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProfileUpdate_Links(t *testing.T) {
	upd := ProfileUpdate{
		LinkedInURL: strPtr("https://x.test/a"),
		GitHubURL:   strPtr("https://github.com/ada"),
	}

	assert.Equal(t, []SocialLink{
		{IDPerfil: "user-1", Plataforma: PlatformLinkedIn, URL: "https://x.test/a"},
		{IDPerfil: "user-1", Plataforma: PlatformGitHub, URL: "https://github.com/ada"},
	}, upd.Links("user-1"))

	onlyGitHub := ProfileUpdate{GitHubURL: strPtr("https://github.com/ada")}
	assert.Len(t, onlyGitHub.Links("user-1"), 1)
}

func TestFindLinkURL_FirstMatchWins(t *testing.T) {
	links := []SocialLink{
		{Plataforma: PlatformGitHub, URL: "https://github.com/first"},
		{Plataforma: PlatformGitHub, URL: "https://github.com/second"},
	}

	got := FindLinkURL(links, PlatformGitHub)
	if assert.NotNil(t, got) {
		assert.Equal(t, "https://github.com/first", *got)
	}
	assert.Nil(t, FindLinkURL(links, PlatformLinkedIn))
}
