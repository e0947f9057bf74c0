package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/genesehub/internal/logger"
	"github.com/ignatzorin/genesehub/internal/models"
	"github.com/ignatzorin/genesehub/internal/pkg/apperror"
)

// ProfileStore описывает взаимодействие сервиса с хранилищем профилей и социальных ссылок.
type ProfileStore interface {
	GetProfile(ctx context.Context, id string) (*models.Profile, error)
	ListSocialLinks(ctx context.Context, profileID string) ([]models.SocialLink, error)
	UpdateProfile(ctx context.Context, id string, changes *models.ProfileChanges) error
	UpsertSocialLinks(ctx context.Context, links []models.SocialLink) error
}

// ProfileService собирает профиль для чтения и применяет частичные обновления.
type ProfileService struct {
	store ProfileStore
	email string
}

// NewProfileService создаёт сервис. email показывается только для найденного профиля.
func NewProfileService(store ProfileStore, email string) *ProfileService {
	return &ProfileService{store: store, email: email}
}

// GetProfileView возвращает профиль вместе со ссылками LinkedIn и GitHub.
// Отсутствующий профиль не ошибка: возвращается вид только с ID.
func (s *ProfileService) GetProfileView(ctx context.Context, userID string) (*models.ProfileView, error) {
	profile, err := s.store.GetProfile(ctx, userID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return &models.ProfileView{ID: userID}, nil
		}
		return nil, apperror.Internal(err, "error fetching profile")
	}

	links, err := s.store.ListSocialLinks(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err, "error fetching profile")
	}

	view := &models.ProfileView{
		ID:           profile.ID,
		NomeCompleto: profile.NomeCompleto,
		Biografia:    profile.Biografia,
		FotoURL:      profile.FotoURL,
		Telefone:     profile.Telefone,
		LinkedInURL:  models.FindLinkURL(links, models.PlatformLinkedIn),
		GitHubURL:    models.FindLinkURL(links, models.PlatformGitHub),
	}
	if view.ID == "" {
		view.ID = userID
	}
	if s.email != "" {
		email := s.email
		view.Email = &email
	}

	return view, nil
}

// UpdateProfile обновляет переданные поля профиля, затем делает upsert ссылок.
// Шаги не атомарны: если upsert ссылок упал после обновления профиля, профиль уже изменён.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID string, upd models.ProfileUpdate) error {
	changes := upd.Changes()
	if !changes.Empty() {
		if err := s.store.UpdateProfile(ctx, userID, changes); err != nil {
			return apperror.Internal(err, "error saving profile")
		}
	}

	links := upd.Links(userID)
	if len(links) == 0 {
		return nil
	}

	if err := s.store.UpsertSocialLinks(ctx, links); err != nil {
		if !changes.Empty() {
			logger.Log.WithFields(logrus.Fields{
				"user_id": userID,
				"fields":  len(changes.Fields()),
				"links":   len(links),
			}).WithError(err).Warn("profile service: профиль обновлён, но ссылки не сохранены")
		}
		return apperror.Internal(err, "error saving profile")
	}

	return nil
}
