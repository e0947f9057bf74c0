package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/ignatzorin/genesehub/internal/dto"
	"github.com/ignatzorin/genesehub/internal/http/handlers/common"
	"github.com/ignatzorin/genesehub/internal/models"
	"github.com/ignatzorin/genesehub/internal/pkg/apperror"
)

// ProfilePath: сюда возвращается пользователь после сохранения.
const ProfilePath = "/profile"

// ProfileService читает и обновляет профиль текущего пользователя.
type ProfileService interface {
	GetProfileView(ctx context.Context, userID string) (*models.ProfileView, error)
	UpdateProfile(ctx context.Context, userID string, upd models.ProfileUpdate) error
}

// ProjectService возвращает проекты автора.
type ProjectService interface {
	ListProjects(ctx context.Context, authorID string) ([]models.Project, error)
}

// ProfileHandler отвечает за работу с профилем.
type ProfileHandler struct {
	profiles ProfileService
	projects ProjectService
}

// NewProfileHandler создаёт экземпляр.
func NewProfileHandler(profiles ProfileService, projects ProjectService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, projects: projects}
}

// GetMe обрабатывает GET /perfil/me/dados: профиль текущего пользователя в JSON.
func (h *ProfileHandler) GetMe(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.Fail(c, err)
		return
	}

	view, err := h.profiles.GetProfileView(c.Request.Context(), userID)
	if err != nil {
		common.Fail(c, err)
		return
	}

	common.RespondJSON(c, http.StatusOK, view)
}

// ListMyProjects обрабатывает GET /perfil/me/projetos: карточки проектов в JSON.
func (h *ProfileHandler) ListMyProjects(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.Fail(c, err)
		return
	}

	projects, err := h.projects.ListProjects(c.Request.Context(), userID)
	if err != nil {
		common.Fail(c, err)
		return
	}

	common.RespondJSON(c, http.StatusOK, dto.NewProjectCards(projects))
}

// ShowProfile обрабатывает GET /profile.
func (h *ProfileHandler) ShowProfile(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.Fail(c, err)
		return
	}

	ctx := c.Request.Context()
	view, err := h.profiles.GetProfileView(ctx, userID)
	if err != nil {
		common.Fail(c, err)
		return
	}

	projects, err := h.projects.ListProjects(ctx, userID)
	if err != nil {
		common.Fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "profile.html", gin.H{
		"perfil_data": dto.NewProfilePage(view),
		"projetos":    dto.NewProjectCards(projects),
	})
}

// ShowProfileEdit обрабатывает GET /profile/edit: форма, заполненная текущими значениями.
func (h *ProfileHandler) ShowProfileEdit(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.Fail(c, err)
		return
	}

	view, err := h.profiles.GetProfileView(c.Request.Context(), userID)
	if err != nil {
		common.Fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "profile_edit.html", gin.H{
		"perfil_data": dto.NewProfilePage(view),
	})
}

// UpdateMe обрабатывает POST /perfil/me/update и перенаправляет на /profile (303).
func (h *ProfileHandler) UpdateMe(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.Fail(c, err)
		return
	}

	// Форма редактирования шлёт только urlencoded или multipart.
	switch c.ContentType() {
	case binding.MIMEPOSTForm, binding.MIMEMultipartPOSTForm:
	default:
		common.Fail(c, apperror.New(apperror.ErrCodeBadRequest, "form content type required"))
		return
	}

	var form dto.ProfileUpdateForm
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		common.Fail(c, apperror.Wrap(err, apperror.ErrCodeBadRequest, "invalid form"))
		return
	}

	if err := h.profiles.UpdateProfile(c.Request.Context(), userID, form.ToModel()); err != nil {
		common.Fail(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, ProfilePath)
}
