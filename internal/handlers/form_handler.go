package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hilquiasfmelo/advanced-forms/internal/models"
	"github.com/hilquiasfmelo/advanced-forms/internal/services"
	apperrors "github.com/hilquiasfmelo/advanced-forms/pkg/errors"
)

// FormHandler exposes the form session operations to the rendering
// surface
type FormHandler struct {
	service services.FormServiceInterface
}

// NewFormHandler creates a new form handler
func NewFormHandler(service services.FormServiceInterface) *FormHandler {
	return &FormHandler{service: service}
}

// CreateForm handles POST /api/v1/forms
func (h *FormHandler) CreateForm(c *gin.Context) {
	sess := h.service.CreateSession()
	c.JSON(http.StatusCreated, sess.State())
}

// GetForm handles GET /api/v1/forms/:id
func (h *FormHandler) GetForm(c *gin.Context) {
	sess, err := h.service.GetSession(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusNotFound, "Form session not found", err)
		return
	}

	c.JSON(http.StatusOK, sess.State())
}

// UpdateField handles POST /api/v1/forms/:id/fields
func (h *FormHandler) UpdateField(c *gin.Context) {
	var req models.UpdateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingErrors := ParseBindingErrors(err)
		respondErrorWithDetails(c, http.StatusBadRequest, "Validation failed", bindingErrors, err)
		return
	}

	sess, err := h.service.UpdateField(c.Param("id"), req.Field, req.Value)
	if err != nil {
		switch {
		case apperrors.Is(err, apperrors.ErrNotFound):
			respondError(c, http.StatusNotFound, "Form session not found", err)
		case apperrors.Is(err, apperrors.ErrInvalidInput):
			respondError(c, http.StatusBadRequest, "Unknown field", err)
		default:
			respondError(c, http.StatusInternalServerError, "Internal server error", err)
		}
		return
	}

	c.JSON(http.StatusOK, sess.State())
}

// AppendTechEntry handles POST /api/v1/forms/:id/techs
func (h *FormHandler) AppendTechEntry(c *gin.Context) {
	sess, err := h.service.AppendTechEntry(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusNotFound, "Form session not found", err)
		return
	}

	c.JSON(http.StatusOK, sess.State())
}

// Submit handles POST /api/v1/forms/:id/submit with a multipart body
// carrying the avatar file part(s) named "avatar"
func (h *FormHandler) Submit(c *gin.Context) {
	avatars, err := readAvatarFiles(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid multipart form", err)
		return
	}

	profile, fieldErrs, err := h.service.Submit(c.Request.Context(), c.Param("id"), avatars)
	if err != nil {
		switch {
		case apperrors.Is(err, apperrors.ErrNotFound):
			respondError(c, http.StatusNotFound, "Form session not found", err)
		case apperrors.Is(err, apperrors.ErrSubmissionInFlight):
			respondError(c, http.StatusConflict, "A submission is already in progress", err)
		case apperrors.Is(err, apperrors.ErrUploadFailed):
			attachError(c, err)
			c.JSON(http.StatusBadGateway, models.SubmitResponse{
				Success: false,
				Error:   "Avatar upload failed. Please try again.",
			})
		default:
			respondError(c, http.StatusInternalServerError, "Internal server error", err)
		}
		return
	}

	if fieldErrs != nil {
		c.JSON(http.StatusUnprocessableEntity, models.SubmitResponse{
			Success: false,
			Errors:  fieldErrs,
		})
		return
	}

	c.JSON(http.StatusOK, models.SubmitResponse{
		Success: true,
		Profile: profile,
	})
}

// readAvatarFiles collects the uploaded "avatar" parts. An absent part
// yields an empty list so the schema reports MissingFile instead of a
// transport error.
func readAvatarFiles(c *gin.Context) ([]models.AvatarFile, error) {
	form, err := c.MultipartForm()
	if err == http.ErrNotMultipart {
		// no file selected and the client sent a plain body; let the
		// schema report MissingFile
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	headers := form.File["avatar"]
	avatars := make([]models.AvatarFile, 0, len(headers))

	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			return nil, err
		}

		content, err := io.ReadAll(file)
		closeErr := file.Close()
		if err != nil {
			return nil, err
		}
		if closeErr != nil {
			return nil, closeErr
		}

		avatars = append(avatars, models.AvatarFile{
			FileName:    header.Filename,
			Size:        header.Size,
			ContentType: header.Header.Get("Content-Type"),
			Content:     content,
		})
	}

	return avatars, nil
}
