package services

import (
	"context"

	"github.com/hilquiasfmelo/advanced-forms/internal/models"
	"github.com/hilquiasfmelo/advanced-forms/internal/session"
)

// Uploader is the external storage collaborator that stores avatar
// files
type Uploader interface {
	Upload(ctx context.Context, fileName string, content []byte, contentType string) (string, error)
}

// FormServiceInterface defines the interface for form session operations
type FormServiceInterface interface {
	CreateSession() *session.FormSession
	GetSession(id string) (*session.FormSession, error)
	UpdateField(id, field, value string) (*session.FormSession, error)
	AppendTechEntry(id string) (*session.FormSession, error)
	Submit(ctx context.Context, id string, avatars []models.AvatarFile) (*models.ProfileSubmission, models.FieldErrors, error)
}
