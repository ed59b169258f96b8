package services

import (
	"context"

	"github.com/hilquiasfmelo/advanced-forms/config"
	"github.com/hilquiasfmelo/advanced-forms/internal/models"
	"github.com/hilquiasfmelo/advanced-forms/internal/session"
	"github.com/hilquiasfmelo/advanced-forms/internal/validation"
	apperrors "github.com/hilquiasfmelo/advanced-forms/pkg/errors"
	"github.com/hilquiasfmelo/advanced-forms/pkg/logger"
	"github.com/hilquiasfmelo/advanced-forms/pkg/metrics"
	"github.com/hilquiasfmelo/advanced-forms/pkg/tracing"
	"go.uber.org/zap"
)

// FormService drives the form session lifecycle: field updates, tech
// entry growth, and the validate-then-upload submit flow
type FormService struct {
	store    *session.Store
	uploader Uploader
	config   *config.Config
}

// NewFormService creates a new form service instance
func NewFormService(store *session.Store, uploader Uploader, cfg *config.Config) *FormService {
	return &FormService{
		store:    store,
		uploader: uploader,
		config:   cfg,
	}
}

// CreateSession opens a fresh form session
func (s *FormService) CreateSession() *session.FormSession {
	sess := s.store.Create()
	logger.Info("Form session created", zap.String("session_id", sess.ID()))
	return sess
}

// GetSession returns a live session by ID
func (s *FormService) GetSession(id string) (*session.FormSession, error) {
	return s.store.Get(id)
}

// UpdateField stores a raw field value in the session
func (s *FormService) UpdateField(id, field, value string) (*session.FormSession, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}

	if err := sess.UpdateField(field, value); err != nil {
		return nil, err
	}
	return sess, nil
}

// AppendTechEntry grows the session's tech list by one empty entry
func (s *FormService) AppendTechEntry(id string) (*session.FormSession, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}

	sess.AppendTechEntry()
	return sess, nil
}

// Submit runs one submit attempt: snapshot the raw state, validate,
// and on success upload the avatar under its original file name.
// Validation failure is returned as a FieldErrors value, never as an
// error. Exactly one upload call happens per successful attempt.
func (s *FormService) Submit(ctx context.Context, id string, avatars []models.AvatarFile) (*models.ProfileSubmission, models.FieldErrors, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return nil, nil, err
	}

	if err := sess.BeginSubmit(); err != nil {
		metrics.FormSubmissions.WithLabelValues("rejected_in_flight").Inc()
		logger.Warn("Submit rejected: previous attempt still running",
			zap.String("session_id", id))
		return nil, nil, err
	}

	// Return the session to idle even if something panics below;
	// recovery middleware swallows the panic, and the in-flight guard
	// must not reject every later attempt with a wedged session.
	finished := false
	defer func() {
		if !finished {
			sess.FinishSubmit(nil, "Submission aborted unexpectedly. Please try again.")
		}
	}()

	ctx, span := tracing.StartSpan(ctx, "FormService.Submit")
	defer span.End()

	raw := sess.Snapshot()
	raw.Avatars = avatars

	profile, fieldErrs := validation.Validate(raw)
	if fieldErrs != nil {
		for field, fieldErr := range fieldErrs {
			metrics.ValidationFailures.WithLabelValues(metrics.FieldLabel(field), string(fieldErr.Kind)).Inc()
		}
		metrics.FormSubmissions.WithLabelValues("validation_failed").Inc()
		logger.Info("Submission rejected by validation",
			zap.String("session_id", id),
			zap.Int("field_errors", len(fieldErrs)))

		sess.FinishSubmit(fieldErrs, "")
		finished = true
		return nil, fieldErrs, nil
	}

	sess.MarkUploading()

	avatarURL, err := s.uploader.Upload(ctx, profile.Avatar.FileName, profile.Avatar.Content, profile.Avatar.ContentType)
	if err != nil {
		metrics.AvatarUploads.WithLabelValues("error").Inc()
		metrics.FormSubmissions.WithLabelValues("upload_failed").Inc()
		logger.Error("Failed to upload avatar",
			zap.Error(err),
			zap.String("session_id", id),
			zap.String("file_name", profile.Avatar.FileName))

		sess.FinishSubmit(nil, "Avatar upload failed. Please try again.")
		finished = true
		return nil, nil, apperrors.UploadFailedError(err)
	}

	profile.AvatarURL = avatarURL

	metrics.AvatarUploads.WithLabelValues("success").Inc()
	metrics.FormSubmissions.WithLabelValues("success").Inc()
	metrics.TechEntriesPerSubmission.Observe(float64(len(profile.Techs)))

	sess.FinishSubmit(nil, "")
	finished = true
	logger.Info("Profile submitted",
		zap.String("session_id", id),
		zap.String("email", profile.Email),
		zap.String("avatar_url", avatarURL))

	return profile, nil, nil
}
