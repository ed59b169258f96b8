package session

import (
	"regexp"
	"strconv"
	"sync"

	"github.com/hilquiasfmelo/advanced-forms/internal/models"
	apperrors "github.com/hilquiasfmelo/advanced-forms/pkg/errors"
)

// Status is the lifecycle state of a form session's current submit
// attempt. Idle is both initial and terminal between attempts.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusValidating Status = "validating"
	StatusUploading  Status = "uploading"
)

var techFieldPattern = regexp.MustCompile(`^techs\[(\d+)\]\.(title|knowledge)$`)

// FormSession holds the raw field values of one form screen, its
// ordered tech-entry list, and the error state of the last submit
// attempt. All mutation goes through UpdateField, AppendTechEntry, and
// the submit lifecycle methods; reads and writes are safe for
// concurrent HTTP handlers.
type FormSession struct {
	id string

	mu              sync.Mutex
	name            string
	email           string
	password        string
	techs           []models.RawTechEntry
	fieldErrors     models.FieldErrors
	submissionError string
	status          Status
}

// New creates a session with a single empty tech entry
func New(id string) *FormSession {
	return &FormSession{
		id:     id,
		techs:  []models.RawTechEntry{{Title: "", Knowledge: "0"}},
		status: StatusIdle,
	}
}

// ID returns the session identifier
func (s *FormSession) ID() string {
	return s.id
}

// UpdateField stores a raw field value. No validation runs here;
// previously shown errors stay in place until the next submit attempt
// is evaluated. Field is one of name, email, password, or an indexed
// tech path (techs[0].title, techs[0].knowledge).
func (s *FormSession) UpdateField(field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch field {
	case "name":
		s.name = value
		return nil
	case "email":
		s.email = value
		return nil
	case "password":
		s.password = value
		return nil
	}

	m := techFieldPattern.FindStringSubmatch(field)
	if m == nil {
		return apperrors.InvalidInputError(field, "unknown field")
	}

	idx, err := strconv.Atoi(m[1])
	if err != nil || idx >= len(s.techs) {
		return apperrors.InvalidInputError(field, "tech entry index out of range")
	}

	if m[2] == "title" {
		s.techs[idx].Title = value
	} else {
		s.techs[idx].Knowledge = value
	}
	return nil
}

// AppendTechEntry grows the tech list by one empty entry with zero
// knowledge. This is the only way the list grows; entries are never
// removed.
func (s *FormSession) AppendTechEntry() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.techs = append(s.techs, models.RawTechEntry{Title: "", Knowledge: "0"})
}

// Snapshot copies the current raw field state for a submit attempt.
// The avatar file list is filled in by the caller from the request.
func (s *FormSession) Snapshot() models.RawSubmission {
	s.mu.Lock()
	defer s.mu.Unlock()

	techs := make([]models.RawTechEntry, len(s.techs))
	copy(techs, s.techs)

	return models.RawSubmission{
		Name:     s.name,
		Email:    s.email,
		Password: s.password,
		Techs:    techs,
	}
}

// BeginSubmit moves the session into the validating state. A second
// submit while an attempt is still running is rejected so overlapping
// uploads cannot race each other.
func (s *FormSession) BeginSubmit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusIdle {
		return apperrors.ErrSubmissionInFlight
	}
	s.status = StatusValidating
	return nil
}

// MarkUploading records that validation passed and the upload call is
// in flight
func (s *FormSession) MarkUploading() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = StatusUploading
}

// FinishSubmit ends the current attempt. The error state is replaced
// wholesale: a successful attempt clears everything, a failed one
// carries exactly the errors of this run.
func (s *FormSession) FinishSubmit(fieldErrors models.FieldErrors, submissionError string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fieldErrors = fieldErrors
	s.submissionError = submissionError
	s.status = StatusIdle
}

// State is the session view handed to the rendering surface
type State struct {
	SessionID       string                `json:"sessionId"`
	Status          Status                `json:"status"`
	Name            string                `json:"name"`
	Email           string                `json:"email"`
	Techs           []models.RawTechEntry `json:"techs"`
	Errors          models.FieldErrors    `json:"errors,omitempty"`
	SubmissionError string                `json:"submissionError,omitempty"`
}

// State returns a consistent copy of the current session state. The
// password value is never echoed back.
func (s *FormSession) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	techs := make([]models.RawTechEntry, len(s.techs))
	copy(techs, s.techs)

	return State{
		SessionID:       s.id,
		Status:          s.status,
		Name:            s.name,
		Email:           s.email,
		Techs:           techs,
		Errors:          s.fieldErrors,
		SubmissionError: s.submissionError,
	}
}
