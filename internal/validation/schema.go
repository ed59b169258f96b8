package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hilquiasfmelo/advanced-forms/internal/models"
)

const (
	// MaxAvatarBytes is the inclusive upper bound on avatar file size
	MaxAvatarBytes int64 = 5242880 // 5 MiB

	requiredEmailSuffix = "hotmail.com"
	minPasswordLength   = 6
	minTechEntries      = 2
	minKnowledge        = 1
	maxKnowledge        = 10
)

// validate is shared and concurrency-safe; only stateless rules are used
var validate = validator.New()

// Validate checks a raw submission against the profile schema and
// returns the normalized record. Every field is evaluated
// independently and all failures are collected; transforms (title-cased
// name, lower-cased email, coerced knowledge) apply only to fields that
// passed their own checks. The function is pure: the same input always
// yields the same result.
func Validate(input models.RawSubmission) (*models.ProfileSubmission, models.FieldErrors) {
	errs := models.FieldErrors{}

	avatar := validateAvatar(input.Avatars, errs)
	name := validateName(input.Name, errs)
	email := validateEmail(input.Email, errs)
	validatePassword(input.Password, errs)
	techs := validateTechs(input.Techs, errs)

	if len(errs) > 0 {
		return nil, errs
	}

	return &models.ProfileSubmission{
		Name:     name,
		Email:    email,
		Password: input.Password,
		Techs:    techs,
		Avatar:   *avatar,
	}, nil
}

func validateAvatar(avatars []models.AvatarFile, errs models.FieldErrors) *models.AvatarFile {
	if len(avatars) == 0 {
		errs["avatar"] = models.FieldError{
			Kind:    models.MissingFile,
			Message: "Avatar is required",
		}
		return nil
	}
	if len(avatars) > 1 {
		errs["avatar"] = models.FieldError{
			Kind:    models.InvalidFormat,
			Message: "Select exactly one avatar file",
		}
		return nil
	}

	avatar := avatars[0]
	if avatar.Size > MaxAvatarBytes {
		errs["avatar"] = models.FieldError{
			Kind:    models.FileTooLarge,
			Message: "Avatar must be 5MB or smaller",
		}
		return nil
	}

	return &avatar
}

func validateName(raw string, errs models.FieldErrors) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		errs["name"] = models.FieldError{
			Kind:    models.EmptyField,
			Message: "Name is required",
		}
		return ""
	}

	return titleCase(trimmed)
}

func validateEmail(raw string, errs models.FieldErrors) string {
	if strings.TrimSpace(raw) == "" {
		errs["email"] = models.FieldError{
			Kind:    models.EmptyField,
			Message: "Email is required",
		}
		return ""
	}

	if err := validate.Var(raw, "email"); err != nil {
		errs["email"] = models.FieldError{
			Kind:    models.InvalidFormat,
			Message: "Invalid email format",
		}
		return ""
	}

	email := strings.ToLower(raw)
	if !strings.HasSuffix(email, requiredEmailSuffix) {
		errs["email"] = models.FieldError{
			Kind:    models.DomainNotAllowed,
			Message: "Email must be a hotmail.com address",
		}
		return ""
	}

	return email
}

func validatePassword(raw string, errs models.FieldErrors) {
	if len(raw) < minPasswordLength {
		errs["password"] = models.FieldError{
			Kind:    models.TooShort,
			Message: fmt.Sprintf("Password must be at least %d characters", minPasswordLength),
		}
	}
}

func validateTechs(raw []models.RawTechEntry, errs models.FieldErrors) []models.TechEntry {
	if len(raw) < minTechEntries {
		// Per-entry checks are intentionally not reported when the
		// list itself is too small
		errs["techs"] = models.FieldError{
			Kind:    models.TooFewEntries,
			Message: fmt.Sprintf("Add at least %d technologies", minTechEntries),
		}
		return nil
	}

	techs := make([]models.TechEntry, 0, len(raw))
	for i, entry := range raw {
		valid := true

		if strings.TrimSpace(entry.Title) == "" {
			errs[fmt.Sprintf("techs[%d].title", i)] = models.FieldError{
				Kind:    models.EmptyField,
				Message: "Title is required",
			}
			valid = false
		}

		// inclusion test so NaN (which ParseFloat accepts) fails the
		// range check too
		knowledge, err := strconv.ParseFloat(strings.TrimSpace(entry.Knowledge), 64)
		if err != nil || !(knowledge >= minKnowledge && knowledge <= maxKnowledge) {
			errs[fmt.Sprintf("techs[%d].knowledge", i)] = models.FieldError{
				Kind:    models.OutOfRange,
				Message: fmt.Sprintf("Knowledge must be between %d and %d", minKnowledge, maxKnowledge),
			}
			valid = false
		}

		if valid {
			techs = append(techs, models.TechEntry{
				Title:     entry.Title,
				Knowledge: knowledge,
			})
		}
	}

	return techs
}

// titleCase upper-cases the first character of each space-separated
// word, leaving the remainder of the word unchanged
func titleCase(s string) string {
	words := strings.Split(s, " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		runes := []rune(word)
		words[i] = strings.ToUpper(string(runes[0])) + string(runes[1:])
	}
	return strings.Join(words, " ")
}
