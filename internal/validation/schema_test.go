package validation

import (
	"fmt"
	"testing"

	"github.com/hilquiasfmelo/advanced-forms/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmission() models.RawSubmission {
	return models.RawSubmission{
		Name:     " ana maria ",
		Email:    "ANA@HOTMAIL.COM",
		Password: "123456",
		Techs: []models.RawTechEntry{
			{Title: "js", Knowledge: "5"},
			{Title: "ts", Knowledge: "8"},
		},
		Avatars: []models.AvatarFile{
			{FileName: "me.png", Size: 2 * 1024 * 1024, ContentType: "image/png"},
		},
	}
}

func TestValidate_Success(t *testing.T) {
	profile, errs := Validate(validSubmission())

	require.Nil(t, errs)
	require.NotNil(t, profile)
	assert.Equal(t, "Ana Maria", profile.Name)
	assert.Equal(t, "ana@hotmail.com", profile.Email)
	assert.Equal(t, "123456", profile.Password)
	require.Len(t, profile.Techs, 2)
	assert.Equal(t, "js", profile.Techs[0].Title)
	assert.Equal(t, float64(5), profile.Techs[0].Knowledge)
	assert.Equal(t, float64(8), profile.Techs[1].Knowledge)
	assert.Equal(t, "me.png", profile.Avatar.FileName)
}

func TestValidate_Idempotent(t *testing.T) {
	input := validSubmission()

	first, firstErrs := Validate(input)
	second, secondErrs := Validate(input)

	assert.Equal(t, first, second)
	assert.Equal(t, firstErrs, secondErrs)
}

func TestValidate_NamePreservesWordRemainder(t *testing.T) {
	input := validSubmission()
	input.Name = "ana mARIA"

	profile, errs := Validate(input)

	require.Nil(t, errs)
	assert.Equal(t, "Ana MARIA", profile.Name)
}

func TestValidate_DomainNotAllowed(t *testing.T) {
	input := validSubmission()
	input.Email = "ana@gmail.com"

	profile, errs := Validate(input)

	assert.Nil(t, profile)
	require.Contains(t, errs, "email")
	assert.Equal(t, models.DomainNotAllowed, errs["email"].Kind)
}

func TestValidate_EmailFormat(t *testing.T) {
	tests := []struct {
		name  string
		email string
		kind  models.ErrorKind
	}{
		{name: "blank", email: "", kind: models.EmptyField},
		{name: "not an email", email: "not-an-email", kind: models.InvalidFormat},
		{name: "wrong domain", email: "ana@outlook.com", kind: models.DomainNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validSubmission()
			input.Email = tt.email

			profile, errs := Validate(input)

			assert.Nil(t, profile)
			require.Contains(t, errs, "email")
			assert.Equal(t, tt.kind, errs["email"].Kind)
		})
	}
}

func TestValidate_AvatarBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		size    int64
		wantErr bool
	}{
		{name: "exactly at limit", size: 5242880, wantErr: false},
		{name: "one byte over", size: 5242881, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validSubmission()
			input.Avatars[0].Size = tt.size

			profile, errs := Validate(input)

			if tt.wantErr {
				assert.Nil(t, profile)
				require.Contains(t, errs, "avatar")
				assert.Equal(t, models.FileTooLarge, errs["avatar"].Kind)
			} else {
				assert.Nil(t, errs)
				require.NotNil(t, profile)
			}
		})
	}
}

func TestValidate_MissingAvatar(t *testing.T) {
	input := validSubmission()
	input.Avatars = nil

	profile, errs := Validate(input)

	assert.Nil(t, profile)
	require.Contains(t, errs, "avatar")
	assert.Equal(t, models.MissingFile, errs["avatar"].Kind)
}

func TestValidate_MultipleAvatars(t *testing.T) {
	input := validSubmission()
	input.Avatars = append(input.Avatars, models.AvatarFile{FileName: "other.png", Size: 100})

	profile, errs := Validate(input)

	assert.Nil(t, profile)
	require.Contains(t, errs, "avatar")
	assert.Equal(t, models.InvalidFormat, errs["avatar"].Kind)
}

func TestValidate_KnowledgeBoundaries(t *testing.T) {
	tests := []struct {
		knowledge string
		wantErr   bool
	}{
		{knowledge: "1", wantErr: false},
		{knowledge: "10", wantErr: false},
		{knowledge: "0", wantErr: true},
		{knowledge: "11", wantErr: true},
		{knowledge: "abc", wantErr: true},
		{knowledge: "", wantErr: true},
		{knowledge: "NaN", wantErr: true},
		{knowledge: "-Inf", wantErr: true},
		{knowledge: "+Inf", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("knowledge %q", tt.knowledge), func(t *testing.T) {
			input := validSubmission()
			input.Techs[0].Knowledge = tt.knowledge

			profile, errs := Validate(input)

			if tt.wantErr {
				assert.Nil(t, profile)
				require.Contains(t, errs, "techs[0].knowledge")
				assert.Equal(t, models.OutOfRange, errs["techs[0].knowledge"].Kind)
			} else {
				assert.Nil(t, errs)
				require.NotNil(t, profile)
			}
		})
	}
}

func TestValidate_TooFewTechs_SuppressesEntryChecks(t *testing.T) {
	input := validSubmission()
	// single entry that would also fail its per-entry checks
	input.Techs = []models.RawTechEntry{{Title: "", Knowledge: "99"}}

	profile, errs := Validate(input)

	assert.Nil(t, profile)
	require.Contains(t, errs, "techs")
	assert.Equal(t, models.TooFewEntries, errs["techs"].Kind)
	assert.NotContains(t, errs, "techs[0].title")
	assert.NotContains(t, errs, "techs[0].knowledge")
}

func TestValidate_IndependentFieldsAllReported(t *testing.T) {
	input := models.RawSubmission{
		Name:     "   ",
		Email:    "ana@gmail.com",
		Password: "123",
		Techs: []models.RawTechEntry{
			{Title: "js", Knowledge: "5"},
			{Title: "", Knowledge: "11"},
		},
	}

	profile, errs := Validate(input)

	assert.Nil(t, profile)
	assert.Equal(t, models.MissingFile, errs["avatar"].Kind)
	assert.Equal(t, models.EmptyField, errs["name"].Kind)
	assert.Equal(t, models.DomainNotAllowed, errs["email"].Kind)
	assert.Equal(t, models.TooShort, errs["password"].Kind)
	assert.Equal(t, models.EmptyField, errs["techs[1].title"].Kind)
	assert.Equal(t, models.OutOfRange, errs["techs[1].knowledge"].Kind)
	assert.Len(t, errs, 6)
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "ana maria", want: "Ana Maria"},
		{in: "ana", want: "Ana"},
		{in: "ana  maria", want: "Ana  Maria"},
		{in: "ana mARIA", want: "Ana MARIA"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, titleCase(tt.in))
		})
	}
}
