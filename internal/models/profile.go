package models

// AvatarFile is a single file read from the submitted multipart form
type AvatarFile struct {
	FileName    string
	Size        int64
	ContentType string
	Content     []byte
}

// RawTechEntry is a technology entry as held by the form session,
// knowledge still in its raw text representation
type RawTechEntry struct {
	Title     string `json:"title"`
	Knowledge string `json:"knowledge"`
}

// RawSubmission is the full raw field state of one submit attempt.
// Built fresh from session values plus the uploaded file list on every
// submit; never persisted.
type RawSubmission struct {
	Name     string
	Email    string
	Password string
	Techs    []RawTechEntry
	Avatars  []AvatarFile
}

// TechEntry is a validated technology entry with coerced knowledge
type TechEntry struct {
	Title     string  `json:"title"`
	Knowledge float64 `json:"knowledge"`
}

// ProfileSubmission is a fully validated and normalized profile record.
// Name is title-cased, email lower-cased, techs coerced.
type ProfileSubmission struct {
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Password  string      `json:"-"`
	Techs     []TechEntry `json:"techs"`
	Avatar    AvatarFile  `json:"-"`
	AvatarURL string      `json:"avatarUrl,omitempty"`
}
