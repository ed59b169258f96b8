package models

// UpdateFieldRequest mutates a single raw field value in a form session.
// Field accepts name, email, password, or an indexed tech path such as
// techs[0].title.
type UpdateFieldRequest struct {
	Field string `json:"field" binding:"required,max=100"`
	Value string `json:"value" binding:"max=10000"`
}

// SubmitResponse is returned by the submit endpoint
type SubmitResponse struct {
	Success bool               `json:"success"`
	Profile *ProfileSubmission `json:"profile,omitempty"`
	Errors  FieldErrors        `json:"errors,omitempty"`
	Error   string             `json:"error,omitempty"`
}
