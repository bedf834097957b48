package types

import "github.com/go-playground/validator/v10"

// ScoreRequest is the payload for a stateless scoring call.
// Exactly one of JobDescription/JobDescriptionURL may be set; both empty is
// valid and degrades ats_simulation to quality_coach semantics.
type ScoreRequest struct {
	Resume            ResumeData `json:"resume" validate:"required"`
	Level             string     `json:"level,omitempty"`
	Mode              string     `json:"mode,omitempty"`
	JobDescription    string     `json:"job_description,omitempty"`
	JobDescriptionURL string     `json:"job_description_url,omitempty" validate:"omitempty,url"`
}

// SaveResumeRequest is the payload for persisting a parsed resume.
type SaveResumeRequest struct {
	Name   string     `json:"name" validate:"required,min=1,max=200"`
	Resume ResumeData `json:"resume" validate:"required"`
}

// RescoreRequest is the payload for rescoring a saved resume.
type RescoreRequest struct {
	Level             string `json:"level,omitempty"`
	Mode              string `json:"mode,omitempty"`
	JobDescription    string `json:"job_description,omitempty"`
	JobDescriptionURL string `json:"job_description_url,omitempty" validate:"omitempty,url"`
}

// Validate validates the ScoreRequest using the validator.
func (r *ScoreRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the SaveResumeRequest using the validator.
func (r *SaveResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the RescoreRequest using the validator.
func (r *RescoreRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
