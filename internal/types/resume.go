// Package types provides type definitions for structured data used throughout the resume-scorer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// ContactInfo holds the contact section of a parsed resume.
// Every field is optional; absence is a scoring signal, not an error.
type ContactInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
}

// Experience represents one work experience entry.
type Experience struct {
	Title        string   `json:"title,omitempty"`
	Company      string   `json:"company,omitempty"`
	Location     string   `json:"location,omitempty"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
	Description  string   `json:"description,omitempty"`
}

// IsComplete reports whether the entry carries enough substance to count
// toward experience-depth minimums: title, company, both dates, and at
// least one of achievements/description.
func (e *Experience) IsComplete() bool {
	if strings.TrimSpace(e.Title) == "" || strings.TrimSpace(e.Company) == "" {
		return false
	}
	if strings.TrimSpace(e.StartDate) == "" || strings.TrimSpace(e.EndDate) == "" {
		return false
	}
	if strings.TrimSpace(e.Description) != "" {
		return true
	}
	for _, a := range e.Achievements {
		if strings.TrimSpace(a) != "" {
			return true
		}
	}
	return false
}

// Bullets returns the bullet-point lines of the entry: all achievements,
// or the description as a single bullet when no achievements exist.
func (e *Experience) Bullets() []string {
	var bullets []string
	for _, a := range e.Achievements {
		if strings.TrimSpace(a) != "" {
			bullets = append(bullets, a)
		}
	}
	if len(bullets) == 0 && strings.TrimSpace(e.Description) != "" {
		bullets = append(bullets, e.Description)
	}
	return bullets
}

// Education represents one education entry.
type Education struct {
	Degree         string `json:"degree,omitempty"`
	Institution    string `json:"institution,omitempty"`
	GraduationDate string `json:"graduation_date,omitempty"`
	GPA            string `json:"gpa,omitempty"`
}

// DocumentMetadata describes the physical document the resume data was
// parsed from. It is produced by the parsing collaborator; the engine only
// reads it.
type DocumentMetadata struct {
	PageCount     int      `json:"page_count"`
	WordCount     int      `json:"word_count"`
	FileFormat    string   `json:"file_format,omitempty"`
	Fonts         []string `json:"fonts,omitempty"`
	HasPhoto      bool     `json:"has_photo"`
	HeaderContent string   `json:"header_content,omitempty"`
	FooterContent string   `json:"footer_content,omitempty"`
	RawText       string   `json:"raw_text,omitempty"`
}

// ResumeData is the immutable structured input to a scoring pass.
type ResumeData struct {
	Contact        ContactInfo      `json:"contact"`
	Experience     []Experience     `json:"experience,omitempty"`
	Education      []Education      `json:"education,omitempty"`
	Skills         []string         `json:"skills,omitempty"`
	Certifications []string         `json:"certifications,omitempty"`
	Metadata       DocumentMetadata `json:"metadata"`
}

// AllBullets collects the bullet lines of every experience entry in order.
func (r *ResumeData) AllBullets() []string {
	var bullets []string
	for i := range r.Experience {
		bullets = append(bullets, r.Experience[i].Bullets()...)
	}
	return bullets
}

// CompleteExperienceCount returns the number of complete experience entries.
func (r *ResumeData) CompleteExperienceCount() int {
	count := 0
	for i := range r.Experience {
		if r.Experience[i].IsComplete() {
			count++
		}
	}
	return count
}

// Level is the candidate experience level used to select level-specific
// thresholds.
type Level string

// Recognized experience levels.
const (
	LevelBeginner     Level = "beginner"
	LevelIntermediary Level = "intermediary"
	LevelSenior       Level = "senior"
)

// ParseLevel normalizes a level string. Matching is case-insensitive;
// unrecognized or empty input falls back to intermediary.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(LevelBeginner):
		return LevelBeginner
	case string(LevelSenior):
		return LevelSenior
	default:
		return LevelIntermediary
	}
}

// Mode selects the scoring profile for a run.
type Mode string

// Scoring modes.
const (
	ModeATSSimulation Mode = "ats_simulation"
	ModeQualityCoach  Mode = "quality_coach"
)

// ParseMode normalizes a mode string. Unrecognized or empty input falls
// back to quality_coach, which has no required inputs.
func ParseMode(s string) Mode {
	if strings.ToLower(strings.TrimSpace(s)) == string(ModeATSSimulation) {
		return ModeATSSimulation
	}
	return ModeQualityCoach
}
