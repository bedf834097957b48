package types

// JobKeywords holds the keyword sets extracted from a job description.
// Required keywords gate the ats_simulation auto-reject decision; preferred
// keywords only add score.
type JobKeywords struct {
	Required  []string `json:"required"`
	Preferred []string `json:"preferred,omitempty"`
}

// IsEmpty reports whether no keywords were extracted at all.
func (k *JobKeywords) IsEmpty() bool {
	return k == nil || (len(k.Required) == 0 && len(k.Preferred) == 0)
}
