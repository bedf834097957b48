package scoring

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-scorer/internal/config"
	"github.com/jonathan/resume-scorer/internal/types"
)

var (
	tokenPattern = regexp.MustCompile(`[a-zA-Z0-9+#.]+`)
	// Leading bullet markers commonly left in parsed achievement text.
	bulletMarkerPattern = regexp.MustCompile(`^\s*(?:[•\-*‣▪]|\d+[.)])\s*`)
)

// tokenize splits text into lower-cased tokens, keeping characters that
// appear in real skill names (c++, c#, node.js).
func tokenize(text string) []string {
	raw := tokenPattern.FindAllString(text, -1)
	tokens := make([]string, 0, len(raw))
	for _, t := range raw {
		tokens = append(tokens, strings.ToLower(strings.Trim(t, ".")))
	}
	return tokens
}

// stripBulletMarker removes a leading list marker from a bullet line.
func stripBulletMarker(bullet string) string {
	return bulletMarkerPattern.ReplaceAllString(bullet, "")
}

// firstMeaningfulToken returns the first non-stop-word token of a bullet,
// lower-cased, or "" when the bullet holds nothing but stop words.
func firstMeaningfulToken(bullet string, cfg *config.ScoringConfig) string {
	for _, tok := range tokenize(stripBulletMarker(bullet)) {
		if !cfg.IsStopWord(tok) {
			return tok
		}
	}
	return ""
}

// resumeSearchText builds one lower-cased text blob covering everything a
// keyword could legitimately match against: raw document text plus the
// structured fields, in case the parser dropped the raw text.
func resumeSearchText(r *types.ResumeData) string {
	var sb strings.Builder
	sb.WriteString(strings.ToLower(r.Metadata.RawText))
	sb.WriteString("\n")
	for _, s := range r.Skills {
		sb.WriteString(strings.ToLower(s))
		sb.WriteString("\n")
	}
	for _, c := range r.Certifications {
		sb.WriteString(strings.ToLower(c))
		sb.WriteString("\n")
	}
	for i := range r.Experience {
		e := &r.Experience[i]
		sb.WriteString(strings.ToLower(e.Title))
		sb.WriteString("\n")
		sb.WriteString(strings.ToLower(e.Description))
		sb.WriteString("\n")
		for _, a := range e.Achievements {
			sb.WriteString(strings.ToLower(a))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// containsKeyword reports whether the resume text contains a keyword.
// Single-word keywords match on token identity; multi-word keywords match
// as a normalized substring.
func containsKeyword(searchText string, tokenSet map[string]bool, keyword string) bool {
	normalized := strings.ToLower(strings.TrimSpace(keyword))
	if normalized == "" {
		return false
	}
	if !strings.ContainsAny(normalized, " \t") {
		return tokenSet[normalized]
	}
	return strings.Contains(searchText, normalized)
}

// tokenSet builds a membership set from text tokens.
func tokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range tokenize(text) {
		set[tok] = true
	}
	return set
}
