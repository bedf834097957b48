package parsing

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-scorer/internal/config"
	"github.com/jonathan/resume-scorer/internal/types"
)

var (
	requiredHeading  = regexp.MustCompile(`(?i)\b(required|requirements|must[- ]have|minimum qualifications|what you(?:'ll)? need)\b`)
	preferredHeading = regexp.MustCompile(`(?i)\b(preferred|nice[- ]to[- ]have|bonus|plus|desirable|preferred qualifications)\b`)
	bulletLine       = regexp.MustCompile(`^\s*(?:[•\-*‣▪]|\d+[.)])\s*`)
	tokenWords       = regexp.MustCompile(`[a-zA-Z0-9+#./]+`)
)

// maxFallbackKeywords caps frequency-based extraction when a job
// description has no recognizable section structure.
const maxFallbackKeywords = 20

// ExtractKeywords derives required and preferred keyword sets from raw
// job-description text. Lines under a required/preferred heading are split
// into phrases; when no headings exist, the most frequent meaningful tokens
// of the whole text become required keywords. Fully deterministic.
func ExtractKeywords(text string, cfg *config.ScoringConfig) *types.JobKeywords {
	if strings.TrimSpace(text) == "" {
		return &types.JobKeywords{}
	}

	var required, preferred []string
	section := ""
	sawSection := false

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if isHeading(trimmed) {
			switch {
			case requiredHeading.MatchString(trimmed):
				section = "required"
				sawSection = true
			case preferredHeading.MatchString(trimmed):
				section = "preferred"
				sawSection = true
			default:
				section = ""
			}
			continue
		}

		if section == "" {
			continue
		}
		phrases := splitPhrases(trimmed, cfg)
		if section == "required" {
			required = append(required, phrases...)
		} else {
			preferred = append(preferred, phrases...)
		}
	}

	if !sawSection {
		required = frequentTokens(text, cfg)
	}

	required = dedupe(required)
	preferred = dedupe(preferred)
	// A keyword already required should not also count as preferred.
	requiredSet := make(map[string]bool, len(required))
	for _, kw := range required {
		requiredSet[kw] = true
	}
	filtered := preferred[:0]
	for _, kw := range preferred {
		if !requiredSet[kw] {
			filtered = append(filtered, kw)
		}
	}

	return &types.JobKeywords{Required: required, Preferred: filtered}
}

// isHeading treats short lines ending in a colon, or short lines that match
// a section phrase on their own, as headings.
func isHeading(line string) bool {
	if len(line) > 60 {
		return false
	}
	if strings.HasSuffix(line, ":") {
		return true
	}
	return (requiredHeading.MatchString(line) || preferredHeading.MatchString(line)) &&
		len(strings.Fields(line)) <= 5
}

// splitPhrases breaks a requirement line into keyword phrases on commas,
// semicolons, and " and "/" or " conjunctions.
func splitPhrases(line string, cfg *config.ScoringConfig) []string {
	content := bulletLine.ReplaceAllString(line, "")
	content = strings.ReplaceAll(content, " and ", ",")
	content = strings.ReplaceAll(content, " or ", ",")

	var phrases []string
	for _, part := range strings.FieldsFunc(content, func(r rune) bool {
		return r == ',' || r == ';'
	}) {
		phrase := NormalizeKeyword(part)
		if !usablePhrase(phrase, cfg) {
			continue
		}
		phrases = append(phrases, phrase)
	}
	return phrases
}

// usablePhrase filters out noise: empty strings, bare stop words, prose
// fragments longer than four words, and single characters.
func usablePhrase(phrase string, cfg *config.ScoringConfig) bool {
	if len(phrase) < 2 || len(phrase) > 50 {
		return false
	}
	words := strings.Fields(phrase)
	if len(words) == 0 || len(words) > 4 {
		return false
	}
	for _, w := range words {
		if !cfg.IsStopWord(w) {
			return true
		}
	}
	return false
}

// frequentTokens is the fallback for unstructured job descriptions: the
// most frequent meaningful tokens, ordered by count then first occurrence.
func frequentTokens(text string, cfg *config.ScoringConfig) []string {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)

	pos := 0
	for _, raw := range tokenWords.FindAllString(text, -1) {
		tok := NormalizeKeyword(raw)
		if len(tok) < 3 || cfg.IsStopWord(tok) {
			continue
		}
		if _, seen := counts[tok]; !seen {
			firstSeen[tok] = pos
		}
		counts[tok]++
		pos++
	}

	var candidates []string
	for tok, n := range counts {
		if n >= 2 {
			candidates = append(candidates, tok)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if counts[candidates[i]] != counts[candidates[j]] {
			return counts[candidates[i]] > counts[candidates[j]]
		}
		return firstSeen[candidates[i]] < firstSeen[candidates[j]]
	})

	if len(candidates) > maxFallbackKeywords {
		candidates = candidates[:maxFallbackKeywords]
	}
	return candidates
}

// dedupe removes duplicates preserving first-occurrence order.
func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, item := range items {
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}
