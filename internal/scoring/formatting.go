package scoring

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/resume-scorer/internal/config"
	"github.com/jonathan/resume-scorer/internal/types"
)

var (
	emailPattern      = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phonePattern      = regexp.MustCompile(`(?:\+?\d{1,3}[\s.\-]?)?(?:\(\d{2,4}\)[\s.\-]?)?\d{3}[\s.\-]?\d{3,4}[\s.\-]?\d{0,4}`)
	profileURLPattern = regexp.MustCompile(`(?i)(?:linkedin\.com|github\.com|https?://)\S*`)
)

// scoreFormatting runs the four independent formatting checks. Each failed
// check removes an equal share of the parameter max. Checks that cannot be
// evaluated (missing metadata) pass neutrally with an explanatory detail.
func scoreFormatting(in Input, cfg *config.ScoringConfig) types.ParameterResult {
	res := types.ParameterResult{ID: "formatting", MaxScore: in.MaxScore}

	checks := []func(Input, *config.ScoringConfig, *types.ParameterResult) bool{
		checkBulletMarkers,
		checkFontReadability,
		checkHeaderCapitalization,
		checkHeaderFooterLeakage,
	}

	share := in.MaxScore / float64(len(checks))
	score := in.MaxScore
	for _, check := range checks {
		if !check(in, cfg, &res) {
			score -= share
		}
	}
	if score < 0 {
		score = 0
	}
	res.RawScore = score
	return res
}

// checkBulletMarkers flags resumes that mix more than one bullet marker
// style across experience bullets.
func checkBulletMarkers(in Input, _ *config.ScoringConfig, res *types.ParameterResult) bool {
	styles := make(map[string]bool)
	for _, bullet := range in.Resume.AllBullets() {
		marker := bulletMarkerPattern.FindString(bullet)
		marker = strings.TrimSpace(marker)
		if marker == "" {
			continue
		}
		if unicode.IsDigit(rune(marker[0])) {
			marker = "numbered"
		}
		styles[marker] = true
	}

	if len(styles) <= 1 {
		return true
	}
	res.Flagged = append(res.Flagged, types.FlaggedItem{
		Message: fmt.Sprintf("Bullets use %d different marker styles; pick one and apply it everywhere", len(styles)),
	})
	return false
}

// checkFontReadability applies the decorative-font deny-list (critical) and
// the distinct-font ceiling (warning).
func checkFontReadability(in Input, cfg *config.ScoringConfig, res *types.ParameterResult) bool {
	fonts := in.Resume.Metadata.Fonts
	if len(fonts) == 0 {
		res.Details = append(res.Details, "font readability not evaluated: no font metadata")
		return true
	}

	ok := true
	for _, font := range fonts {
		lower := strings.ToLower(font)
		for _, deny := range cfg.DecorativeFonts {
			if strings.Contains(lower, deny) {
				res.Flagged = append(res.Flagged, types.FlaggedItem{
					Message:  fmt.Sprintf("Decorative font %q is unreadable to most ATS parsers", font),
					Severity: types.SeverityCritical,
				})
				ok = false
			}
		}
	}

	distinct := make(map[string]bool)
	for _, font := range fonts {
		distinct[strings.ToLower(strings.TrimSpace(font))] = true
	}
	if len(distinct) > cfg.MaxFontCount {
		res.Flagged = append(res.Flagged, types.FlaggedItem{
			Message: fmt.Sprintf("%d different fonts used; limit the document to %d", len(distinct), cfg.MaxFontCount),
		})
		ok = false
	}
	return ok
}

// headerStyle classifies the capitalization style of a section header line.
func headerStyle(line string) string {
	trimmed := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line), ":"))
	switch {
	case trimmed == strings.ToUpper(trimmed):
		return "all-caps"
	case trimmed == strings.ToLower(trimmed):
		return "lowercase"
	default:
		return "title-case"
	}
}

// checkHeaderCapitalization flags resumes whose section headers mix
// ALL-CAPS, Title Case, and lowercase styles.
func checkHeaderCapitalization(in Input, cfg *config.ScoringConfig, res *types.ParameterResult) bool {
	raw := in.Resume.Metadata.RawText
	if strings.TrimSpace(raw) == "" {
		res.Details = append(res.Details, "header capitalization not evaluated: no raw text")
		return true
	}

	known := make(map[string]bool, len(cfg.SectionHeaders))
	for _, h := range cfg.SectionHeaders {
		known[strings.ToLower(h)] = true
	}

	styles := make(map[string]bool)
	for _, line := range strings.Split(raw, "\n") {
		normalized := strings.ToLower(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line), ":")))
		if known[normalized] {
			styles[headerStyle(line)] = true
		}
	}

	if len(styles) <= 1 {
		return true
	}
	res.Flagged = append(res.Flagged, types.FlaggedItem{
		Message: "Section headers mix capitalization styles; use one style consistently",
	})
	return false
}

// checkHeaderFooterLeakage flags contact details placed in the header or
// footer region, which many ATS parsers discard entirely.
func checkHeaderFooterLeakage(in Input, _ *config.ScoringConfig, res *types.ParameterResult) bool {
	regions := map[string]string{
		"header": in.Resume.Metadata.HeaderContent,
		"footer": in.Resume.Metadata.FooterContent,
	}

	ok := true
	for _, region := range []string{"header", "footer"} {
		content := regions[region]
		if strings.TrimSpace(content) == "" {
			continue
		}
		var kinds []string
		if emailPattern.MatchString(content) {
			kinds = append(kinds, "email address")
		}
		if profileURLPattern.MatchString(content) {
			kinds = append(kinds, "profile URL")
		}
		if len(kinds) == 0 && phonePattern.MatchString(content) {
			kinds = append(kinds, "phone number")
		}
		if len(kinds) == 0 {
			continue
		}
		res.Flagged = append(res.Flagged, types.FlaggedItem{
			Message:  fmt.Sprintf("Document %s contains a %s; ATS parsers frequently ignore %s regions", region, strings.Join(kinds, " and "), region),
			Severity: types.SeverityCritical,
		})
		ok = false
	}
	return ok
}
