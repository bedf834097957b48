package scoring

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-scorer/internal/config"
	"github.com/jonathan/resume-scorer/internal/types"
)

// Date format families recognized by the consistency check.
var dateFormats = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{"numeric month/year", regexp.MustCompile(`^\d{1,2}/\d{4}$`)},
	{"iso year-month", regexp.MustCompile(`^\d{4}-\d{2}$`)},
	{"month name year", regexp.MustCompile(`^[A-Za-z]{3,9}\.? \d{4}$`)},
	{"year only", regexp.MustCompile(`^\d{4}$`)},
}

var openEndedDates = map[string]bool{
	"present": true,
	"current": true,
	"now":     true,
	"ongoing": true,
}

// classifyDateFormat returns the format family of a date string, "" for
// empty or open-ended markers, or "unrecognized" otherwise.
func classifyDateFormat(date string) string {
	trimmed := strings.TrimSpace(date)
	if trimmed == "" || openEndedDates[strings.ToLower(trimmed)] {
		return ""
	}
	for _, f := range dateFormats {
		if f.pattern.MatchString(trimmed) {
			return f.name
		}
	}
	return "unrecognized"
}

// scoreDateConsistency checks that all dates on the resume share one format
// family. One family scores full, two score half, more score zero.
// "Present"-style end dates never count against consistency.
func scoreDateConsistency(in Input, _ *config.ScoringConfig) types.ParameterResult {
	res := types.ParameterResult{ID: "date_consistency", MaxScore: in.MaxScore}

	var dates []string
	for i := range in.Resume.Experience {
		dates = append(dates, in.Resume.Experience[i].StartDate, in.Resume.Experience[i].EndDate)
	}
	for i := range in.Resume.Education {
		dates = append(dates, in.Resume.Education[i].GraduationDate)
	}

	families := make(map[string]bool)
	unrecognized := 0
	for _, d := range dates {
		switch family := classifyDateFormat(d); family {
		case "":
		case "unrecognized":
			unrecognized++
		default:
			families[family] = true
		}
	}

	if len(families) == 0 && unrecognized == 0 {
		res.RawScore = in.MaxScore
		res.Details = append(res.Details, "date consistency not evaluated: no dates present")
		return res
	}

	switch len(families) {
	case 0, 1:
		res.RawScore = in.MaxScore
	case 2:
		res.RawScore = in.MaxScore / 2
	default:
		res.RawScore = 0
	}

	if len(families) > 1 {
		names := make([]string, 0, len(families))
		for f := range families {
			names = append(names, f)
		}
		sort.Strings(names)
		res.Flagged = append(res.Flagged, types.FlaggedItem{
			Message: fmt.Sprintf("Dates mix %d formats (%s); use one format throughout", len(names), strings.Join(names, ", ")),
		})
	}
	if unrecognized > 0 {
		res.Details = append(res.Details, fmt.Sprintf("%d dates in unrecognized formats", unrecognized))
	}
	return res
}

// Formats ATS parsers handle reliably.
var parsableFormats = map[string]bool{
	"pdf":  true,
	"docx": true,
	"doc":  true,
}

// Image-derived formats no text-based ATS can read.
var imageFormats = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"tiff": true,
}

// scoreFileFormat awards full credit for ATS-parsable document formats and
// zero for image-derived ones. An embedded photo is flagged but does not
// change the score; photo handling varies too much between platforms to
// penalize numerically.
func scoreFileFormat(in Input, _ *config.ScoringConfig) types.ParameterResult {
	res := types.ParameterResult{ID: "file_format", MaxScore: in.MaxScore}

	format := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(in.Resume.Metadata.FileFormat), "."))
	switch {
	case format == "":
		res.RawScore = in.MaxScore
		res.Details = append(res.Details, "file format not evaluated: no format metadata")
	case parsableFormats[format]:
		res.RawScore = in.MaxScore
	case imageFormats[format]:
		res.RawScore = 0
		res.Flagged = append(res.Flagged, types.FlaggedItem{
			Message:  fmt.Sprintf("File format %q is an image; ATS parsers cannot extract text from it", format),
			Severity: types.SeverityCritical,
		})
	default:
		res.RawScore = 0
		res.Flagged = append(res.Flagged, types.FlaggedItem{
			Message:  fmt.Sprintf("File format %q is unlikely to survive ATS parsing; submit a PDF or DOCX", format),
			Severity: types.SeverityCritical,
		})
	}

	if in.Resume.Metadata.HasPhoto {
		res.Flagged = append(res.Flagged, types.FlaggedItem{
			Message: "Resume embeds a photo; many ATS platforms strip or reject images",
		})
	}
	return res
}
