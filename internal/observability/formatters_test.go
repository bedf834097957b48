package observability

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-scorer/internal/types"
)

func TestPrintScoreResultNil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintScoreResult(nil)
	assert.Empty(t, buf.String())
}

func TestPrintScoreResultSummaryAndBreakdown(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintScoreResult(&types.ScoreResult{
		OverallScore: 82.5,
		Mode:         types.ModeQualityCoach,
		Breakdown: map[string]types.CategoryBreakdown{
			"contact":    {Score: 20, MaxScore: 25},
			"formatting": {Score: 25, MaxScore: 25},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "SCORE SUMMARY")
	assert.Contains(t, out, "Overall:  82.5 / 100")
	assert.Contains(t, out, "quality_coach")
	assert.Contains(t, out, "CATEGORY BREAKDOWN")
	assert.Contains(t, out, "contact")
	assert.Contains(t, out, "formatting")
	assert.NotContains(t, out, "AUTO-REJECT")
	assert.NotContains(t, out, "PASS PROBABILITY")
	assert.NotContains(t, out, "ISSUES")
}

func TestPrintScoreResultAutoReject(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintScoreResult(&types.ScoreResult{
		OverallScore: 35,
		Mode:         types.ModeATSSimulation,
		AutoReject:   true,
	})

	assert.Contains(t, buf.String(), "AUTO-REJECT")
}

func TestPrintScoreResultIssuesCapped(t *testing.T) {
	issues := types.IssueList{}
	for i := 0; i < 7; i++ {
		issues.Warnings = append(issues.Warnings, types.Issue{
			ParameterID: "repetition",
			Severity:    types.SeverityWarning,
			Message:     fmt.Sprintf("warning number %d", i),
		})
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintScoreResult(&types.ScoreResult{Issues: issues})

	out := buf.String()
	assert.Contains(t, out, "Warnings:")
	assert.Contains(t, out, "warning number 4")
	assert.NotContains(t, out, "warning number 5")
	assert.Contains(t, out, "... and 2 more")
}

func TestPrintScoreResultKeywordsAndProbability(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintScoreResult(&types.ScoreResult{
		Mode: types.ModeATSSimulation,
		KeywordDetails: &types.KeywordDetails{
			RequiredMatchPercent:  75,
			PreferredMatchPercent: 50,
			MissingRequired:       []string{"terraform"},
		},
		PassProbability: &types.PassProbability{
			Overall:    68,
			Confidence: "moderate",
			Color:      "yellow",
			Platforms: []types.PlatformProbability{
				{Platform: "Greenhouse", Probability: 72},
			},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "KEYWORD COVERAGE")
	assert.Contains(t, out, "Required matched:  75%")
	assert.Contains(t, out, "terraform")
	assert.Contains(t, out, "PASS PROBABILITY")
	assert.Contains(t, out, "Greenhouse")
	assert.Contains(t, out, "moderate, yellow")
}

func TestPrintBoxTruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).printBox("TITLE", strings.Repeat("x", 200))

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
	assert.Contains(t, buf.String(), "...")
}
