package scoring

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-scorer/internal/config"
	"github.com/jonathan/resume-scorer/internal/types"
)

func testConfig(t *testing.T) *config.ScoringConfig {
	t.Helper()
	cfg, err := config.DefaultScoringConfig()
	require.NoError(t, err)
	return cfg
}

func testEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine(testConfig(t), nil)
	require.NoError(t, err)
	return engine
}

// strongResume builds a resume that scores well across every parameter.
func strongResume() *types.ResumeData {
	return &types.ResumeData{
		Contact: types.ContactInfo{
			Name:     "Jordan Reyes",
			Email:    "jordan.reyes@example.com",
			Phone:    "555-867-5309",
			Location: "Austin, TX",
			LinkedIn: "linkedin.com/in/jordanreyes",
			Website:  "jordanreyes.dev",
		},
		Experience: []types.Experience{
			{
				Title: "Staff Engineer", Company: "Acme", StartDate: "Jan 2021", EndDate: "Present",
				Achievements: []string{
					"Led migration of 40 services to Kubernetes, cutting deploy time 70%",
					"Reduced infrastructure spend by $250K per year",
				},
			},
			{
				Title: "Senior Engineer", Company: "Globex", StartDate: "Mar 2018", EndDate: "Dec 2020",
				Achievements: []string{
					"Designed event pipeline handling 2M messages per day",
					"Mentored 6 engineers through promotion cycles",
				},
			},
			{
				Title: "Engineer", Company: "Initech", StartDate: "Jun 2015", EndDate: "Feb 2018",
				Achievements: []string{
					"Built CI system that cut build times by 55%",
					"Automated release process, saving 10 hours per week",
				},
			},
			{
				Title: "Junior Engineer", Company: "Umbrella", StartDate: "Jul 2013", EndDate: "May 2015",
				Achievements: []string{
					"Shipped customer dashboard used by 5,000 accounts",
				},
			},
		},
		Education: []types.Education{
			{Degree: "BS Computer Science", Institution: "UT Austin", GraduationDate: "May 2013"},
		},
		Skills: []string{
			"go", "kubernetes", "terraform", "postgresql", "aws",
			"docker", "grpc", "python", "kafka", "redis",
		},
		Metadata: types.DocumentMetadata{
			PageCount:  2,
			WordCount:  1000,
			FileFormat: "pdf",
			Fonts:      []string{"Calibri"},
		},
	}
}

func TestScoreNilResume(t *testing.T) {
	engine := testEngine(t)
	_, err := engine.Score(context.Background(), Request{})
	assert.Error(t, err)
}

func TestScoreIdempotent(t *testing.T) {
	engine := testEngine(t)
	req := Request{
		Resume: strongResume(),
		Level:  types.LevelSenior,
		Mode:   types.ModeATSSimulation,
		Keywords: &types.JobKeywords{
			Required:  []string{"go", "kubernetes", "terraform"},
			Preferred: []string{"kafka", "rust"},
		},
	}

	first, err := engine.Score(context.Background(), req)
	require.NoError(t, err)
	second, err := engine.Score(context.Background(), req)
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(firstJSON), string(secondJSON))
}

func TestScoreOverallBounds(t *testing.T) {
	engine := testEngine(t)

	empty, err := engine.Score(context.Background(), Request{Resume: &types.ResumeData{}})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, empty.OverallScore, 0.0)
	assert.LessOrEqual(t, empty.OverallScore, 100.0)

	strong, err := engine.Score(context.Background(), Request{
		Resume: strongResume(),
		Level:  types.LevelSenior,
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, strong.OverallScore, 100.0)
	assert.Greater(t, strong.OverallScore, empty.OverallScore)
}

func TestScoreATSWithoutJobDegrades(t *testing.T) {
	engine := testEngine(t)

	result, err := engine.Score(context.Background(), Request{
		Resume: strongResume(),
		Level:  types.LevelSenior,
		Mode:   types.ModeATSSimulation,
	})
	require.NoError(t, err)

	assert.Equal(t, types.ModeQualityCoach, result.Mode)
	assert.False(t, result.AutoReject)
	assert.Nil(t, result.KeywordDetails)
	assert.Nil(t, result.PassProbability)

	found := false
	for _, issue := range result.Issues.Info {
		if issue.ParameterID == "mode" {
			found = true
		}
	}
	assert.True(t, found, "expected an info note about the mode change")
}

func TestScoreAutoRejectBelowFloor(t *testing.T) {
	engine := testEngine(t)

	// The resume matches 2 of 5 required keywords (40%), below the 60%
	// floor. A strong resume everywhere else must still be rejected.
	result, err := engine.Score(context.Background(), Request{
		Resume: strongResume(),
		Level:  types.LevelSenior,
		Mode:   types.ModeATSSimulation,
		Keywords: &types.JobKeywords{
			Required: []string{"go", "kubernetes", "scala", "spark", "hadoop"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, types.ModeATSSimulation, result.Mode)
	require.NotNil(t, result.KeywordDetails)
	assert.InDelta(t, 40.0, result.KeywordDetails.RequiredMatchPercent, 0.01)
	assert.True(t, result.AutoReject)
	assert.Greater(t, result.OverallScore, 0.0)
}

func TestScoreNoAutoRejectAtFloor(t *testing.T) {
	engine := testEngine(t)

	// Exactly 60% coverage (3 of 5) sits on the floor and passes.
	result, err := engine.Score(context.Background(), Request{
		Resume: strongResume(),
		Level:  types.LevelSenior,
		Mode:   types.ModeATSSimulation,
		Keywords: &types.JobKeywords{
			Required: []string{"go", "kubernetes", "terraform", "spark", "hadoop"},
		},
	})
	require.NoError(t, err)

	require.NotNil(t, result.KeywordDetails)
	assert.InDelta(t, 60.0, result.KeywordDetails.RequiredMatchPercent, 0.01)
	assert.False(t, result.AutoReject)
}

func TestScoreFullKeywordMatch(t *testing.T) {
	engine := testEngine(t)

	result, err := engine.Score(context.Background(), Request{
		Resume: strongResume(),
		Level:  types.LevelSenior,
		Mode:   types.ModeATSSimulation,
		Keywords: &types.JobKeywords{
			Required:  []string{"go", "kubernetes"},
			Preferred: []string{"kafka"},
		},
	})
	require.NoError(t, err)

	assert.False(t, result.AutoReject)
	require.NotNil(t, result.KeywordDetails)
	assert.InDelta(t, 100.0, result.KeywordDetails.RequiredMatchPercent, 0.01)
	require.NotNil(t, result.PassProbability)
	assert.Len(t, result.PassProbability.Platforms, 5)
}

func TestScoreConfidenceTracksKeywordCoverage(t *testing.T) {
	engine := testEngine(t)

	// No required keyword matches; only formatting and the empty
	// preferred list carry measured points, so confidence must not
	// report "high" on the strength of contact info alone.
	result, err := engine.Score(context.Background(), Request{
		Resume: strongResume(),
		Level:  types.LevelSenior,
		Mode:   types.ModeATSSimulation,
		Keywords: &types.JobKeywords{
			Required: []string{"cobol", "fortran", "pascal"},
		},
	})
	require.NoError(t, err)

	require.NotNil(t, result.KeywordDetails)
	assert.InDelta(t, 0.0, result.KeywordDetails.RequiredMatchPercent, 0.01)
	require.NotNil(t, result.PassProbability)
	assert.Equal(t, "moderate", result.PassProbability.Confidence)

	// Full required coverage restores high confidence.
	full, err := engine.Score(context.Background(), Request{
		Resume:   strongResume(),
		Level:    types.LevelSenior,
		Mode:     types.ModeATSSimulation,
		Keywords: &types.JobKeywords{Required: []string{"go", "kubernetes"}},
	})
	require.NoError(t, err)
	require.NotNil(t, full.PassProbability)
	assert.Equal(t, "high", full.PassProbability.Confidence)
}

func TestScoreBreakdownMatchesProfile(t *testing.T) {
	engine := testEngine(t)

	result, err := engine.Score(context.Background(), Request{
		Resume: strongResume(),
		Level:  types.LevelSenior,
	})
	require.NoError(t, err)

	require.Len(t, result.Breakdown, 4)
	for _, name := range []string{"contact", "formatting", "content", "length"} {
		cb, ok := result.Breakdown[name]
		require.True(t, ok, "missing category %s", name)
		assert.InDelta(t, 25.0, cb.MaxScore, 0.01)
		assert.GreaterOrEqual(t, cb.Score, 0.0)
		assert.LessOrEqual(t, cb.Score, cb.MaxScore)
	}
}

func TestNewEngineRejectsUnknownParameter(t *testing.T) {
	cfg := testConfig(t)
	profile := cfg.Modes["quality_coach"]
	profile.Categories[0].Parameters = append(profile.Categories[0].Parameters,
		config.ParameterWeight{ID: "does_not_exist", MaxScore: 5})
	cfg.Modes["quality_coach"] = profile

	_, err := NewEngine(cfg, nil)
	assert.Error(t, err)
}
