package scoring

import (
	"fmt"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-scorer/internal/types"
)

func resumeWithBullets(bullets ...string) *types.ResumeData {
	return &types.ResumeData{
		Experience: []types.Experience{
			{Title: "Engineer", Company: "Acme", StartDate: "2020", EndDate: "2023", Achievements: bullets},
		},
	}
}

func TestRepetitionExactlyTwiceNotPenalized(t *testing.T) {
	cfg := testConfig(t)
	in := Input{Resume: resumeWithBullets(
		"Developed payment service",
		"Developed billing pipeline",
		"Implemented fraud checks",
	)}

	res := scoreRepetition(in, cfg)
	assert.Equal(t, 0.0, res.RawScore)
	assert.Empty(t, res.Flagged)
}

func TestRepetitionThreeTimesPenalized(t *testing.T) {
	cfg := testConfig(t)
	in := Input{Resume: resumeWithBullets(
		"Developed payment service",
		"Developed billing pipeline",
		"Developed fraud checks",
		"Implemented audit logging",
	)}

	res := scoreRepetition(in, cfg)
	assert.Equal(t, -1.0, res.RawScore)
	require.Len(t, res.Flagged, 1)
	assert.Contains(t, res.Flagged[0].Message, `"developed"`)
	require.Len(t, res.Details, 1)
	assert.Contains(t, res.Details[0], "developed")
	assert.NotContains(t, res.Details[0], "implemented")
}

func TestRepetitionPenaltyCapped(t *testing.T) {
	cfg := testConfig(t)

	// Seven distinct verbs each opening three bullets would cost -7
	// uncapped; the penalty floors at the configured cap of 5.
	verbs := []string{"developed", "managed", "created", "built", "designed", "improved", "launched"}
	var bullets []string
	for _, v := range verbs {
		for i := 0; i < 3; i++ {
			bullets = append(bullets, fmt.Sprintf("%s project %d", v, i))
		}
	}

	res := scoreRepetition(Input{Resume: resumeWithBullets(bullets...)}, cfg)
	assert.Equal(t, -5.0, res.RawScore)
	assert.Len(t, res.Flagged, len(verbs))
}

func TestRepetitionSkipsStopWords(t *testing.T) {
	cfg := testConfig(t)

	// "The" is a stop word; the counted opener is "developed".
	in := Input{Resume: resumeWithBullets(
		"The developed solution shipped early",
		"Developed monitoring stack",
		"developed deployment tooling",
	)}

	res := scoreRepetition(in, cfg)
	assert.Equal(t, -1.0, res.RawScore)
}

func TestActionVerbsAllStrong(t *testing.T) {
	cfg := testConfig(t)
	in := Input{MaxScore: 10, Resume: resumeWithBullets(
		"Led platform migration",
		"Built deployment pipeline",
		"Reduced latency by 30%",
	)}

	res := scoreActionVerbs(in, cfg)
	assert.Equal(t, 10.0, res.RawScore)
	assert.Empty(t, res.Flagged)
}

func TestActionVerbsScalesBelowTarget(t *testing.T) {
	cfg := testConfig(t)

	// 1 of 2 strong is a 0.5 ratio against the 0.7 target.
	in := Input{MaxScore: 10, Resume: resumeWithBullets(
		"Led platform migration",
		"Responsible for deployments",
	)}

	res := scoreActionVerbs(in, cfg)
	assert.InDelta(t, 10.0*0.5/0.7, res.RawScore, 0.001)
	assert.NotEmpty(t, res.Flagged)
}

func TestActionVerbsNoBulletsNeutral(t *testing.T) {
	cfg := testConfig(t)
	res := scoreActionVerbs(Input{MaxScore: 10, Resume: &types.ResumeData{}}, cfg)
	assert.Equal(t, 0.0, res.RawScore)
	assert.Empty(t, res.Flagged)
	assert.NotEmpty(t, res.Details)
}

func TestQuantification(t *testing.T) {
	cfg := testConfig(t)

	// 2 of 4 quantified is above the 0.3 target.
	in := Input{MaxScore: 10, Resume: resumeWithBullets(
		"Cut costs by 40%",
		"Saved $2M in annual spend",
		"Improved team morale",
		"Streamlined the release process",
	)}

	res := scoreQuantification(in, cfg)
	assert.Equal(t, 10.0, res.RawScore)
	assert.Empty(t, res.Flagged)
}

func TestQuantificationBelowTarget(t *testing.T) {
	cfg := testConfig(t)
	in := Input{MaxScore: 10, Resume: resumeWithBullets(
		"Improved team morale",
		"Streamlined the release process",
		"Owned the on-call rotation",
		"Led architecture reviews",
	)}

	res := scoreQuantification(in, cfg)
	assert.Equal(t, 0.0, res.RawScore)
	assert.NotEmpty(t, res.Flagged)
}

func completeExperiences(n int) []types.Experience {
	exps := make([]types.Experience, n)
	for i := range exps {
		exps[i] = types.Experience{
			Title:        fmt.Sprintf("Engineer %d", i),
			Company:      "Acme",
			StartDate:    "2019",
			EndDate:      "2020",
			Achievements: []string{"Shipped a feature"},
		}
	}
	return exps
}

func TestExperienceDepthBoundary(t *testing.T) {
	cfg := testConfig(t)

	tests := []struct {
		name  string
		level types.Level
		count int
		want  float64
	}{
		{"senior at minimum", types.LevelSenior, 4, 10},
		{"senior below minimum", types.LevelSenior, 3, 0},
		{"beginner at minimum", types.LevelBeginner, 2, 10},
		{"intermediary below minimum", types.LevelIntermediary, 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := Input{
				MaxScore: 10,
				Level:    tt.level,
				Resume:   &types.ResumeData{Experience: completeExperiences(tt.count)},
			}
			res := scoreExperienceDepth(in, cfg)
			assert.Equal(t, tt.want, res.RawScore)
		})
	}
}

func TestExperienceDepthIgnoresIncompleteEntries(t *testing.T) {
	cfg := testConfig(t)

	exps := completeExperiences(3)
	exps = append(exps, types.Experience{Title: "Engineer", Company: "Acme"}) // no dates

	res := scoreExperienceDepth(Input{
		MaxScore: 10,
		Level:    types.LevelSenior,
		Resume:   &types.ResumeData{Experience: exps},
	}, cfg)
	assert.Equal(t, 0.0, res.RawScore)
	assert.NotEmpty(t, res.Flagged)
}

func TestScaleToTarget(t *testing.T) {
	assert.Equal(t, 1.0, scaleToTarget(0.8, 0.7))
	assert.Equal(t, 1.0, scaleToTarget(0.7, 0.7))
	assert.InDelta(t, 0.5/0.7, scaleToTarget(0.5, 0.7), 0.001)
	assert.Equal(t, 1.0, scaleToTarget(0.5, 0))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exact", truncate("exact", 5))
	assert.Equal(t, "abcde...", truncate("abcdefgh", 5))

	// Multi-byte text must be cut on rune boundaries, not bytes.
	got := truncate("Géré l'équipe café numéro un", 10)
	assert.Equal(t, "Géré l'équ...", got)
	assert.True(t, utf8.ValidString(got))
}
