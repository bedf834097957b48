package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-scorer/internal/types"
)

func TestMatchKeywordsEmptyListIsFullMatch(t *testing.T) {
	m := matchKeywords(&types.ResumeData{}, nil)
	assert.Equal(t, 100.0, m.percent)
	assert.Empty(t, m.missing)
}

func TestMatchKeywordsSingleWordTokenMatch(t *testing.T) {
	resume := &types.ResumeData{Skills: []string{"Go", "Kubernetes"}}

	m := matchKeywords(resume, []string{"go", "rust"})
	assert.Equal(t, []string{"go"}, m.matched)
	assert.Equal(t, []string{"rust"}, m.missing)
	assert.InDelta(t, 50.0, m.percent, 0.01)
}

func TestMatchKeywordsSingleWordNoSubstringFalsePositive(t *testing.T) {
	// "java" must not match inside "javascript".
	resume := &types.ResumeData{Skills: []string{"javascript"}}

	m := matchKeywords(resume, []string{"java"})
	assert.Empty(t, m.matched)
}

func TestMatchKeywordsMultiWordSubstring(t *testing.T) {
	resume := &types.ResumeData{
		Experience: []types.Experience{
			{Achievements: []string{"Deployed machine learning models to production"}},
		},
	}

	m := matchKeywords(resume, []string{"machine learning", "data engineering"})
	assert.Equal(t, []string{"machine learning"}, m.matched)
	assert.Equal(t, []string{"data engineering"}, m.missing)
}

func TestMatchKeywordsSearchesRawText(t *testing.T) {
	resume := &types.ResumeData{
		Metadata: types.DocumentMetadata{RawText: "Certified Terraform Associate"},
	}

	m := matchKeywords(resume, []string{"terraform"})
	assert.Equal(t, []string{"terraform"}, m.matched)
}

func TestBuildKeywordDetailsNilWhenNoKeywords(t *testing.T) {
	assert.Nil(t, BuildKeywordDetails(&types.ResumeData{}, nil))
	assert.Nil(t, BuildKeywordDetails(&types.ResumeData{}, &types.JobKeywords{}))
}

func TestScoreRequiredKeywords(t *testing.T) {
	resume := &types.ResumeData{Skills: []string{"go", "postgresql"}}
	in := Input{
		Resume:   resume,
		MaxScore: 50,
		Keywords: &types.JobKeywords{Required: []string{"go", "postgresql", "kafka", "redis"}},
	}

	res := scoreRequiredKeywords(in, nil)
	assert.InDelta(t, 25.0, res.RawScore, 0.01)
	require.Len(t, res.Flagged, 2)
	assert.Contains(t, res.Flagged[0].Message, "kafka")
	assert.Contains(t, res.Flagged[1].Message, "redis")
}

func TestScoreRequiredKeywordsNoneExtracted(t *testing.T) {
	res := scoreRequiredKeywords(Input{Resume: &types.ResumeData{}, MaxScore: 50}, nil)
	assert.Equal(t, 50.0, res.RawScore)
	assert.Empty(t, res.Flagged)
	assert.NotEmpty(t, res.Details)
}

func TestScorePreferredKeywords(t *testing.T) {
	resume := &types.ResumeData{Skills: []string{"kafka"}}
	in := Input{
		Resume:   resume,
		MaxScore: 20,
		Keywords: &types.JobKeywords{Preferred: []string{"kafka", "rust"}},
	}

	res := scorePreferredKeywords(in, nil)
	assert.InDelta(t, 10.0, res.RawScore, 0.01)
	require.Len(t, res.Flagged, 1)
	assert.Contains(t, res.Flagged[0].Message, "rust")
}
