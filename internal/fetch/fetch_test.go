package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTextStripsNoise(t *testing.T) {
	html := `<html><body>
		<nav>Home | Jobs | About</nav>
		<script>var tracking = true;</script>
		<div class="cookie-banner">We use cookies</div>
		<main>Senior Go Engineer. Build distributed systems.</main>
		<footer>Copyright 2026</footer>
	</body></html>`

	text, err := extractText(html, PlatformContentSelectors(PlatformUnknown))
	require.NoError(t, err)

	assert.Contains(t, text, "Senior Go Engineer")
	assert.NotContains(t, text, "cookies")
	assert.NotContains(t, text, "tracking")
	assert.NotContains(t, text, "Copyright")
}

func TestExtractTextPrefersContentSelector(t *testing.T) {
	html := `<html><body>
		<div class="sidebar-links">Other openings</div>
		<div class="job-description">Requirements: Go, PostgreSQL</div>
	</body></html>`

	text, err := extractText(html, PlatformContentSelectors(PlatformUnknown))
	require.NoError(t, err)

	assert.Contains(t, text, "Requirements: Go, PostgreSQL")
	assert.NotContains(t, text, "Other openings")
}

func TestExtractTextFallsBackToBody(t *testing.T) {
	html := `<html><body><p>Plain posting without wrapper divs.</p></body></html>`

	text, err := extractText(html, PlatformContentSelectors(PlatformUnknown))
	require.NoError(t, err)

	assert.Equal(t, "Plain posting without wrapper divs.", text)
}

func TestCleanWhitespace(t *testing.T) {
	in := "  Requirements:  \n\n\n\n\t• Go\n   • Docker  \n"
	out := cleanWhitespace(in)

	assert.Equal(t, "Requirements:\n\n• Go\n• Docker", out)
}

func TestJobDescriptionHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><main>Backend role. ` +
			strings.Repeat("Kubernetes experience required. ", 30) +
			`</main></body></html>`))
	}))
	defer srv.Close()

	text, err := JobDescription(context.Background(), srv.URL, nil)
	require.NoError(t, err)
	assert.Contains(t, text, "Backend role")
	assert.Contains(t, text, "Kubernetes experience required")
}

func TestJobDescriptionHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := JobDescription(context.Background(), srv.URL, nil)
	require.Error(t, err)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "404")
}

func TestJobDescriptionInvalidURL(t *testing.T) {
	_, err := JobDescription(context.Background(), "not a url", nil)
	require.Error(t, err)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "invalid URL", fetchErr.Message)
}

func TestDetectPlatform(t *testing.T) {
	cases := []struct {
		url  string
		want Platform
	}{
		{"https://boards.greenhouse.io/acme/jobs/123", PlatformGreenhouse},
		{"https://jobs.lever.co/acme/abc-def", PlatformLever},
		{"https://acme.wd1.myworkdayjobs.com/careers/job/123", PlatformWorkday},
		{"https://careers.acme.com/jobs/123", PlatformUnknown},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DetectPlatform(tc.url), tc.url)
	}
}

func TestPlatformContentSelectorsOrder(t *testing.T) {
	selectors := PlatformContentSelectors(PlatformGreenhouse)

	// Platform-specific selectors come before the generic fallbacks.
	assert.Equal(t, ".job__description.body", selectors[0])
	assert.Contains(t, selectors, "main")

	generic := PlatformContentSelectors(PlatformUnknown)
	assert.Equal(t, ".job-description", generic[0])
}

func TestTooShortForJobPosting(t *testing.T) {
	assert.True(t, tooShortForJobPosting("Apply now"))
	assert.False(t, tooShortForJobPosting(strings.Repeat("responsibilities ", 50)))
}
