package fetch

import (
	"net/url"
	"strings"
)

// Platform represents a known job board platform.
type Platform string

// Recognized job board platforms.
const (
	PlatformGreenhouse Platform = "greenhouse"
	PlatformLever      Platform = "lever"
	PlatformWorkday    Platform = "workday"
	PlatformUnknown    Platform = "unknown"
)

// DetectPlatform identifies the job board platform from a URL host.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)
	switch {
	case strings.Contains(host, "greenhouse.io"):
		return PlatformGreenhouse
	case strings.Contains(host, "lever.co"):
		return PlatformLever
	case strings.Contains(host, "workday.com") || strings.Contains(host, "myworkdayjobs.com"):
		return PlatformWorkday
	default:
		return PlatformUnknown
	}
}

// PlatformContentSelectors returns content selectors for a platform,
// most specific first, ending with generic job-page fallbacks.
func PlatformContentSelectors(platform Platform) []string {
	var selectors []string
	switch platform {
	case PlatformGreenhouse:
		selectors = []string{".job__description.body", ".job__description", "#content"}
	case PlatformLever:
		selectors = []string{".posting-page", ".content", ".posting"}
	case PlatformWorkday:
		selectors = []string{`[data-automation-id="jobPostingDescription"]`, ".jobPostingDescription"}
	}
	return append(selectors,
		".job-description", "#job-description", ".description", "main", "article")
}
