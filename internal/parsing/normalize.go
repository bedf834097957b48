// Package parsing provides deterministic keyword extraction from
// job-description text. No NLP, no learning: section headings, bullet and
// comma splitting, and a canonical skill-name map.
package parsing

import "strings"

// skillNormalizations maps common skill name variants to canonical names.
var skillNormalizations = map[string]string{
	"golang":      "go",
	"go lang":     "go",
	"javascript":  "javascript",
	"js":          "javascript",
	"typescript":  "typescript",
	"ts":          "typescript",
	"k8s":         "kubernetes",
	"postgresql":  "postgres",
	"psql":        "postgres",
	"react.js":    "react",
	"reactjs":     "react",
	"vue.js":      "vue",
	"vuejs":       "vue",
	"node.js":     "node.js",
	"nodejs":      "node.js",
	"ci/cd":       "ci/cd",
	"cicd":        "ci/cd",
	"amazon web services": "aws",
	"google cloud":        "gcp",
	"google cloud platform": "gcp",
}

// NormalizeKeyword lower-cases, trims, and canonicalizes a keyword phrase.
// Returns "" when nothing usable remains.
func NormalizeKeyword(phrase string) string {
	normalized := strings.ToLower(strings.TrimSpace(phrase))
	normalized = strings.Trim(normalized, ".,;:()[]")
	normalized = strings.Join(strings.Fields(normalized), " ")
	if canonical, ok := skillNormalizations[normalized]; ok {
		return canonical
	}
	return normalized
}
