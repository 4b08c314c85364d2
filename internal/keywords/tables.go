package keywords

import (
	"regexp"

	"github.com/spigell/cv-tailor/internal/terms"
)

// stopWords never make it into a keyword list, however often they occur.
var stopWords = map[string]bool{
	"about": true, "after": true, "also": true, "among": true, "and": true,
	"been": true, "build": true, "built": true, "from": true, "have": true,
	"into": true, "job": true, "more": true, "most": true, "over": true,
	"role": true, "that": true, "their": true, "they": true, "this": true,
	"with": true, "your": true,
}

// sectionHeaders mark the start of a requirements-like block of a posting.
var sectionHeaders = []string{
	"required skills",
	"requirements",
	"required qualifications",
	"preferred qualifications",
	"technical skills",
	"must have",
	"nice to have",
	"what you will need",
	"qualifications",
}

// termPattern is one curated detector of technical terms.
type termPattern struct {
	category string
	re       *regexp.Regexp
}

func (p termPattern) findAll(text string) []string {
	return p.re.FindAllString(text, -1)
}

var termPatterns = []termPattern{
	{category: "cloud", re: regexp.MustCompile(`(?i)\b(?:aws|azure|gcp|docker|kubernetes|terraform|ansible|jenkins|github actions)\b`)},
	{category: "web", re: regexp.MustCompile(`(?i)\b(?:react|next\.?js|node\.?js|express|nestjs|typescript|javascript|python|java|golang|rust|php|ruby)\b`)},
	{category: "enterprise", re: regexp.MustCompile(`(?i)\b(?:c\+\+|c#|\.net|asp\.?net|spring boot|django|flask|fastapi)\b`)},
	{category: "database", re: regexp.MustCompile(`(?i)\b(?:postgres(?:ql)?|mysql|mongodb|redis|elasticsearch|snowflake|bigquery)\b`)},
	{category: "architecture", re: regexp.MustCompile(`(?i)\b(?:sql|nosql|graphql|rest(?:ful)? api|microservices|event[- ]driven)\b`)},
	{category: "ml", re: regexp.MustCompile(`(?i)\b(?:machine learning|deep learning|nlp|computer vision|pytorch|tensorflow|scikit[- ]learn)\b`)},
	{category: "devops", re: regexp.MustCompile(`(?i)\b(?:ci/cd|devops|linux|bash|agile|scrum)\b`)},
}

// Category returns the technology group of a term recognized by the curated
// patterns, or "" for terms found only by the section and fallback passes.
func Category(term string) string {
	normalized := terms.Normalize(term)
	for _, pattern := range termPatterns {
		for _, match := range pattern.findAll(normalized) {
			if match == normalized {
				return pattern.category
			}
		}
	}
	return ""
}
