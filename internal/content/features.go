package content

import (
	"regexp"
	"strings"
)

var (
	firstIntRe     = regexp.MustCompile(`(\d+)`)
	freezePeriodRe = regexp.MustCompile(`(?i)(\d+\s+(?:Week|Month)s?)`)
)

var (
	ptSessionKeywords  = []string{"pt session", "pt sessions", "personal training"}
	invitationKeywords = []string{"invitation", "invite", "guest"}
	freezingKeywords   = []string{"freezing"}
	nutritionKeywords  = []string{"nutrition", "diet", "meal plan"}
)

// findFeature returns the first entry whose lower-cased text contains any keyword.
func findFeature(features []string, keywords []string) (string, bool) {
	for _, f := range features {
		lower := strings.ToLower(f)
		for _, k := range keywords {
			if strings.Contains(lower, k) {
				return f, true
			}
		}
	}
	return "", false
}

func extractCount(features []string, keywords []string) string {
	f, ok := findFeature(features, keywords)
	if !ok {
		return "0"
	}
	if m := firstIntRe.FindStringSubmatch(f); m != nil {
		return m[1]
	}
	return "0"
}

func ExtractPTSessions(features []string) string {
	return extractCount(features, ptSessionKeywords)
}

func ExtractInvitations(features []string) string {
	return extractCount(features, invitationKeywords)
}

func ExtractNutrition(features []string) string {
	return extractCount(features, nutritionKeywords)
}

// ExtractFreezing returns the freeze period such as "2 Weeks", or "" when absent.
func ExtractFreezing(features []string) string {
	f, ok := findFeature(features, freezingKeywords)
	if !ok {
		return ""
	}
	if m := freezePeriodRe.FindStringSubmatch(f); m != nil {
		return m[1]
	}
	return ""
}
