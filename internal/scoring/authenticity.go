package scoring

import (
	"strings"

	"github.com/socialproof-labs/socialproof-go/internal/domain"
)

// platformURLPrefixes maps a platform name to the URL prefixes accepted for
// posts claiming that platform.
var platformURLPrefixes = map[string][]string{
	"X":         {"https://x.com/", "https://twitter.com/"},
	"Instagram": {"https://www.instagram.com/", "https://instagram.com/"},
	"LinkedIn":  {"https://www.linkedin.com/"},
	"Facebook":  {"https://www.facebook.com/", "https://facebook.com/"},
}

// VerifyAuthenticity checks that post URLs are structurally consistent with
// their claimed platform. Posts missing either platform or URL are skipped,
// but the score denominator stays the full post count. The account is part of
// the signature for symmetry with the other verifiers and is unused.
func VerifyAuthenticity(account domain.Account, posts []domain.Post) (float64, map[string]any) {
	_ = account

	total := len(posts)
	validURLs := 0
	for _, post := range posts {
		if post.Platform == "" || post.PostURL == "" {
			continue
		}
		for _, prefix := range platformURLPrefixes[post.Platform] {
			if strings.HasPrefix(post.PostURL, prefix) {
				validURLs++
				break
			}
		}
	}

	score := 0.0
	validPercentage := 0.0
	if total > 0 {
		score = float64(validURLs) / float64(total)
		validPercentage = score * 100
	}

	attributes := map[string]any{
		"valid_urls_percentage": validPercentage,
	}
	return score, attributes
}
