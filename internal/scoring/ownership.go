package scoring

import (
	"strings"

	"github.com/socialproof-labs/socialproof-go/internal/domain"
)

// Ownership signal weights.
const (
	ownershipEmailWeight  = 0.4
	ownershipUserIDWeight = 0.3
	ownershipURLWeight    = 0.3
)

// VerifyOwnership checks that the submitted posts plausibly belong to the
// claimed account. configuredEmail, when non-empty, must exactly equal the
// account email; an unset configured email counts as verified. Returns the
// zero score with empty attributes when the account or post sequence is
// absent.
func VerifyOwnership(account domain.Account, posts []domain.Post, configuredEmail string) (float64, map[string]any) {
	if account.IsZero() || len(posts) == 0 {
		return 0.0, map[string]any{}
	}

	emailMatch := true
	if configuredEmail != "" {
		emailMatch = configuredEmail == account.Email
	}

	userIDMatches := 0
	urlConsistency := 0
	for _, post := range posts {
		if post.UserID == account.UserID {
			userIDMatches++
		}
		if strings.Contains(post.PostURL, account.Username) {
			urlConsistency++
		}
	}

	total := float64(len(posts))
	userIDScore := float64(userIDMatches) / total
	urlScore := float64(urlConsistency) / total

	emailScore := 0.0
	if emailMatch {
		emailScore = 1.0
	}
	score := ownershipEmailWeight*emailScore +
		ownershipUserIDWeight*userIDScore +
		ownershipURLWeight*urlScore

	attributes := map[string]any{
		"email_verified":             emailMatch,
		"user_id_match_percentage":   userIDScore * 100,
		"url_consistency_percentage": urlScore * 100,
	}
	return score, attributes
}
