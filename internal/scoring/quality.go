package scoring

import (
	"unicode/utf8"

	"github.com/socialproof-labs/socialproof-go/internal/domain"
)

const (
	// minContentLength is the length below which content scores linearly.
	minContentLength = 10
	// idealContentLength is the reference length scoring 1.0.
	idealContentLength = 280

	qualityEngagementWeight = 0.5
	qualityContentWeight    = 0.3
	qualityMediaWeight      = 0.2
)

// AssessQuality scores the intrinsic richness of the post content,
// independent of who owns it. Returns the zero score with empty attributes
// for an empty post sequence.
func AssessQuality(posts []domain.Post) (float64, map[string]any) {
	if len(posts) == 0 {
		return 0.0, map[string]any{}
	}

	var engagementSum, contentSum, mediaSum float64
	for _, post := range posts {
		engagementSum += engagementScore(post.Engagement)
		contentSum += contentLengthScore(post.Content)
		mediaSum += mediaScore(post.Media)
	}

	total := float64(len(posts))
	avgEngagement := engagementSum / total
	avgContent := contentSum / total
	avgMedia := mediaSum / total

	score := qualityEngagementWeight*avgEngagement +
		qualityContentWeight*avgContent +
		qualityMediaWeight*avgMedia

	attributes := map[string]any{
		"engagement_score": avgEngagement * 100,
		"content_score":    avgContent * 100,
		"media_score":      avgMedia * 100,
	}
	return score, attributes
}

// engagementScore normalizes the engagement rate so that 5% or higher is
// maximal. Zero views means zero engagement.
func engagementScore(e domain.Engagement) float64 {
	if e.Views <= 0 {
		return 0
	}
	rate := float64(e.Total()) / float64(e.Views)
	score := rate * 20
	if score > 1.0 {
		return 1.0
	}
	return score
}

// contentLengthScore prefers content that is neither too short nor too long.
// Length is measured in characters, not bytes.
func contentLengthScore(content string) float64 {
	length := utf8.RuneCountInString(content)
	if length < minContentLength {
		return float64(length) / minContentLength
	}

	score := float64(length) / idealContentLength
	if score > 1.0 {
		score = 1.0
	}
	// Soft penalty with a 0.7 floor for excessively long content.
	longThreshold := idealContentLength * 3 / 2
	if length > longThreshold {
		score = 1.0 - float64(length-longThreshold)/1000
		if score < 0.7 {
			score = 0.7
		}
	}
	return score
}

// mediaScore grants a base bonus for any media plus an increasing bonus per
// additional item, capped at 1.0. Text-only posts score 0.5.
func mediaScore(media []domain.MediaItem) float64 {
	if len(media) == 0 {
		return 0.5
	}
	score := 0.8 + 0.1*float64(len(media))
	if score > 1.0 {
		return 1.0
	}
	return score
}
