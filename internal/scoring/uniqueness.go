package scoring

import "github.com/socialproof-labs/socialproof-go/internal/domain"

const (
	uniquenessContentWeight = 0.7
	uniquenessMediaWeight   = 0.3
)

// VerifyUniqueness estimates how much of the submitted content duplicates the
// reference corpus. An empty corpus makes every post fully unique. Returns
// the zero score with empty attributes for an empty post sequence.
func VerifyUniqueness(posts []domain.Post, reference []domain.Post) (float64, map[string]any) {
	if len(posts) == 0 {
		return 0.0, map[string]any{}
	}

	var contentSum, mediaSum float64
	for _, post := range posts {
		contentSum += 1.0 - contentSimilarity(post, reference)
		mediaSum += 1.0 - mediaSimilarity(post, reference)
	}

	total := float64(len(posts))
	avgContent := contentSum / total
	avgMedia := mediaSum / total
	score := uniquenessContentWeight*avgContent + uniquenessMediaWeight*avgMedia

	attributes := map[string]any{
		"content_uniqueness_score": avgContent * 100,
		"media_uniqueness_score":   avgMedia * 100,
		"uniqueness_score":         score * 100,
	}
	return score, attributes
}

// contentSimilarity is the maximum word-set overlap between the post content
// and any reference post, as shared words over the larger word set. Zero when
// either side has no words or the corpus is empty.
func contentSimilarity(post domain.Post, reference []domain.Post) float64 {
	words := wordSet(post.Content)
	if len(words) == 0 {
		return 0.0
	}

	best := 0.0
	for _, ref := range reference {
		refWords := wordSet(ref.Content)
		if len(refWords) == 0 {
			continue
		}
		shared := 0
		for w := range words {
			if _, ok := refWords[w]; ok {
				shared++
			}
		}
		denom := len(words)
		if len(refWords) > denom {
			denom = len(refWords)
		}
		if sim := float64(shared) / float64(denom); sim > best {
			best = sim
		}
	}
	return best
}

// mediaSimilarity counts reference media items whose URL exactly equals one
// of the post's media URLs, over the size of the post's URL set. Multiple
// reference hits on the same URL can push the raw ratio above 1, hence the
// cap.
func mediaSimilarity(post domain.Post, reference []domain.Post) float64 {
	if len(reference) == 0 {
		return 0.0
	}

	urls := make(map[string]struct{}, len(post.Media))
	for _, item := range post.Media {
		if item.URL != "" {
			urls[item.URL] = struct{}{}
		}
	}
	if len(urls) == 0 {
		return 0.0
	}

	matched := 0
	for _, ref := range reference {
		for _, item := range ref.Media {
			if _, ok := urls[item.URL]; ok {
				matched++
			}
		}
	}

	ratio := float64(matched) / float64(len(urls))
	if ratio > 1.0 {
		return 1.0
	}
	return ratio
}
