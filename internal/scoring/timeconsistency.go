package scoring

import (
	"log/slog"
	"sort"
	"time"

	"github.com/araddon/dateparse"

	"github.com/socialproof-labs/socialproof-go/internal/domain"
)

// minPostInterval is the smallest gap between adjacent posts that is not
// flagged as unusual frequency.
const minPostInterval = 10 * time.Second

// sortFallbackTime orders posts without a posted_at timestamp.
var sortFallbackTime = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// VerifyTimeConsistency checks the chronological plausibility of posting
// timestamps: future-dated posts and implausibly small gaps between adjacent
// posts count as issues. A timestamp that cannot be parsed while sorting
// fails the whole verifier with the sentinel issue count of 100; a post with
// no timestamp at all is logged and skipped during the issue walk.
func VerifyTimeConsistency(logger *slog.Logger, now time.Time, posts []domain.Post) (float64, map[string]any) {
	total := len(posts)
	if total == 0 {
		return 1.0, map[string]any{"time_consistency_issues": 0}
	}

	type timedPost struct {
		post     domain.Post
		at       time.Time
		hasStamp bool
	}

	timed := make([]timedPost, 0, total)
	for _, post := range posts {
		if post.PostedAt == "" {
			timed = append(timed, timedPost{post: post, at: sortFallbackTime})
			continue
		}
		at, err := dateparse.ParseIn(post.PostedAt, time.UTC)
		if err != nil {
			logger.Error("cannot sort posts by date", "post_id", post.PostID, "posted_at", post.PostedAt, "error", err)
			return 0.0, map[string]any{"time_consistency_issues": 100}
		}
		timed = append(timed, timedPost{post: post, at: at, hasStamp: true})
	}

	if total == 1 {
		return 1.0, map[string]any{"time_consistency_issues": 0}
	}

	sort.SliceStable(timed, func(i, j int) bool {
		return timed[i].at.Before(timed[j].at)
	})

	futureDates := 0
	unusualFrequency := 0
	var prev time.Time
	havePrev := false

	for _, entry := range timed {
		if !entry.hasStamp {
			logger.Warn("post skipped in time walk", "post_id", entry.post.PostID)
			continue
		}
		if entry.at.After(now) {
			futureDates++
		}
		if havePrev && entry.at.Sub(prev) < minPostInterval {
			unusualFrequency++
		}
		prev = entry.at
		havePrev = true
	}

	issues := futureDates + unusualFrequency
	score := Clamp01(1.0 - float64(issues)/float64(total))

	attributes := map[string]any{
		"time_consistency_issues":   float64(issues) / float64(total) * 100,
		"future_dates":              futureDates,
		"unusual_posting_frequency": unusualFrequency,
	}
	return score, attributes
}
