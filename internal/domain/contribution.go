package domain

import (
	"strconv"
	"strings"
)

// Account identifies the contributor as claimed by the export. Every field is
// optional; a missing field is the empty string.
type Account struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	UserID   string `json:"user_id"`
}

// IsZero reports whether no account record was loaded at all.
func (a Account) IsZero() bool {
	return a.Email == "" && a.Username == "" && a.UserID == ""
}

// Engagement carries the interaction counters of a single post. Absent
// counters decode to zero.
type Engagement struct {
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
	Shares   int `json:"shares"`
	Retweets int `json:"retweets"`
	Views    int `json:"views"`
}

// Total sums all interaction kinds except views.
func (e Engagement) Total() int {
	return e.Likes + e.Comments + e.Shares + e.Retweets
}

// MediaItem is one attachment of a post.
type MediaItem struct {
	URL string `json:"url"`
}

// Post is a single entry of the claimed export. All fields are optional and
// default to their zero value; verifiers treat posts as read-only.
type Post struct {
	PostID     string      `json:"post_id"`
	UserID     string      `json:"user_id"`
	PostURL    string      `json:"post_url"`
	Platform   string      `json:"platform"`
	Content    string      `json:"content"`
	PostedAt   string      `json:"posted_at"`
	Engagement Engagement  `json:"engagement"`
	Media      []MediaItem `json:"media"`
}

// Metadata is the unstructured sidecar record of a submission.
type Metadata map[string]any

// Clone returns a shallow copy, never nil.
func (m Metadata) Clone() Metadata {
	out := make(Metadata, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// DLPID extracts a dlp_id override, falling back to def when the key is
// absent or not numeric. JSON numbers decode as float64; numeric strings are
// accepted as well since exports are not consistent about it.
func (m Metadata) DLPID(def int) int {
	v, ok := m["dlp_id"]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case int64:
		return int(n)
	case string:
		if parsed, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return parsed
		}
	}
	return def
}

// Submission bundles everything one proof run consumes.
type Submission struct {
	Account   Account
	Posts     []Post
	Metadata  Metadata
	Reference []Post
}
