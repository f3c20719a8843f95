package scoring

import (
	"testing"

	"github.com/socialproof-labs/socialproof-go/internal/domain"
)

func TestVerifyOwnership_FullyConsistent(t *testing.T) {
	account := domain.Account{Email: "alice@example.com", Username: "alice", UserID: "u1"}
	posts := []domain.Post{
		{UserID: "u1", PostURL: "https://x.com/alice/status/1"},
		{UserID: "u1", PostURL: "https://x.com/alice/status/2"},
	}

	score, attrs := VerifyOwnership(account, posts, "")
	if !almostEqual(score, 1.0) {
		t.Fatalf("score=%v, want 1.0", score)
	}
	if verified, _ := attrs["email_verified"].(bool); !verified {
		t.Fatalf("email_verified=%v, want true", attrs["email_verified"])
	}
	if got, _ := attrs["user_id_match_percentage"].(float64); !almostEqual(got, 100) {
		t.Fatalf("user_id_match_percentage=%v, want 100", got)
	}
	if got, _ := attrs["url_consistency_percentage"].(float64); !almostEqual(got, 100) {
		t.Fatalf("url_consistency_percentage=%v, want 100", got)
	}
}

func TestVerifyOwnership_EmailMismatch(t *testing.T) {
	account := domain.Account{Email: "alice@example.com", Username: "alice", UserID: "u1"}
	posts := []domain.Post{
		{UserID: "u1", PostURL: "https://x.com/alice/status/1"},
	}

	score, attrs := VerifyOwnership(account, posts, "other@example.com")
	if !almostEqual(score, 0.6) {
		t.Fatalf("score=%v, want 0.6", score)
	}
	if verified, _ := attrs["email_verified"].(bool); verified {
		t.Fatalf("email_verified=true, want false")
	}
}

func TestVerifyOwnership_PartialMatches(t *testing.T) {
	account := domain.Account{Email: "a@b.c", Username: "alice", UserID: "u1"}
	posts := []domain.Post{
		{UserID: "u1", PostURL: "https://x.com/alice/status/1"},
		{UserID: "u2", PostURL: "https://x.com/bob/status/2"},
	}

	score, attrs := VerifyOwnership(account, posts, "")
	// email 0.4 + half user-id 0.15 + half url 0.15.
	if !almostEqual(score, 0.7) {
		t.Fatalf("score=%v, want 0.7", score)
	}
	if got, _ := attrs["user_id_match_percentage"].(float64); !almostEqual(got, 50) {
		t.Fatalf("user_id_match_percentage=%v, want 50", got)
	}
}

func TestVerifyOwnership_MissingInputs(t *testing.T) {
	score, attrs := VerifyOwnership(domain.Account{}, []domain.Post{{UserID: "u1"}}, "")
	if score != 0.0 {
		t.Fatalf("score=%v, want 0 for empty account", score)
	}
	if len(attrs) != 0 {
		t.Fatalf("attrs=%v, want empty", attrs)
	}

	score, attrs = VerifyOwnership(domain.Account{UserID: "u1"}, nil, "")
	if score != 0.0 {
		t.Fatalf("score=%v, want 0 for no posts", score)
	}
	if len(attrs) != 0 {
		t.Fatalf("attrs=%v, want empty", attrs)
	}
}
