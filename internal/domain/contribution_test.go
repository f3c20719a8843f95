package domain

import "testing"

func TestMetadataDLPID(t *testing.T) {
	if got := Metadata(nil).DLPID(12345); got != 12345 {
		t.Fatalf("DLPID(nil)=%d, want default", got)
	}
	if got := (Metadata{"dlp_id": float64(777)}).DLPID(12345); got != 777 {
		t.Fatalf("DLPID(number)=%d, want 777", got)
	}
	if got := (Metadata{"dlp_id": "888"}).DLPID(12345); got != 888 {
		t.Fatalf("DLPID(string)=%d, want 888", got)
	}
	if got := (Metadata{"dlp_id": "not-a-number"}).DLPID(12345); got != 12345 {
		t.Fatalf("DLPID(junk)=%d, want default", got)
	}
}

func TestEngagementTotal(t *testing.T) {
	e := Engagement{Likes: 1, Comments: 2, Shares: 3, Retweets: 4, Views: 1000}
	if got := e.Total(); got != 10 {
		t.Fatalf("Total()=%d, want 10 (views excluded)", got)
	}
}

func TestAccountIsZero(t *testing.T) {
	if !(Account{}).IsZero() {
		t.Fatalf("empty account should be zero")
	}
	if (Account{UserID: "u1"}).IsZero() {
		t.Fatalf("account with user_id is not zero")
	}
}

func TestNewProofResult(t *testing.T) {
	result := NewProofResult(42)
	if result.DLPID != 42 {
		t.Fatalf("dlp_id=%d, want 42", result.DLPID)
	}
	if result.Valid || result.Score != 0 {
		t.Fatalf("default result must be invalid with zero score, got %+v", result)
	}
	if result.Attributes == nil || result.Metadata == nil {
		t.Fatalf("maps must be initialized, got %+v", result)
	}
}
