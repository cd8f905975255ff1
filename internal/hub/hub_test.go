package hub

import (
	"context"
	"testing"
	"time"

	"github.com/dashrun/rivals-backend/internal/highscore"
	"github.com/dashrun/rivals-backend/internal/session"
	"github.com/dashrun/rivals-backend/internal/themes"
)

func testDeps() Deps {
	return Deps{
		Tiers:  themes.Default(),
		Scores: highscore.NewMemStore(),
		Tick:   time.Hour,
	}
}

func TestHub_Create_Get_SamePointer(t *testing.T) {
	ctx := context.Background()
	h := NewHub(ctx, testDeps())
	reply := make(chan *session.Session, 1)

	h.Inbox() <- CreateSession{Code: "ZED123", PlayerID: "p1", Reply: reply}
	s1 := <-reply

	h.Inbox() <- GetSession{Code: "ZED123", Reply: reply}
	s2 := <-reply

	if s1 == nil || s2 == nil || s1 != s2 {
		t.Fatalf("expected same session pointer")
	}
}

func TestHub_GetUnknownCodeIsNil(t *testing.T) {
	ctx := context.Background()
	h := NewHub(ctx, testDeps())
	reply := make(chan *session.Session, 1)

	h.Inbox() <- GetSession{Code: "NOPE00", Reply: reply}
	if s := <-reply; s != nil {
		t.Fatalf("expected nil session for unknown code, got %v", s)
	}
}

func TestHub_EnsureCreatesOnce(t *testing.T) {
	ctx := context.Background()
	h := NewHub(ctx, testDeps())
	reply := make(chan *session.Session, 1)

	h.Inbox() <- EnsureSession{Code: "AAA111", PlayerID: "p1", Reply: reply}
	s1 := <-reply

	h.Inbox() <- EnsureSession{Code: "AAA111", PlayerID: "someone-else", Reply: reply}
	s2 := <-reply

	if s1 == nil || s1 != s2 {
		t.Fatalf("ensure should return the existing session")
	}
}
