package player

import (
	"testing"

	crerr "github.com/cockroachdb/errors"
)

func TestErrStoreUnavailableSurvivesWrapping(t *testing.T) {
	err := crerr.Wrap(crerr.Mark(crerr.New("server selection timeout"), ErrStoreUnavailable), "count players")
	if !crerr.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected marked error to match, got %v", err)
	}
	if crerr.Is(crerr.New("player store unavailable"), ErrStoreUnavailable) {
		t.Fatal("expected an unrelated error with the same message not to match")
	}
}
