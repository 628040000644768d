package player

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrStoreUnavailable marks failures where the document store could not be
// reached or did not answer in time.
var ErrStoreUnavailable = crerr.New("player store unavailable")

// Repository describes the read access use cases need from the player store.
type Repository interface {
	// Find returns summary documents: nested season stats, history and
	// fixtures are not loaded.
	Find(ctx context.Context, query Query) ([]Document, error)
	Count(ctx context.Context, filter Filter) (int64, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (Document, bool, error)
}

// Pinger is implemented by stores that can report readiness.
type Pinger interface {
	Ping(ctx context.Context) error
}
