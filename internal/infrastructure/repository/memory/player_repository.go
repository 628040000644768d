package memory

import (
	"bytes"
	"cmp"
	"context"
	"slices"
	"strconv"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/riskibarqy/fpl-stats-api/internal/domain/player"
)

// PlayerRepository serves player documents from memory with the same
// filter, sort and window semantics as the document store.
type PlayerRepository struct {
	mu    sync.RWMutex
	items []storedDocument
	index map[primitive.ObjectID]int
}

type storedDocument struct {
	doc player.Document
	raw bson.Raw
}

var _ player.Repository = (*PlayerRepository)(nil)

func NewPlayerRepository(docs []player.Document) (*PlayerRepository, error) {
	r := &PlayerRepository{
		items: make([]storedDocument, 0, len(docs)),
		index: make(map[primitive.ObjectID]int, len(docs)),
	}
	for _, doc := range docs {
		raw, err := bson.Marshal(doc)
		if err != nil {
			return nil, err
		}
		r.index[doc.ID] = len(r.items)
		r.items = append(r.items, storedDocument{doc: doc, raw: raw})
	}
	return r, nil
}

func (r *PlayerRepository) Find(ctx context.Context, query player.Query) ([]player.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	matched := make([]storedDocument, 0, len(r.items))
	for _, item := range r.items {
		if matches(item.doc, query.Filter) {
			matched = append(matched, item)
		}
	}
	r.mu.RUnlock()

	if !query.Sort.IsZero() {
		path := strings.Split(query.Sort.Field, ".")
		slices.SortStableFunc(matched, func(a, b storedDocument) int {
			c := compareValues(lookup(a.raw, path), lookup(b.raw, path))
			if query.Sort.Direction == player.SortDescending {
				return -c
			}
			return c
		})
	}

	start := clampIndex(query.Pagination.Skip, len(matched))
	end := len(matched)
	if query.Pagination.Limit > 0 && query.Pagination.Limit < int64(end-start) {
		end = start + int(query.Pagination.Limit)
	}

	out := make([]player.Document, 0, end-start)
	for _, item := range matched[start:end] {
		out = append(out, summaryOf(item.doc))
	}
	return out, nil
}

func (r *PlayerRepository) Count(ctx context.Context, filter player.Filter) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var total int64
	for _, item := range r.items {
		if matches(item.doc, filter) {
			total++
		}
	}
	return total, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id primitive.ObjectID) (player.Document, bool, error) {
	if err := ctx.Err(); err != nil {
		return player.Document{}, false, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return player.Document{}, false, nil
	}
	return r.items[i].doc, true, nil
}

// Ping always succeeds.
func (r *PlayerRepository) Ping(context.Context) error { return nil }

func matches(doc player.Document, filter player.Filter) bool {
	if filter.Team != nil && (doc.Team == nil || *doc.Team != *filter.Team) {
		return false
	}
	if filter.Position != nil && (doc.Position == nil || *doc.Position != *filter.Position) {
		return false
	}
	if filter.MaxPrice != nil && (doc.Price == nil || *doc.Price > float64(*filter.MaxPrice)) {
		return false
	}
	if filter.MinPrice != nil && (doc.Price == nil || *doc.Price < float64(*filter.MinPrice)) {
		return false
	}
	return true
}

func summaryOf(doc player.Document) player.Document {
	doc.SeasonStats = nil
	doc.History = nil
	doc.Fixtures = nil
	return doc
}

func clampIndex(skip int64, n int) int {
	if skip <= 0 {
		return 0
	}
	if skip >= int64(n) {
		return n
	}
	return int(skip)
}

func lookup(raw bson.Raw, path []string) bson.RawValue {
	v, err := raw.LookupErr(path...)
	if err != nil {
		return bson.RawValue{}
	}
	return v
}

// Values of different kinds order as missing or null, then numbers, then
// strings, then everything else. Values of the same other kind compare by
// their encoded bytes.
const (
	rankMissing = iota
	rankNumber
	rankString
	rankOther
)

func rank(v bson.RawValue) int {
	switch v.Type {
	case 0, bsontype.Null, bsontype.Undefined:
		return rankMissing
	case bsontype.Double, bsontype.Int32, bsontype.Int64, bsontype.Decimal128:
		return rankNumber
	case bsontype.String:
		return rankString
	default:
		return rankOther
	}
}

func compareValues(a, b bson.RawValue) int {
	ra, rb := rank(a), rank(b)
	if ra != rb {
		return cmp.Compare(ra, rb)
	}

	switch ra {
	case rankNumber:
		return cmp.Compare(number(a), number(b))
	case rankString:
		return strings.Compare(a.StringValue(), b.StringValue())
	case rankOther:
		if a.Type != b.Type {
			return cmp.Compare(a.Type, b.Type)
		}
		return bytes.Compare(a.Value, b.Value)
	default:
		return 0
	}
}

func number(v bson.RawValue) float64 {
	switch v.Type {
	case bsontype.Double:
		return v.Double()
	case bsontype.Int32:
		return float64(v.Int32())
	case bsontype.Int64:
		return float64(v.Int64())
	case bsontype.Decimal128:
		f, err := strconv.ParseFloat(v.Decimal128().String(), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
