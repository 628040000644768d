package querybuilder

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Condition is a single document predicate rendered as a bson filter clause.
type Condition interface {
	toBSON() bson.D
}

type eqCondition struct {
	field string
	value any
}

func Eq(field string, value any) Condition {
	return eqCondition{field: field, value: value}
}

func (c eqCondition) toBSON() bson.D {
	return bson.D{{Key: c.field, Value: c.value}}
}

type compareCondition struct {
	field    string
	operator string
	value    any
}

func Lte(field string, value any) Condition {
	return compareCondition{field: field, operator: "$lte", value: value}
}

func Gte(field string, value any) Condition {
	return compareCondition{field: field, operator: "$gte", value: value}
}

func (c compareCondition) toBSON() bson.D {
	return bson.D{{Key: c.field, Value: bson.D{{Key: c.operator, Value: c.value}}}}
}

type andCondition struct {
	conditions []Condition
}

// And groups conditions. An empty group matches every document.
func And(conditions ...Condition) Condition {
	return andCondition{conditions: append([]Condition(nil), conditions...)}
}

func (c andCondition) toBSON() bson.D {
	if len(c.conditions) == 0 {
		return bson.D{}
	}
	clauses := make(bson.A, 0, len(c.conditions))
	for _, cond := range c.conditions {
		clauses = append(clauses, cond.toBSON())
	}
	return bson.D{{Key: "$and", Value: clauses}}
}

type orderPart struct {
	field     string
	direction int
}

type FindBuilder struct {
	where   []Condition
	orderBy []orderPart
	exclude []string
	skip    int64
	limit   int64
}

func Find() *FindBuilder {
	return &FindBuilder{}
}

func (b *FindBuilder) Where(conditions ...Condition) *FindBuilder {
	b.where = append(b.where, conditions...)
	return b
}

// OrderBy appends a sort key. Positive direction is ascending, anything else
// descending.
func (b *FindBuilder) OrderBy(field string, direction int) *FindBuilder {
	if direction > 0 {
		direction = 1
	} else {
		direction = -1
	}
	b.orderBy = append(b.orderBy, orderPart{field: field, direction: direction})
	return b
}

func (b *FindBuilder) Exclude(fields ...string) *FindBuilder {
	b.exclude = append(b.exclude, fields...)
	return b
}

func (b *FindBuilder) Skip(skip int64) *FindBuilder {
	b.skip = skip
	return b
}

// Limit caps the number of returned documents. Zero means no limit.
func (b *FindBuilder) Limit(limit int64) *FindBuilder {
	b.limit = limit
	return b
}

// Filter renders the where clauses alone, for count queries.
func (b *FindBuilder) Filter() bson.D {
	return And(b.where...).toBSON()
}

func (b *FindBuilder) ToFind() (bson.D, *options.FindOptions, error) {
	if b.skip < 0 {
		return nil, nil, fmt.Errorf("find skip must be >= 0")
	}
	if b.limit < 0 {
		return nil, nil, fmt.Errorf("find limit must be >= 0")
	}

	opts := options.Find()
	if len(b.orderBy) > 0 {
		sort := make(bson.D, 0, len(b.orderBy))
		for _, part := range b.orderBy {
			if strings.TrimSpace(part.field) == "" {
				return nil, nil, fmt.Errorf("sort field is required")
			}
			sort = append(sort, bson.E{Key: part.field, Value: part.direction})
		}
		opts.SetSort(sort)
	}
	if len(b.exclude) > 0 {
		projection := make(bson.D, 0, len(b.exclude))
		for _, field := range b.exclude {
			projection = append(projection, bson.E{Key: field, Value: 0})
		}
		opts.SetProjection(projection)
	}
	if b.skip > 0 {
		opts.SetSkip(b.skip)
	}
	if b.limit > 0 {
		opts.SetLimit(b.limit)
	}

	return b.Filter(), opts, nil
}
