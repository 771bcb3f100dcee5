// Package repotest provides in-memory repositories for service tests. Filters mirror the
// SQL the real repositories issue.
package repotest

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"venue-content-backend/internal/shared/apperror"
	"venue-content-backend/pkg/keycodec"
)

// Table stores rows of T in insertion order.
type Table[T any, F any] struct {
	mu     sync.Mutex
	entity string
	rows   []map[string]any

	Match func(item T, filter F) bool
	Less  func(a, b T) bool
	// Order, when it returns non-nil, replaces Less for that filter.
	Order func(filter F) func(a, b T) bool
	// Limit reads the filter's row cap; zero means no cap.
	Limit  func(filter F) int
	Unique func(a, b map[string]any) bool
	// OnConflict lists the columns Upsert overwrites on a collision; nil means all.
	OnConflict []string

	// Err, when set, is returned by every call.
	Err error
	// Writes counts successful inserts and updates.
	Writes int
}

func NewTable[T any, F any](entity string) *Table[T, F] {
	return &Table[T, F]{entity: entity}
}

func (t *Table[T, F]) Create(_ context.Context, row keycodec.Object) (*T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.Err != nil {
		return nil, t.Err
	}

	m, err := columns(row)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	m["id"] = uuid.NewString()
	m["created_at"] = now
	m["updated_at"] = now

	if t.conflict(m, -1) >= 0 {
		return nil, apperror.Persistence(fmt.Sprintf("duplicate key value violates unique constraint on %s", t.entity), nil)
	}

	item, err := decode[T](m)
	if err != nil {
		return nil, err
	}
	t.rows = append(t.rows, m)
	t.Writes++
	return item, nil
}

func (t *Table[T, F]) Update(_ context.Context, id uuid.UUID, row keycodec.Object) (*T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.Err != nil {
		return nil, t.Err
	}

	i := t.index(id)
	if i < 0 {
		return nil, apperror.NotFound(t.entity)
	}
	patch, err := columns(row)
	if err != nil {
		return nil, err
	}
	merged := clone(t.rows[i])
	for k, v := range patch {
		merged[k] = v
	}
	merged["updated_at"] = time.Now().UTC()

	if j := t.conflict(merged, i); j >= 0 {
		return nil, apperror.Persistence(fmt.Sprintf("duplicate key value violates unique constraint on %s", t.entity), nil)
	}

	item, err := decode[T](merged)
	if err != nil {
		return nil, err
	}
	t.rows[i] = merged
	t.Writes++
	return item, nil
}

// Upsert inserts row, or overwrites the row it collides with under Unique.
func (t *Table[T, F]) Upsert(ctx context.Context, row keycodec.Object) (*T, error) {
	m, err := columns(row)
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	i := t.conflict(m, -1)
	var id uuid.UUID
	if i >= 0 {
		id = uuid.MustParse(t.rows[i]["id"].(string))
	}
	t.mu.Unlock()

	if i < 0 {
		return t.Create(ctx, row)
	}
	if t.OnConflict != nil {
		row = only(keycodec.DecodeObject(row), t.OnConflict)
	}
	return t.Update(ctx, id, row)
}

func only(row keycodec.Object, cols []string) keycodec.Object {
	out := keycodec.Object{}
	for _, c := range cols {
		if v, ok := row.Get(c); ok {
			out = append(out, keycodec.Field{Key: c, Value: v})
		}
	}
	return out
}

func (t *Table[T, F]) Delete(_ context.Context, id uuid.UUID) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.Err != nil {
		return t.Err
	}
	i := t.index(id)
	if i < 0 {
		return apperror.NotFound(t.entity)
	}
	t.rows = append(t.rows[:i], t.rows[i+1:]...)
	return nil
}

func (t *Table[T, F]) GetByID(_ context.Context, id uuid.UUID) (*T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.Err != nil {
		return nil, t.Err
	}
	i := t.index(id)
	if i < 0 {
		return nil, apperror.NotFound(t.entity)
	}
	return decode[T](t.rows[i])
}

func (t *Table[T, F]) List(_ context.Context, filter F) ([]T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.Err != nil {
		return nil, t.Err
	}

	out := []T{}
	for _, m := range t.rows {
		item, err := decode[T](m)
		if err != nil {
			return nil, err
		}
		if t.Match == nil || t.Match(*item, filter) {
			out = append(out, *item)
		}
	}
	less := t.Less
	if t.Order != nil {
		if o := t.Order(filter); o != nil {
			less = o
		}
	}
	if less != nil {
		sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	}
	if t.Limit != nil {
		if n := t.Limit(filter); n > 0 && len(out) > n {
			out = out[:n]
		}
	}
	return out, nil
}

func (t *Table[T, F]) Count(context.Context) (int64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.Err != nil {
		return 0, t.Err
	}
	return int64(len(t.rows)), nil
}

// All returns every row regardless of filters.
func (t *Table[T, F]) All() []T {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]T, 0, len(t.rows))
	for _, m := range t.rows {
		if item, err := decode[T](m); err == nil {
			out = append(out, *item)
		}
	}
	return out
}

func (t *Table[T, F]) index(id uuid.UUID) int {
	for i, m := range t.rows {
		if m["id"] == id.String() {
			return i
		}
	}
	return -1
}

func (t *Table[T, F]) conflict(m map[string]any, skip int) int {
	if t.Unique == nil {
		return -1
	}
	for i, other := range t.rows {
		if i != skip && t.Unique(m, other) {
			return i
		}
	}
	return -1
}

// columns decodes the external row and normalises its values through JSON, the same
// shape the entity structs unmarshal from.
func columns(row keycodec.Object) (map[string]any, error) {
	b, err := json.Marshal(keycodec.DecodeObject(row))
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func decode[T any](m map[string]any) (*T, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	var item T
	if err := json.Unmarshal(b, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func clone(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
