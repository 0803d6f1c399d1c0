package gozipper

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

// Loader materializes an ordered query result into a cursor. A
// deterministic sort is mandatory: a cursor is a position in a sequence,
// and without a total order the database is free to return rows
// differently on every load.
//
// Configuration is fluent:
//
//	res, err := gozipper.NewLoader[User]().
//		WithSort(gozipper.OrderBy{Column: "id", Direction: gozipper.DirectionASC}).
//		WithLimit(500).
//		WithLookahead().
//		Load(db.Table("users"))
type Loader[T any] struct {
	lookahead bool
	limit     int
	sort      Orderings
}

// LoadResult describes one completed load.
type LoadResult[T any] struct {
	// Zipper is the loaded sequence focused on its first row; absent when
	// the query matched nothing.
	Zipper MaybeZipper[T]
	// Loaded is the number of rows materialized into the cursor.
	Loaded int
	// AppliedLimit is the effective row cap after normalization, or
	// NoLimit for an unlimited load.
	AppliedLimit int
	// Truncated reports whether lookahead saw at least one row beyond the
	// cap, i.e. the cursor covers a prefix of the full result.
	Truncated bool
}

func NewLoader[T any]() *Loader[T] {
	return new(Loader[T])
}

// WithLookahead queries one row beyond the cap to learn whether the load
// was truncated. The extra row is discarded; it only feeds
// LoadResult.Truncated.
//
// IMPORTANT:
// Cannot be used together with WithUnlimited() or WithLimit(NoLimit).
func (l *Loader[T]) WithLookahead() *Loader[T] {
	if l == nil {
		l = new(Loader[T])
	}

	l.lookahead = true

	return l
}

// WithUnlimited loads every matching row without a cap.
//
// IMPORTANT:
// Cannot be used together with WithLookahead.
func (l *Loader[T]) WithUnlimited() *Loader[T] {
	if l == nil {
		l = new(Loader[T])
	}

	l.limit = NoLimit

	return l
}

// WithLimit sets the maximum number of loaded rows.
//
// IMPORTANT:
//   - NoLimit cannot be used together with WithLookahead.
//   - If the limit is not NoLimit, NormalizeLimit will be applied.
func (l *Loader[T]) WithLimit(limit int) *Loader[T] {
	if l == nil {
		l = new(Loader[T])
	}

	if limit == NoLimit {
		return l.WithUnlimited()
	}
	l.limit = NormalizeLimit(limit)

	return l
}

// WithSubstitutedSort resets previous orderings and applies the provided ones.
func (l *Loader[T]) WithSubstitutedSort(orderBy ...OrderBy) *Loader[T] {
	if l == nil {
		l = new(Loader[T])
	}

	l.sort = nil

	return l.WithSort(orderBy...)
}

// WithSort appends sort orderings without overwriting existing ones. A
// column named twice keeps only its last ordering, in last-named position.
func (l *Loader[T]) WithSort(orderBy ...OrderBy) *Loader[T] {
	if l == nil {
		l = new(Loader[T])
	}

	for _, o := range orderBy {
		idx := slices.IndexFunc(l.sort, func(processed OrderBy) bool {
			return processed.Column == o.Column
		})

		// Remove previous occurrence (avoid duplication).
		if idx != -1 {
			l.sort = slices.Delete(l.sort, idx, idx+1)
		}

		l.sort = append(l.sort, o)
	}

	return l
}

// GetSort returns the orderings that will be applied to the query.
func (l *Loader[T]) GetSort() Orderings {
	if l == nil {
		return nil
	}

	return l.sort
}

// IsUnlimited returns true if the limit equals NoLimit.
func (l *Loader[T]) IsUnlimited() bool {
	if l == nil {
		return false
	}

	return l.limit == NoLimit
}

// IsLookahead returns true if truncation detection is enabled.
func (l *Loader[T]) IsLookahead() bool {
	if l == nil {
		return false
	}

	return l.lookahead
}

// GetLimit returns the limit as stored: 0 when unset (DefaultLimit is
// substituted at load time), NoLimit for unlimited.
func (l *Loader[T]) GetLimit() int {
	if l == nil {
		return 0
	}

	return l.limit
}

// queryLimit returns the row count actually requested from the database:
// the normalized cap, plus one when lookahead is on.
func (l *Loader[T]) queryLimit() int {
	limit := l.GetLimit()
	if limit == NoLimit {
		return NoLimit
	}
	if limit == 0 {
		limit = DefaultLimit
	}

	return lo.Ternary(l.IsLookahead(), limit+1, limit)
}

func (l *Loader[T]) validate() error {
	if l == nil {
		return fmt.Errorf("loader is nil")
	}

	if l.limit == NoLimit && l.lookahead {
		return fmt.Errorf("cannot apply lookahead to an unlimited load")
	}

	return l.sort.validate()
}

// Load runs the query with the configured ordering and cap and returns the
// rows as a cursor focused on the first one. db carries the base query
// (table, joins, filters); Load only appends ORDER BY and LIMIT.
func (l *Loader[T]) Load(db *gorm.DB) (*LoadResult[T], error) {
	if l == nil {
		l = new(Loader[T])
	}

	if err := l.validate(); err != nil {
		return nil, fmt.Errorf("cannot load: %w", err)
	}

	q := l.sort.Apply(db)
	queryLimit := l.queryLimit()
	if queryLimit != NoLimit {
		q = q.Limit(queryLimit)
	}

	var rows []T
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load rows: %w", err)
	}

	applied := l.GetLimit()
	if applied == 0 {
		applied = DefaultLimit
	}

	// With lookahead the extra row proves there is more data; it is not
	// part of the requested window.
	truncated := l.lookahead && len(rows) > applied
	if truncated {
		rows = rows[:applied]
	}

	return &LoadResult[T]{
		Zipper:       FromSlice(rows),
		Loaded:       len(rows),
		AppliedLimit: applied,
		Truncated:    truncated,
	}, nil
}
