// Package cursor implements the keyset-pagination cursor used by the feed
// listings. A cursor marks the position of the last item a client has seen
// in the canonical order (created_at DESC, id DESC) and is round-tripped by
// the client as an opaque string.
package cursor

import (
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/campusbridge/campusbridge/internal/pkg/apperrors"
)

// Wire format: "<timestamp>|<uuid>", e.g.
// "2026-01-29T10:30:22.123456+00:00|550e8400-e29b-41d4-a716-446655440000".
// The layout always prints six fractional digits and a numeric UTC offset so
// that encoding is byte-deterministic for equal inputs.
const (
	separator  = "|"
	timeLayout = "2006-01-02T15:04:05.000000-07:00"
)

// Cursor is the ordering key of the last item emitted in a page. Timestamps
// are stored at microsecond precision (timestamptz), so the codec truncates
// to microseconds; the identifier breaks ties between equal timestamps.
type Cursor struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// New builds a cursor from an item's ordering key.
func New(createdAt time.Time, id uuid.UUID) Cursor {
	return Cursor{CreatedAt: createdAt.Truncate(time.Microsecond), ID: id}
}

// Encode serializes the cursor into its opaque wire form. Encoding is a pure
// function of the ordering key: equal inputs produce byte-identical output.
func (c Cursor) Encode() string {
	return c.CreatedAt.Format(timeLayout) + separator + c.ID.String()
}

// Decode parses a cursor string back into its ordering key. Any failure is a
// caller input error wrapping apperrors.ErrInvalidCursor, never an internal
// fault: a malformed cursor must surface as a 400, not reset pagination to
// page one.
func Decode(raw string) (Cursor, error) {
	parts := strings.Split(raw, separator)
	if len(parts) != 2 {
		return Cursor{}, fmt.Errorf("%w: expected two components", apperrors.ErrInvalidCursor)
	}

	createdAt, err := time.Parse(timeLayout, parts[0])
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: bad timestamp component: %v", apperrors.ErrInvalidCursor, err)
	}

	id, err := uuid.Parse(parts[1])
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: bad identifier component: %v", apperrors.ErrInvalidCursor, err)
	}

	return Cursor{CreatedAt: createdAt, ID: id}, nil
}

// Compare orders two cursors by the canonical feed order. It returns -1 when
// c sorts before other (i.e. c is more recent), +1 when it sorts after, and
// 0 when both keys are equal.
func (c Cursor) Compare(other Cursor) int {
	if c.CreatedAt.After(other.CreatedAt) {
		return -1
	}
	if c.CreatedAt.Before(other.CreatedAt) {
		return 1
	}
	switch {
	case c.ID.String() > other.ID.String():
		return -1
	case c.ID.String() < other.ID.String():
		return 1
	}
	return 0
}

// Apply narrows a base query to the page identified by the cursor. With a
// nil cursor the first limit items in canonical order are selected; with a
// cursor only items strictly after its position are selected:
//
//	created_at < t OR (created_at = t AND id < i)
//
// which is the keyset predicate that never skips or repeats rows under
// concurrent inserts ahead of the cursor. The canonical order and limit are
// always applied. Limit validation against upper bounds is the caller's
// concern, but a non-positive limit is rejected like a malformed cursor.
func Apply(q squirrel.SelectBuilder, cur *Cursor, limit int, createdAtCol, idCol string) (squirrel.SelectBuilder, error) {
	if limit <= 0 {
		return q, fmt.Errorf("%w: limit must be positive, got %d", apperrors.ErrInvalidCursor, limit)
	}

	if cur != nil {
		q = q.Where(squirrel.Or{
			squirrel.Lt{createdAtCol: cur.CreatedAt},
			squirrel.And{
				squirrel.Eq{createdAtCol: cur.CreatedAt},
				squirrel.Lt{idCol: cur.ID},
			},
		})
	}

	return q.
		OrderBy(createdAtCol+" DESC", idCol+" DESC").
		Limit(uint64(limit)), nil
}

// DecodeOptional decodes raw unless it is empty, in which case it returns a
// nil cursor for "first page".
func DecodeOptional(raw string) (*Cursor, error) {
	if raw == "" {
		return nil, nil
	}
	c, err := Decode(raw)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Next derives the cursor to hand back to the client after a page fetch. A
// full page (pageLen == limit) yields the last item's key; a short page
// means the traversal is complete and yields the empty string.
func Next(lastCreatedAt time.Time, lastID uuid.UUID, pageLen, limit int) string {
	if pageLen < limit {
		return ""
	}
	return New(lastCreatedAt, lastID).Encode()
}
