package cursor

import (
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/campusbridge/campusbridge/internal/pkg/apperrors"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []struct {
		name      string
		createdAt time.Time
	}{
		{"utc with microseconds", time.Date(2026, 1, 29, 10, 30, 22, 123456000, time.UTC)},
		{"utc at midnight", time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)},
		{"positive offset", time.Date(2026, 3, 15, 8, 45, 1, 999999000, time.FixedZone("IST", 5*3600+30*60))},
		{"negative offset", time.Date(2026, 7, 4, 23, 59, 59, 1000, time.FixedZone("EST", -5*3600))},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id := uuid.New()
			c := New(tc.createdAt, id)

			decoded, err := Decode(c.Encode())
			require.NoError(t, err)
			require.True(t, decoded.CreatedAt.Equal(c.CreatedAt),
				"decoded %v, want %v", decoded.CreatedAt, c.CreatedAt)
			require.Equal(t, id, decoded.ID)
		})
	}
}

func TestEncodeDeterministic(t *testing.T) {
	ts := time.Date(2026, 1, 29, 10, 30, 22, 123456000, time.UTC)
	id := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")

	first := New(ts, id).Encode()
	second := New(ts, id).Encode()
	require.Equal(t, first, second)
	require.Equal(t, "2026-01-29T10:30:22.123456+00:00|550e8400-e29b-41d4-a716-446655440000", first)
}

func TestDecodeMalformed(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"missing separator", "2026-01-29T10:30:22.123456+00:00"},
		{"too many separators", "a|b|c"},
		{"bad timestamp", "not-a-time|550e8400-e29b-41d4-a716-446655440000"},
		{"unix millis timestamp", "1769681422123|550e8400-e29b-41d4-a716-446655440000"},
		{"bad uuid", "2026-01-29T10:30:22.123456+00:00|not-a-uuid"},
		{"swapped components", "550e8400-e29b-41d4-a716-446655440000|2026-01-29T10:30:22.123456+00:00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.raw)
			require.Error(t, err)
			require.True(t, errors.Is(err, apperrors.ErrInvalidCursor))
		})
	}
}

func TestDecodeOptionalEmptyMeansFirstPage(t *testing.T) {
	c, err := DecodeOptional("")
	require.NoError(t, err)
	require.Nil(t, c)

	_, err = DecodeOptional("garbage")
	require.ErrorIs(t, err, apperrors.ErrInvalidCursor)
}

func TestApplyWithoutCursor(t *testing.T) {
	base := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).
		Select("id", "created_at").From("posts").Where(squirrel.Eq{"is_deleted": false})

	q, err := Apply(base, nil, 10, "created_at", "id")
	require.NoError(t, err)

	sql, args, err := q.ToSql()
	require.NoError(t, err)
	require.Contains(t, sql, "ORDER BY created_at DESC, id DESC")
	require.Contains(t, sql, "LIMIT 10")
	require.NotContains(t, sql, "<")
	require.Len(t, args, 1)
}

func TestApplyWithCursor(t *testing.T) {
	ts := time.Date(2026, 1, 29, 10, 30, 22, 123456000, time.UTC)
	id := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
	cur := New(ts, id)

	base := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).
		Select("id", "created_at").From("posts")

	q, err := Apply(base, &cur, 5, "p.created_at", "p.id")
	require.NoError(t, err)

	sql, args, err := q.ToSql()
	require.NoError(t, err)
	require.Contains(t, sql, "(p.created_at < $1 OR (p.created_at = $2 AND p.id < $3))")
	require.Contains(t, sql, "ORDER BY p.created_at DESC, p.id DESC")
	require.Contains(t, sql, "LIMIT 5")
	// squirrel resolves driver.Valuer args when building, so the uuid is
	// bound in its text form; Postgres casts it back against the uuid column.
	require.Equal(t, []interface{}{cur.CreatedAt, cur.CreatedAt, cur.ID.String()}, args)
}

func TestApplyRejectsNonPositiveLimit(t *testing.T) {
	base := squirrel.Select("id").From("posts")

	for _, limit := range []int{0, -1, -50} {
		_, err := Apply(base, nil, limit, "created_at", "id")
		require.ErrorIs(t, err, apperrors.ErrInvalidCursor, "limit %d", limit)
	}
}

func TestNextCursorDerivation(t *testing.T) {
	ts := time.Date(2026, 1, 29, 10, 30, 22, 123456000, time.UTC)
	id := uuid.New()

	require.Equal(t, New(ts, id).Encode(), Next(ts, id, 5, 5), "full page yields a cursor")
	require.Empty(t, Next(ts, id, 3, 5), "short page ends the traversal")
	require.Empty(t, Next(ts, id, 0, 5), "empty page ends the traversal")
}

// snapshot is an in-memory stand-in for the posts table, ordered and paged
// with the same comparisons the SQL predicate compiles to.
type snapshot []Cursor

func (s snapshot) page(after *Cursor, limit int) []Cursor {
	sorted := append(snapshot{}, s...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Compare(sorted[j]) < 0
	})

	var out []Cursor
	for _, item := range sorted {
		if after != nil && item.Compare(*after) <= 0 {
			continue // at or ahead of the cursor position
		}
		out = append(out, item)
		if len(out) == limit {
			break
		}
	}
	return out
}

func makeSnapshot(n int, base time.Time) snapshot {
	items := make(snapshot, 0, n)
	for i := 0; i < n; i++ {
		// Pairs of items share a timestamp so the identifier tie-break is
		// actually exercised.
		ts := base.Add(time.Duration(i/2) * time.Second)
		items = append(items, New(ts, uuid.New()))
	}
	return items
}

func TestMonotonicExhaustiveness(t *testing.T) {
	base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	items := makeSnapshot(23, base)
	const limit = 4

	seen := map[uuid.UUID]bool{}
	var traversal []Cursor
	var cur *Cursor

	for {
		page := items.page(cur, limit)
		for _, item := range page {
			require.False(t, seen[item.ID], "item %s repeated across pages", item.ID)
			seen[item.ID] = true
		}
		traversal = append(traversal, page...)
		if len(page) < limit {
			break
		}
		last := page[len(page)-1]
		cur = &last
	}

	require.Len(t, traversal, len(items), "traversal must cover the full snapshot")
	for i := 1; i < len(traversal); i++ {
		require.Negative(t, traversal[i-1].Compare(traversal[i]),
			"traversal out of canonical order at index %d", i)
	}
}

func TestInsertionStability(t *testing.T) {
	base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	items := makeSnapshot(12, base)
	const limit = 5

	sorted := append([]Cursor{}, items...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Compare(sorted[j]) < 0 })

	page1 := items.page(nil, limit)
	require.Equal(t, sorted[:5], page1)

	// A newer item arrives between the page-1 and page-2 requests.
	newest := New(base.Add(time.Hour), uuid.New())
	grown := append(snapshot{}, items...)
	grown = append(grown, newest)

	last := page1[len(page1)-1]
	page2 := grown.page(&last, limit)

	require.Equal(t, sorted[5:10], page2, "page 2 must match the original snapshot")
	for _, item := range page2 {
		require.NotEqual(t, newest.ID, item.ID, "concurrent insert must not appear behind the cursor")
	}
}

func TestBasicPaginationScenario(t *testing.T) {
	// 12 posts, limit 5: pages of 5, 5 and 2, the last with no cursor.
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	items := make(snapshot, 0, 12)
	for i := 0; i < 12; i++ {
		items = append(items, New(base.Add(time.Duration(i)*time.Minute), uuid.New()))
	}
	const limit = 5

	page1 := items.page(nil, limit)
	require.Len(t, page1, 5)
	next1 := Next(page1[4].CreatedAt, page1[4].ID, len(page1), limit)
	require.NotEmpty(t, next1)
	require.Equal(t, page1[4].Encode(), next1, "cursor derives from item #5's ordering key")

	cur1, err := Decode(next1)
	require.NoError(t, err)
	page2 := items.page(&cur1, limit)
	require.Len(t, page2, 5)
	next2 := Next(page2[4].CreatedAt, page2[4].ID, len(page2), limit)
	require.NotEmpty(t, next2)

	cur2, err := Decode(next2)
	require.NoError(t, err)
	page3 := items.page(&cur2, limit)
	require.Len(t, page3, 2)
	require.Empty(t, Next(page3[1].CreatedAt, page3[1].ID, len(page3), limit))

	// No overlap anywhere.
	all := map[uuid.UUID]bool{}
	for _, p := range [][]Cursor{page1, page2, page3} {
		for _, item := range p {
			require.False(t, all[item.ID])
			all[item.ID] = true
		}
	}
	require.Len(t, all, 12)
}

func TestCompareTieBreak(t *testing.T) {
	ts := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	lo := New(ts, uuid.MustParse("00000000-0000-0000-0000-000000000001"))
	hi := New(ts, uuid.MustParse("ffffffff-ffff-ffff-ffff-ffffffffffff"))

	require.Equal(t, -1, hi.Compare(lo), "larger id sorts first on equal timestamps")
	require.Equal(t, 1, lo.Compare(hi))
	require.Equal(t, 0, lo.Compare(lo))

	later := New(ts.Add(time.Microsecond), uuid.MustParse("00000000-0000-0000-0000-000000000000"))
	require.Equal(t, -1, later.Compare(hi), "timestamp dominates the identifier")
}

func ExampleCursor_Encode() {
	ts := time.Date(2026, 1, 29, 10, 30, 22, 123456000, time.UTC)
	id := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
	fmt.Println(New(ts, id).Encode())
	// Output: 2026-01-29T10:30:22.123456+00:00|550e8400-e29b-41d4-a716-446655440000
}
