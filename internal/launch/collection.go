package launch

import (
	"fmt"
	"sort"
	"time"

	"github.com/papapumpkin/launchplot/internal/record"
)

// Window is an inclusive time range. A zero bound leaves that side open.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t lies within the window.
func (w Window) Contains(t time.Time) bool {
	if !w.Start.IsZero() && t.Before(w.Start) {
		return false
	}
	if !w.End.IsZero() && t.After(w.End) {
		return false
	}
	return true
}

// Collection holds resolved launches in input order, index-aligned with the
// raw blocks they were parsed from. Callers append during a single parse pass
// and treat the collection as read-only afterwards.
type Collection struct {
	records []Record
	raw     []record.RawBlock
}

// NewCollection returns an empty Collection.
func NewCollection() *Collection {
	return &Collection{}
}

// Append adds r and its source block.
func (c *Collection) Append(r Record, raw record.RawBlock) {
	c.records = append(c.records, r)
	c.raw = append(c.raw, raw)
}

// Len returns the number of records.
func (c *Collection) Len() int { return len(c.records) }

// At returns the i-th record.
func (c *Collection) At(i int) Record { return c.records[i] }

// Raw returns the block the i-th record was parsed from.
func (c *Collection) Raw(i int) record.RawBlock { return c.raw[i] }

// Records returns a copy of all records in order.
func (c *Collection) Records() []Record {
	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}

// Times returns the launch times in order.
func (c *Collection) Times() []time.Time {
	out := make([]time.Time, len(c.records))
	for i, r := range c.records {
		out[i] = r.Time
	}
	return out
}

// Column projects every record through fn, keeping index alignment.
func (c *Collection) Column(fn func(Record) string) []string {
	out := make([]string, len(c.records))
	for i, r := range c.records {
		out[i] = fn(r)
	}
	return out
}

// Slice returns an independent copy of records [i, j).
func (c *Collection) Slice(i, j int) (*Collection, error) {
	if i < 0 || j > len(c.records) || i > j {
		return nil, fmt.Errorf("%w: [%d, %d) of %d", ErrIndexRange, i, j, len(c.records))
	}
	out := &Collection{
		records: make([]Record, j-i),
		raw:     make([]record.RawBlock, j-i),
	}
	copy(out.records, c.records[i:j])
	copy(out.raw, c.raw[i:j])
	return out, nil
}

// IndexRange returns the half-open index range of records with
// start < time <= end, assuming ascending time order. When no record falls
// in the range it returns (0, 0).
func (c *Collection) IndexRange(start, end time.Time) (i, j int) {
	n := len(c.records)
	i = sort.Search(n, func(k int) bool { return c.records[k].Time.After(start) })
	j = sort.Search(n, func(k int) bool { return c.records[k].Time.After(end) })
	if i >= j {
		return 0, 0
	}
	return i, j
}

// SortByTime stable-sorts records ascending by time, keeping input order
// among equal times.
func (c *Collection) SortByTime() {
	idx := make([]int, len(c.records))
	for k := range idx {
		idx[k] = k
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return c.records[idx[a]].Time.Before(c.records[idx[b]].Time)
	})

	records := make([]Record, len(idx))
	raw := make([]record.RawBlock, len(idx))
	for k, src := range idx {
		records[k] = c.records[src]
		raw[k] = c.raw[src]
	}
	c.records, c.raw = records, raw
}

// Merge concatenates parts into a new Collection in argument order.
func Merge(parts ...*Collection) *Collection {
	out := NewCollection()
	for _, p := range parts {
		if p == nil {
			continue
		}
		out.records = append(out.records, p.records...)
		out.raw = append(out.raw, p.raw...)
	}
	return out
}
