package hatch

import (
	"fmt"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultMemoSize bounds a memo cache when MemoOpts.Size is not set.
const DefaultMemoSize = 4096

// MemoParser caches the outcome of a strategy per parse session and start
// position, so a rule retried by several alternatives at the same place is
// only parsed once (packrat parsing).
//
// Entries are keyed by the Cursor's ID. Two cursors sharing an ID must wrap
// the same tokens. The cache is safe for concurrent use by different
// cursors.
type MemoParser[T Token, V any] struct {
	elem  Parser[T, V]
	cache *lru.Cache[memoKey, memoEntry[V]]
}

// MemoOpts configures a MemoParser.
type MemoOpts struct {
	// Size is the maximum number of cached outcomes. Zero selects
	// DefaultMemoSize.
	Size int
}

type memoKey struct {
	session uuid.UUID
	pos     int
}

type memoEntry[V any] struct {
	value V
	err   error
	end   int
}

// Memo wraps elem with a bounded cache.
func Memo[T Token, V any](elem Parser[T, V], opts MemoOpts) *MemoParser[T, V] {
	mustNotBeNil("memoized parser", elem)

	size := opts.Size
	if size <= 0 {
		size = DefaultMemoSize
	}

	cache, err := lru.New[memoKey, memoEntry[V]](size)
	if err != nil {
		panic(fmt.Sprintf("hatch: memo cache: %v", err))
	}

	return &MemoParser[T, V]{elem: elem, cache: cache}
}

func (m *MemoParser[T, V]) Parse(c *Cursor[T]) (V, error) {
	key := memoKey{session: c.ID(), pos: c.Pos()}

	if entry, ok := m.cache.Get(key); ok {
		if c.debug() {
			c.log.WithField(LogFieldPos, key.pos).Debug("memo hit")
		}
		if entry.err == nil {
			c.seek(entry.end)
		}
		return entry.value, entry.err
	}

	v, err := Run(c, m.elem)
	m.cache.Add(key, memoEntry[V]{value: v, err: err, end: c.Pos()})
	return v, err
}

// Forget drops every entry of one parse session.
func (m *MemoParser[T, V]) Forget(session uuid.UUID) {
	for _, key := range m.cache.Keys() {
		if key.session == session {
			m.cache.Remove(key)
		}
	}
}

// Purge drops every entry.
func (m *MemoParser[T, V]) Purge() {
	m.cache.Purge()
}

// Len is the number of cached outcomes.
func (m *MemoParser[T, V]) Len() int {
	return m.cache.Len()
}
