package hatch

import (
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

///////////////////////////////////////////////////////////////////////////////
// Cursor
///////////////////////////////////////////////////////////////////////////////

// Cursor reads an immutable token sequence with mark/rewind support.
//
// A Cursor is owned by one parse call. Its only mutable state is the
// current position and the stack of saved positions pushed by Scoped, so
// restoring a position undoes every effect of a failed attempt.
type Cursor[T Token] struct {
	tokens []T
	pos    int
	marks  []int

	// last failure a total combinator swallowed, and where that attempt began
	stop    *ParseError
	stopPos int

	id  uuid.UUID
	log *logrus.Entry
}

// CursorOpts configures a Cursor.
type CursorOpts struct {
	// Logger receives debug traces of rewinds. Nil selects the package
	// logger, see SetDefaultLogger.
	Logger *logrus.Logger
	// ID identifies the parse session in logs and memo caches. The zero
	// value generates a random id.
	ID uuid.UUID
}

var _defaultLogger atomic.Pointer[logrus.Logger]

func init() {
	_defaultLogger.Store(newDefaultLogger())
}

func newDefaultLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.InfoLevel)
	return l
}

// SetDefaultLogger replaces the logger used by cursors created without
// one. Passing nil restores the built-in logger. It is safe to call while
// other goroutines are parsing.
func SetDefaultLogger(l *logrus.Logger) {
	if l == nil {
		l = newDefaultLogger()
	}
	_defaultLogger.Store(l)
}

// DefaultLogger returns the logger used by cursors created without one.
func DefaultLogger() *logrus.Logger {
	return _defaultLogger.Load()
}

// NewCursor wraps tokens. The slice must not be modified while the
// Cursor is in use.
func NewCursor[T Token](tokens []T, opts CursorOpts) *Cursor[T] {
	logger := opts.Logger
	if logger == nil {
		logger = DefaultLogger()
	}

	id := opts.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	c := &Cursor[T]{
		tokens: tokens,
		id:     id,
		log:    logger.WithField(LogFieldSession, id.String()),
	}

	if c.debug() {
		c.log.WithField("tokens", len(tokens)).Debug("cursor created")
	}

	return c
}

// Consume returns the token at the current position and advances past it.
// At the end of input it returns false and leaves the position unchanged.
func (c *Cursor[T]) Consume() (T, bool) {
	tok, ok := c.Peek(c.pos)
	if ok {
		c.pos++
	}
	return tok, ok
}

// Peek returns the token at an absolute position without moving the cursor.
func (c *Cursor[T]) Peek(pos int) (T, bool) {
	if pos < 0 || pos >= len(c.tokens) {
		var zero T
		return zero, false
	}
	return c.tokens[pos], true
}

// Current returns the token Consume would return next.
func (c *Cursor[T]) Current() (T, bool) {
	return c.Peek(c.pos)
}

// IsAtEnd reports whether every token has been consumed.
func (c *Cursor[T]) IsAtEnd() bool {
	return c.pos == len(c.tokens)
}

// Pos is the index of the next token to consume.
func (c *Cursor[T]) Pos() int { return c.pos }

// Depth is the number of scoped attempts currently open.
func (c *Cursor[T]) Depth() int { return len(c.marks) }

// Len is the total number of tokens.
func (c *Cursor[T]) Len() int { return len(c.tokens) }

// Remaining is the number of tokens not yet consumed.
func (c *Cursor[T]) Remaining() int { return len(c.tokens) - c.pos }

// ID identifies this parse session.
func (c *Cursor[T]) ID() uuid.UUID { return c.id }

// Logger returns the session-scoped log entry, for strategies that want to
// trace with the same fields.
func (c *Cursor[T]) Logger() *logrus.Entry { return c.log }

func (c *Cursor[T]) debug() bool {
	return c.log.Logger.IsLevelEnabled(logrus.DebugLevel)
}

func (c *Cursor[T]) mark() {
	c.marks = append(c.marks, c.pos)
}

func (c *Cursor[T]) commit() {
	c.marks = c.marks[:len(c.marks)-1]
}

func (c *Cursor[T]) rewind() {
	last := len(c.marks) - 1
	from := c.pos
	c.pos = c.marks[last]
	c.marks = c.marks[:last]

	if c.debug() && from != c.pos {
		c.log.WithFields(logrus.Fields{
			LogFieldFrom:  from,
			LogFieldPos:   c.pos,
			LogFieldDepth: last,
		}).Debug("rewound failed attempt")
	}
}

// noteStop records why a repetition or optional element stopped at pos.
// Combinators that never fail hide this failure from their caller, so
// ParseAll uses it to explain trailing input.
func (c *Cursor[T]) noteStop(pos int, err error) {
	c.stop, c.stopPos = Coerce(pos, err), pos
}

// stoppedAt returns the failure recorded by noteStop if the attempt began
// at pos.
func (c *Cursor[T]) stoppedAt(pos int) (*ParseError, bool) {
	if c.stop == nil || c.stopPos != pos {
		return nil, false
	}
	return c.stop, true
}

// seek moves to pos, which must lie within the token sequence. Only used
// to replay a memoized success.
func (c *Cursor[T]) seek(pos int) {
	if pos < 0 || pos > len(c.tokens) {
		panic("hatch: seek out of range")
	}
	c.pos = pos
}

///////////////////////////////////////////////////////////////////////////////
// Scoped attempts
///////////////////////////////////////////////////////////////////////////////

// Scoped runs attempt as one backtracking unit. On success the consumed
// tokens stay consumed. On failure the cursor is restored to the position
// it had before the call, including everything nested attempts consumed,
// and the error is returned untouched.
//
// Scoped is reentrant: nested calls form a stack and an inner failure only
// rewinds to the inner mark.
func Scoped[T Token, V any](c *Cursor[T], attempt func(*Cursor[T]) (V, error)) (V, error) {
	c.mark()
	depth := len(c.marks)

	v, err := attempt(c)

	if len(c.marks) != depth {
		panic("hatch: unbalanced scoped attempt")
	}

	if err != nil {
		c.rewind()
		var zero V
		return zero, err
	}

	c.commit()
	return v, nil
}

// Run parses one V with p inside its own scope.
func Run[T Token, V any](c *Cursor[T], p Parser[T, V]) (V, error) {
	return Scoped(c, p.Parse)
}

// Parse parses one V with its default strategy inside its own scope.
func Parse[T Token, V Parsable[T, V]](c *Cursor[T]) (V, error) {
	return Run(c, Default[T, V]())
}

// ParseAll parses tokens with p and requires that every token is consumed.
// Leftover input is reported as a Rejected failure on the first unconsumed
// token. When a repetition or optional element stopped at that token, the
// rejection is returned as an Alternative failure named after V whose
// causes are the element's failure and the end of input rejection.
func ParseAll[T Token, V any](tokens []T, p Parser[T, V], opts CursorOpts) (V, error) {
	c := NewCursor(tokens, opts)

	v, err := Scoped(c, func(c *Cursor[T]) (V, error) {
		v, err := p.Parse(c)
		if err != nil {
			return v, err
		}
		if tok, ok := c.Current(); ok {
			var zero V
			trailing := Rejected(c.Pos(), tok, EndOfInputName)
			if stop, ok := c.stoppedAt(c.Pos()); ok {
				return zero, FromAlternativeFailures(TypeName[V](), c.Pos(), []*ParseError{stop, trailing})
			}
			return zero, trailing
		}
		return v, nil
	})

	if c.debug() {
		entry := c.log.WithField(LogFieldPos, c.Pos())
		if err != nil {
			entry.WithError(err).Debug("parse failed")
		} else {
			entry.Debug("parse succeeded")
		}
	}

	return v, err
}
