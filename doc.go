// Package hatch is a backtracking parser-combinator core for token streams.
//
// A grammar is written as ordinary Go types. Each node type names its
// default strategy by implementing [Parsable]:
//
//	type Ident string
//
//	func (Ident) Parser() hatch.Parser[Token, Ident] {
//	    return hatch.Map(hatch.Expect(isIdentifier), func(t Token) Ident {
//	        return Ident(t.Text)
//	    })
//	}
//
// and larger nodes are composed from smaller ones with the combinators:
//   - [Optional]: zero or one element, never fails
//   - [Many]: greedy repetition, never fails
//   - [Indirect]: a boxed element, for nodes that contain themselves
//   - [Seq2], [Seq3], [Seq4]: strict sequences parsed as one atomic attempt
//   - [Choice]: ordered alternatives
//
// Every combinator accepts a [Pattern] through WithPattern, a named
// predicate checked after the element parsed. A value that parses but does
// not satisfy the pattern is rejected exactly like a structural failure.
//
// Parsing runs over a [Cursor]. Each attempt is wrapped in [Scoped]: when
// it fails the cursor is put back where the attempt started, so callers
// never see partially consumed input. [ParseAll] drives a whole token
// slice and rejects trailing tokens.
//
// Failures are [*ParseError] trees. Leaves report running out of tokens
// (Exhausted) or a value refused by a pattern (Rejected); inner nodes name
// the sequence or choice that failed. Render prints the tree with one tab
// per nesting level and errors.Is matches the tree against [ErrExhausted],
// [ErrRejected], [ErrSequence] and [ErrAlternative].
//
// Recursive grammars refer to their own node types through [Ref] or
// [Lazy], so strategies are only resolved when they run. [Memo] caches
// outcomes per cursor and position for grammars whose alternatives share
// prefixes, and a [Registry] exposes named entry rules to tools.
package hatch
