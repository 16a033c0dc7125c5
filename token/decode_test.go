package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var declTokens = []Token{Of(KInt), Ident("x"), Of(Assign), Number(3), Of(SemiColon)}

func TestFromJSON(t *testing.T) {
	t.Run("Parse_Success", func(t *testing.T) {
		data := []byte(`[
			"KInt",
			{"kind": "Identifier", "text": "x"},
			"Assign",
			{"kind": "LiteralInt", "value": 3},
			"SemiColon"
		]`)

		tokens, err := FromJSON(data)
		require.NoError(t, err)
		assert.Equal(t, declTokens, tokens)
	})

	t.Run("Parse_Empty", func(t *testing.T) {
		tokens, err := FromJSON([]byte(`[]`))
		require.NoError(t, err)
		assert.Empty(t, tokens)
	})

	t.Run("Parse_Malformed", func(t *testing.T) {
		_, err := FromJSON([]byte(`["KInt",`))
		assert.ErrorIs(t, err, ErrInvalidTokenStream)
	})

	t.Run("Parse_NotArray", func(t *testing.T) {
		_, err := FromJSON([]byte(`{"kind": "KInt"}`))
		assert.ErrorIs(t, err, ErrInvalidTokenStream)
	})

	t.Run("Parse_UnknownKind", func(t *testing.T) {
		_, err := FromJSON([]byte(`["KInt", "Walrus"]`))
		assert.ErrorIs(t, err, ErrUnknownTokenKind)
		assert.Contains(t, err.Error(), "token 1")
	})

	t.Run("Parse_MissingPayload", func(t *testing.T) {
		_, err := FromJSON([]byte(`["LiteralInt"]`))
		assert.ErrorIs(t, err, ErrInvalidTokenStream)

		_, err = FromJSON([]byte(`["Identifier"]`))
		assert.ErrorIs(t, err, ErrInvalidTokenStream)
	})

	t.Run("Parse_ValueNotNumber", func(t *testing.T) {
		_, err := FromJSON([]byte(`[{"kind": "LiteralInt", "value": "3"}]`))
		assert.ErrorIs(t, err, ErrInvalidTokenStream)
	})

	t.Run("Parse_FractionalValue", func(t *testing.T) {
		tokens, err := FromJSON([]byte(`[{"kind": "LiteralInt", "value": 3.7}]`))
		assert.ErrorIs(t, err, ErrInvalidTokenStream)
		assert.ErrorContains(t, err, "3.7")
		assert.Nil(t, tokens)
	})

	t.Run("Parse_NegativeValue", func(t *testing.T) {
		_, err := FromJSON([]byte(`[{"kind": "LiteralInt", "value": -1}]`))
		assert.ErrorIs(t, err, ErrInvalidTokenStream)
		assert.ErrorContains(t, err, "-1 is not a non-negative whole number")
		assert.NotContains(t, err.Error(), "overflows")
	})

	t.Run("Parse_Overflow", func(t *testing.T) {
		_, err := FromJSON([]byte(`[{"kind": "LiteralInt", "value": 4294967296}]`))
		assert.ErrorIs(t, err, ErrInvalidTokenStream)
		assert.ErrorContains(t, err, "4294967296 overflows")

		tokens, err := FromJSON([]byte(`[{"kind": "LiteralInt", "value": 4294967295}]`))
		require.NoError(t, err)
		assert.Equal(t, []Token{Number(4294967295)}, tokens)
	})
}

func TestFromYAML(t *testing.T) {
	t.Run("Parse_Success", func(t *testing.T) {
		data := []byte(`
- KInt
- {kind: Identifier, text: x}
- Assign
- kind: LiteralInt
  value: 3
- SemiColon
`)
		tokens, err := FromYAML(data)
		require.NoError(t, err)
		assert.Equal(t, declTokens, tokens)
	})

	t.Run("Parse_ZeroValue", func(t *testing.T) {
		tokens, err := FromYAML([]byte(`[{kind: LiteralInt, value: 0}]`))
		require.NoError(t, err)
		assert.Equal(t, []Token{Number(0)}, tokens)
	})

	t.Run("Parse_FractionalValue", func(t *testing.T) {
		tokens, err := FromYAML([]byte(`[{kind: LiteralInt, value: 3.7}]`))
		assert.ErrorIs(t, err, ErrInvalidTokenStream)
		assert.ErrorContains(t, err, "!!float")
		assert.Nil(t, tokens)
	})

	t.Run("Parse_NegativeValue", func(t *testing.T) {
		_, err := FromYAML([]byte(`[{kind: LiteralInt, value: -1}]`))
		assert.ErrorIs(t, err, ErrInvalidTokenStream)
		assert.ErrorContains(t, err, "-1 is not a non-negative whole number")
	})

	t.Run("Parse_QuotedValue", func(t *testing.T) {
		_, err := FromYAML([]byte(`[{kind: LiteralInt, value: "3"}]`))
		assert.ErrorIs(t, err, ErrInvalidTokenStream)
	})

	t.Run("Parse_UnknownKind", func(t *testing.T) {
		_, err := FromYAML([]byte(`[KInt, Walrus]`))
		assert.ErrorIs(t, err, ErrUnknownTokenKind)
	})

	t.Run("Parse_Malformed", func(t *testing.T) {
		_, err := FromYAML([]byte(`kind: KInt`))
		assert.ErrorIs(t, err, ErrInvalidTokenStream)
	})
}

func TestDecode(t *testing.T) {
	t.Run("InferFromExtension", func(t *testing.T) {
		tokens, err := Decode("tokens.yml", "", []byte(`[SemiColon]`))
		require.NoError(t, err)
		assert.Equal(t, []Token{Of(SemiColon)}, tokens)

		tokens, err = Decode("tokens.JSON", "", []byte(`["SemiColon"]`))
		require.NoError(t, err)
		assert.Equal(t, []Token{Of(SemiColon)}, tokens)
	})

	t.Run("ExplicitFormat", func(t *testing.T) {
		tokens, err := Decode("tokens.txt", "json", []byte(`["Comma"]`))
		require.NoError(t, err)
		assert.Equal(t, []Token{Of(Comma)}, tokens)
	})

	t.Run("UnsupportedFormat", func(t *testing.T) {
		_, err := Decode("tokens.txt", "", []byte(`x`))
		assert.ErrorIs(t, err, ErrInvalidTokenStream)
	})
}
