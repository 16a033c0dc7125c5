package token

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// Token streams are lists whose elements are either a bare kind name
//
//	["KInt", "SemiColon"]
//
// or an object with a kind and its payload
//
//	[{"kind": "Identifier", "text": "x"}, {"kind": "LiteralInt", "value": 3}]

// FromJSON decodes a JSON token stream.
func FromJSON(data []byte) ([]Token, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidTokenStream)
	}

	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, fmt.Errorf("%w: expected a JSON array, got %s", ErrInvalidTokenStream, root.Type)
	}

	var (
		tokens []Token
		err    error
		index  int
	)
	root.ForEach(func(_, elem gjson.Result) bool {
		var tok Token
		tok, err = fromJSONElem(elem)
		if err != nil {
			err = fmt.Errorf("token %d: %w", index, err)
			return false
		}
		tokens = append(tokens, tok)
		index++
		return true
	})
	if err != nil {
		return nil, err
	}

	return tokens, nil
}

func fromJSONElem(elem gjson.Result) (Token, error) {
	switch {
	case elem.Type == gjson.String:
		return fromFields(elem.String(), "", 0, false)
	case elem.IsObject():
		var n uint32
		value := elem.Get("value")
		if value.Exists() {
			if value.Type != gjson.Number {
				return Token{}, fmt.Errorf("%w: value must be a number", ErrInvalidTokenStream)
			}
			var err error
			if n, err = parseValue(value.Raw); err != nil {
				return Token{}, err
			}
		}
		return fromFields(elem.Get("kind").String(), elem.Get("text").String(), n, value.Exists())
	default:
		return Token{}, fmt.Errorf("%w: expected a kind name or an object, got %s", ErrInvalidTokenStream, elem.Type)
	}
}

// FromYAML decodes a YAML token stream.
func FromYAML(data []byte) ([]Token, error) {
	var raw []yamlToken
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTokenStream, err)
	}

	tokens := make([]Token, 0, len(raw))
	for i, r := range raw {
		tok, err := fromFields(r.Kind, r.Text, r.Value, r.HasValue)
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i, err)
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

type yamlToken struct {
	Kind     string
	Text     string
	Value    uint32
	HasValue bool
}

func (y *yamlToken) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		y.Kind = node.Value
		return nil
	}

	var fields struct {
		Kind  string     `yaml:"kind"`
		Text  string     `yaml:"text"`
		Value *yaml.Node `yaml:"value"`
	}
	if err := node.Decode(&fields); err != nil {
		return err
	}

	y.Kind, y.Text = fields.Kind, fields.Text
	if fields.Value == nil {
		return nil
	}
	if fields.Value.Kind != yaml.ScalarNode || fields.Value.ShortTag() != "!!int" {
		return fmt.Errorf("%w: value must be an integer, got %s", ErrInvalidTokenStream, fields.Value.ShortTag())
	}

	n, err := parseValue(fields.Value.Value)
	if err != nil {
		return err
	}
	y.Value, y.HasValue = n, true
	return nil
}

// parseValue reads an integer literal payload. Only whole numbers that fit
// in 32 bits are accepted.
func parseValue(raw string) (uint32, error) {
	n, err := strconv.ParseUint(raw, 0, 32)
	switch {
	case errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(raw, "-"):
		return 0, fmt.Errorf("%w: integer literal %s overflows", ErrInvalidTokenStream, raw)
	case err != nil:
		return 0, fmt.Errorf("%w: integer literal %s is not a non-negative whole number", ErrInvalidTokenStream, raw)
	}
	return uint32(n), nil
}

func fromFields(kind, text string, value uint32, hasValue bool) (Token, error) {
	k, err := ParseKind(kind)
	if err != nil {
		return Token{}, err
	}

	switch k {
	case Identifier, LiteralString:
		if k == Identifier && text == "" {
			return Token{}, fmt.Errorf("%w: identifier needs text", ErrInvalidTokenStream)
		}
		return Token{Kind: k, Text: text}, nil
	case LiteralInt:
		if !hasValue {
			return Token{}, fmt.Errorf("%w: integer literal needs a value", ErrInvalidTokenStream)
		}
		return Number(value), nil
	default:
		return Of(k), nil
	}
}

// Decode picks the decoder from format ("json" or "yaml"). An empty format
// is inferred from the extension of name.
func Decode(name, format string, data []byte) ([]Token, error) {
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	}

	switch format {
	case "json":
		return FromJSON(data)
	case "yaml", "yml":
		return FromYAML(data)
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", ErrInvalidTokenStream, format)
	}
}
