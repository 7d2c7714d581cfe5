package projdef

import (
	"fmt"
	"io"

	"github.com/alecthomas/participle/v2"
)

// Parser parses PROJ.4 style definition strings.
type Parser struct {
	parser *participle.Parser[definitionAST]
}

// NewParser creates a new definition parser.
func NewParser() (*Parser, error) {
	parser, err := participle.Build[definitionAST](
		participle.Lexer(DefinitionLexer),
		participle.Elide("Whitespace"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}
	return &Parser{parser: parser}, nil
}

// Parse parses a definition from a string.
func (p *Parser) Parse(input string) (*Definition, error) {
	ast, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDefinition, err)
	}
	return newDefinition(input, ast)
}

// ParseReader parses a definition from a reader.
func (p *Parser) ParseReader(r io.Reader) (*Definition, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition: %w", err)
	}
	return p.Parse(string(b))
}

var defaultParser = func() *Parser {
	p, err := NewParser()
	if err != nil {
		panic(fmt.Sprintf("error constructing definition parser: %s", err))
	}
	return p
}()

// Parse parses a definition string with a shared parser.
func Parse(input string) (*Definition, error) {
	return defaultParser.Parse(input)
}
