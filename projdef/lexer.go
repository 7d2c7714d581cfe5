package projdef

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// DefinitionLexer tokenizes PROJ.4 style definition strings such as
// "+proj=tmerc +lat_0=49 +lon_0=-2 +ellps=airy".
var DefinitionLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[\s]+`},

	// signed decimal with optional exponent; must come before Plus so that
	// "=+5" is a number
	{Name: "Number", Pattern: `[-+]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][-+]?[0-9]+)?`},

	{Name: "Plus", Pattern: `\+`},
	{Name: "Assign", Pattern: `=`},
	{Name: "Comma", Pattern: `,`},

	// parameter names and symbolic values: utm, us-ft, @null, EPSG:27700
	{Name: "Ident", Pattern: `[A-Za-z_@][A-Za-z0-9_.:/@-]*`},
})
