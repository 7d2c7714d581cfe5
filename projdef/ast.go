package projdef

// definitionAST is the parse tree of a definition string: a list of
// "+key" or "+key=value[,value...]" parameters.
type definitionAST struct {
	Params []*param `parser:"@@*"`
}

// param is a single parameter. Values separated by commas or whitespace are
// collected in order, so "+towgs84=0,0,0" has three values and
// "+title= Google Mercator" has two.
type param struct {
	Key    string   `parser:"'+' @Ident"`
	Values []string `parser:"( '=' ( @( Number | Ident ) ( ','? @( Number | Ident ) )* )? )?"`
}
