// Package overpassql is a static syntax checker for OverpassQL, the query
// language used by the Overpass API over OpenStreetMap data.
//
// Given a query as a string, Checker.CheckSyntax lexes and parses it and
// reports whether it conforms to the grammar: a validity flag, ordered
// error and warning diagnostics each carrying a source line/column, and the
// token stream the lexer produced. It does not build an executable AST,
// evaluate queries, or resolve named sets — it only validates shape.
//
//	c := overpassql.NewChecker()
//	result := c.CheckSyntax(`node[amenity=restaurant];out;`)
//	if !result.Valid {
//	    for _, d := range result.Errors {
//	        fmt.Println(d)
//	    }
//	}
package overpassql
