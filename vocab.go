package overpassql

// queryTypeKeywords names every identifier the grammar accepts as the head
// of a query_stmt (spec.md §4.3 grammar, query_type production). "nw",
// "nr", "wr" appear only in the query_type production, not in the spec's
// general reserved-word vocabulary (spec.md §4.2 rule 4) — kept as their
// own set rather than folded into the global keywords table in token.go so
// that table stays a literal transcription of the spec's closed list.
var queryTypeKeywords = map[string]bool{
	"node": true, "way": true, "rel": true, "relation": true, "nwr": true,
	"nw": true, "nr": true, "wr": true, "area": true, "is_in": true,
}

// blockKeywords names every identifier that can start a block_stmt
// (spec.md §4.3 grammar, block_stmt production).
var blockKeywords = map[string]bool{
	"union": true, "difference": true, "if": true, "foreach": true,
	"for": true, "complete": true, "retro": true, "compare": true,
}

// settingsKeys are accepted silently inside a settings header item; any
// other key is a warning, not an error (spec.md §4.3 "Settings header").
var settingsKeys = map[string]bool{
	"timeout": true, "maxsize": true, "bbox": true, "date": true,
	"diff": true, "out": true,
}

// outFormats are the recognized [out:...] values; anything else is a
// warning, not an error (spec.md §4.3 "Settings header").
var outFormats = map[string]bool{
	"json": true, "xml": true, "csv": true, "custom": true, "popup": true,
}

// parenFilterKeywords names the keyword-led paren_filter productions
// (spec.md §4.3 grammar, paren_filter production): bbox, around, poly,
// id_filter, area_filter, member_filter, date_filter, user_filter,
// pivot_filter.
var parenFilterKeywords = map[string]bool{
	"bbox": true, "around": true, "poly": true, "id": true, "area": true,
	"changed": true, "date": true, "user": true, "uid": true,
	"newer": true, "pivot": true, "is_in": true,
}
