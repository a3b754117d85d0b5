// Copyright © 2026 The curt authors

package term

import "strconv"

// Build converts a nested literal structure into a list term.  Strings
// are parsed as int atoms when possible and become symbol atoms
// otherwise; nested []interface{} groupings recurse into nested lists;
// pre-built *Term values (e.g. operators) pass through unchanged.  Build
// is purely structural with no grammar, precedence, or tokenizing.
func Build(source interface{}) *Term {
	switch src := source.(type) {
	case *Term:
		return src
	case int:
		return Int(src)
	case string:
		if x, err := strconv.Atoi(src); err == nil {
			return Int(x)
		}
		return Symbol(src)
	case []interface{}:
		cells := make([]*Term, len(src))
		for i := range src {
			cells[i] = Build(src[i])
			if cells[i].Type == TError {
				return cells[i]
			}
		}
		return List(cells)
	}
	return ErrorConditionf(TypeError, "cannot build a term from %T", source)
}
