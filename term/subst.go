// Copyright © 2026 The curt authors

package term

// Replace returns a new term in which every subterm structurally equal to
// target has been replaced by value.  Replace is pure: v is never mutated,
// and unchanged subtrees may be shared with the result.  Replacement is
// total (no occurrence of target survives) with one scoping exception: a
// constructed lambda whose parameter list contains target re-binds the
// name, so its body is left alone.  Parameter lists are never rewritten.
func (v *Term) Replace(target, value *Term) *Term {
	if v.Equal(target) {
		return value
	}
	switch v.Type {
	case TList:
		if len(v.Cells) == 0 {
			return v
		}
		return List(replaceCells(v.Cells, target, value))
	case TLambda:
		params := v.Cells[0]
		for _, p := range params.Cells {
			if p.Equal(target) {
				return v
			}
		}
		return Lambda(params, v.Cells[1].Replace(target, value))
	case TOperator:
		if len(v.Cells) == 0 {
			return v
		}
		return &Term{
			Type:  TOperator,
			Op:    v.Op,
			Cells: replaceCells(v.Cells, target, value),
		}
	default:
		return v
	}
}

func replaceCells(cells []*Term, target, value *Term) []*Term {
	out := make([]*Term, len(cells))
	for i := range cells {
		out[i] = cells[i].Replace(target, value)
	}
	return out
}
