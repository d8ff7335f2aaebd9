package database

import (
	"fmt"
	"strings"

	"github.com/brunovtr/pipecrm/internal/entity"
)

// BuildUpdate assembles a parameterized UPDATE covering exactly the fields
// present in the patch. Columns are examined in the order given by allowed,
// and each present field takes the next positional parameter; the row id is
// always the final parameter. A field counts as present when its value is
// neither nil nor an empty string, so a blank form value never clears a
// stored column.
//
// Returns entity.ErrNoFieldsToUpdate when the patch holds no usable field;
// no statement reaches the store in that case.
func BuildUpdate(table string, allowed []string, fields entity.Fields, id int64, returning string) (string, []any, error) {
	var set []string
	var args []any

	for _, col := range allowed {
		v, ok := fields[col]
		if !ok || !present(v) {
			continue
		}
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if len(set) == 0 {
		return "", nil, entity.ErrNoFieldsToUpdate
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		table, strings.Join(set, ", "), len(args), returning,
	)

	return query, args, nil
}

// Filter is one equality/comparison predicate appended to a listing query.
type Filter struct {
	Column string
	Op     string
	Value  any
}

// BuildSelect appends the filters to base as AND-conjoined positional
// predicates, in the order supplied, and closes with a deterministic
// ORDER BY. No filters means a full scan of the base query.
func BuildSelect(base string, filters []Filter, orderBy string) (string, []any) {
	var conds []string
	var args []any

	for _, f := range filters {
		args = append(args, f.Value)
		conds = append(conds, fmt.Sprintf("%s %s $%d", f.Column, f.Op, len(args)))
	}

	query := base
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY " + orderBy

	return query, args
}

func present(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case *string:
		return t != nil && *t != ""
	default:
		return true
	}
}
