package repositories

import (
	"fmt"
	"strings"
)

// setClause accumulates columns for a partial UPDATE. Only columns that were
// actually supplied end up in the statement, so unspecified fields keep
// their stored values.
type setClause struct {
	cols []string
	args []interface{}
}

// add appends a column assignment with a positional placeholder
func (s *setClause) add(column string, value interface{}) {
	s.args = append(s.args, value)
	s.cols = append(s.cols, fmt.Sprintf("%s = $%d", column, len(s.args)))
}

// empty reports whether no assignments were added
func (s *setClause) empty() bool {
	return len(s.cols) == 0
}

// build renders "SET ..." and returns the args with the extra value appended
// as the last placeholder (used for the WHERE id = $n argument).
func (s *setClause) build(table string, idArg interface{}) (string, []interface{}) {
	args := append(s.args, idArg)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d",
		table, strings.Join(s.cols, ", "), len(args))
	return query, args
}
