package repositories

import (
	"reflect"
	"testing"
)

func TestSetClauseBuildsOnlySuppliedColumns(t *testing.T) {
	var set setClause
	set.add("status", "approved")
	set.add("price", 19.99)

	query, args := set.build("classes", int64(7))

	want := "UPDATE classes SET status = $1, price = $2 WHERE id = $3"
	if query != want {
		t.Errorf("query = %q, want %q", query, want)
	}

	wantArgs := []interface{}{"approved", 19.99, int64(7)}
	if !reflect.DeepEqual(args, wantArgs) {
		t.Errorf("args = %v, want %v", args, wantArgs)
	}
}

func TestSetClauseSingleColumn(t *testing.T) {
	var set setClause
	set.add("name", "Jane")

	query, args := set.build("users", int64(1))

	want := "UPDATE users SET name = $1 WHERE id = $2"
	if query != want {
		t.Errorf("query = %q, want %q", query, want)
	}
	if len(args) != 2 {
		t.Errorf("args = %d, want 2", len(args))
	}
}

func TestSetClauseEmpty(t *testing.T) {
	var set setClause
	if !set.empty() {
		t.Error("fresh setClause should be empty")
	}
	set.add("name", "x")
	if set.empty() {
		t.Error("setClause with one column should not be empty")
	}
}
