package dataeng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSelectLike(t *testing.T) {
	cases := []struct {
		name string
		sql  string
		want bool
	}{
		{"plain select", "SELECT * FROM table1", true},
		{"lowercase select", "select 1", true},
		{"cte", "WITH t AS (SELECT 1) SELECT * FROM t", true},
		{"parenthesized select", "(SELECT 1) UNION (SELECT 2)", true},
		{"leading line comment", "-- preamble\nSELECT 1", true},
		{"leading block comment", "/* preamble */ SELECT 1", true},
		{"insert", "INSERT INTO table1 VALUES (1)", false},
		{"update", "UPDATE table1 SET a = 1", false},
		{"drop", "DROP TABLE table1", false},
		{"empty", "   ", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsSelectLike(tc.sql))
		})
	}
}

func TestHasTopLevelLimit(t *testing.T) {
	t.Run("detects real limit", func(t *testing.T) {
		assert.True(t, HasTopLevelLimit("SELECT * FROM table1 LIMIT 10"))
		assert.True(t, HasTopLevelLimit("select * from table1 limit 10"))
		assert.True(t, HasTopLevelLimit("SELECT * FROM (SELECT * FROM table1 LIMIT 5) t"))
	})

	t.Run("ignores limit inside string literals", func(t *testing.T) {
		assert.False(t, HasTopLevelLimit(`SELECT 'no LIMIT here' FROM table1`))
		assert.False(t, HasTopLevelLimit(`SELECT 'it''s a LIMIT' FROM table1`))
		assert.False(t, HasTopLevelLimit(`SELECT "LIMIT" FROM table1`))
	})

	t.Run("ignores limit inside comments", func(t *testing.T) {
		assert.False(t, HasTopLevelLimit("SELECT 1 -- LIMIT 10\nFROM table1"))
		assert.False(t, HasTopLevelLimit("SELECT 1 /* LIMIT 10 */ FROM table1"))
	})

	t.Run("does not match words containing limit", func(t *testing.T) {
		assert.False(t, HasTopLevelLimit("SELECT unlimited FROM table1"))
		assert.False(t, HasTopLevelLimit("SELECT limits FROM table1"))
	})

	t.Run("invariant under inserting limit-bearing strings and comments", func(t *testing.T) {
		base := "SELECT a FROM table1"
		decorated := "SELECT a /* LIMIT */ FROM table1 WHERE b = 'LIMIT 99' -- LIMIT"
		assert.Equal(t, HasTopLevelLimit(base), HasTopLevelLimit(decorated))
	})
}

func TestApplyAutoLimit(t *testing.T) {
	t.Run("injects limit into bare select", func(t *testing.T) {
		got, injected := ApplyAutoLimit("SELECT * FROM table1", 10000)
		assert.True(t, injected)
		assert.Equal(t, "SELECT * FROM table1 LIMIT 10000", got)
	})

	t.Run("strips trailing semicolon before injecting", func(t *testing.T) {
		got, injected := ApplyAutoLimit("SELECT * FROM table1;", 10000)
		assert.True(t, injected)
		assert.Equal(t, "SELECT * FROM table1 LIMIT 10000", got)
	})

	t.Run("leaves existing limit alone", func(t *testing.T) {
		got, injected := ApplyAutoLimit("SELECT * FROM table1 LIMIT 5", 10000)
		assert.False(t, injected)
		assert.Equal(t, "SELECT * FROM table1 LIMIT 5", got)
	})

	t.Run("leaves non-select statements alone", func(t *testing.T) {
		got, injected := ApplyAutoLimit("DROP TABLE table1", 10000)
		assert.False(t, injected)
		assert.Equal(t, "DROP TABLE table1", got)
	})

	t.Run("string literal containing LIMIT still gets auto-limit", func(t *testing.T) {
		_, injected := ApplyAutoLimit(`SELECT 'LIMIT' FROM table1`, 10000)
		assert.True(t, injected)
	})
}
