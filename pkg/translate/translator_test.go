package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEngineError(t *testing.T) {
	t.Run("unknown column lists available columns", func(t *testing.T) {
		raw := `Binder Error: Referenced column "pric" not found in FROM clause!`
		msg := EngineError(raw, []string{"price", "quantity"})
		assert.Contains(t, msg, `"pric" does not exist`)
		assert.Contains(t, msg, "price, quantity")
		assert.Contains(t, msg, "Technical details: "+raw)
	})

	t.Run("unknown column without column list", func(t *testing.T) {
		msg := EngineError(`Referenced column "x" not found`, nil)
		assert.Contains(t, msg, `"x" does not exist`)
		assert.NotContains(t, msg, "Available columns")
	})

	t.Run("unknown table", func(t *testing.T) {
		msg := EngineError(`Catalog Error: Table with name table9 does not exist!`, nil)
		assert.Contains(t, msg, `"table9" is not loaded`)
	})

	t.Run("syntax error", func(t *testing.T) {
		msg := EngineError(`Parser Error: syntax error at or near "FORM"`, nil)
		assert.Contains(t, msg, "syntax error")
	})

	t.Run("group by", func(t *testing.T) {
		msg := EngineError(`column "a" must appear in the GROUP BY clause or be used in an aggregate function`, nil)
		assert.Contains(t, msg, "GROUP BY")
	})

	t.Run("unrecognized error falls back to generic prose", func(t *testing.T) {
		raw := "something completely novel"
		msg := EngineError(raw, nil)
		assert.Contains(t, msg, "could not be executed")
		assert.Contains(t, msg, "Technical details: "+raw)
	})
}
