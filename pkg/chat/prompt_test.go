package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chatdf/chatdf/ent"
)

func schemaColumn(name, colType string, samples ...string) map[string]interface{} {
	return map[string]interface{}{
		"name":          name,
		"type":          colType,
		"sample_values": samples,
	}
}

func TestBuildSystemPrompt(t *testing.T) {
	t.Run("no datasets invites loading one", func(t *testing.T) {
		prompt := BuildSystemPrompt(nil)
		assert.Contains(t, prompt, "No datasets are loaded yet")
		assert.NotContains(t, prompt, "## Loaded datasets")
	})

	t.Run("renders schema with samples", func(t *testing.T) {
		ds := &ent.Dataset{
			TableName: "table1",
			URL:       "https://example.com/sales.csv",
			RowCount:  1200,
			Schema: []map[string]interface{}{
				schemaColumn("region", "VARCHAR", "EMEA", "APAC"),
				schemaColumn("revenue", "DOUBLE"),
			},
		}
		prompt := BuildSystemPrompt([]*ent.Dataset{ds})
		assert.Contains(t, prompt, "### table1")
		assert.Contains(t, prompt, "Rows: 1200")
		assert.Contains(t, prompt, `- region: VARCHAR (samples: "EMEA", "APAC")`)
		assert.Contains(t, prompt, "- revenue: DOUBLE")
	})

	t.Run("repeated columns collapse to a reference", func(t *testing.T) {
		first := &ent.Dataset{
			TableName: "table1",
			Schema: []map[string]interface{}{
				schemaColumn("region", "VARCHAR", "EMEA", "APAC"),
			},
		}
		second := &ent.Dataset{
			TableName: "table2",
			Schema: []map[string]interface{}{
				schemaColumn("region", "VARCHAR", "EMEA", "APAC"),
				schemaColumn("units", "BIGINT"),
			},
		}
		prompt := BuildSystemPrompt([]*ent.Dataset{first, second})
		assert.Contains(t, prompt, "- region: VARCHAR (same as table1.region)")
		assert.Contains(t, prompt, "- units: BIGINT")
	})

	t.Run("same name different type does not collapse", func(t *testing.T) {
		first := &ent.Dataset{
			TableName: "table1",
			Schema:    []map[string]interface{}{schemaColumn("id", "BIGINT")},
		}
		second := &ent.Dataset{
			TableName: "table2",
			Schema:    []map[string]interface{}{schemaColumn("id", "VARCHAR")},
		}
		prompt := BuildSystemPrompt([]*ent.Dataset{first, second})
		assert.NotContains(t, prompt, "same as")
	})

	t.Run("column descriptions are appended", func(t *testing.T) {
		ds := &ent.Dataset{
			TableName:          "table1",
			Schema:             []map[string]interface{}{schemaColumn("amt", "DOUBLE")},
			ColumnDescriptions: map[string]string{"amt": "net of tax"},
		}
		prompt := BuildSystemPrompt([]*ent.Dataset{ds})
		assert.Contains(t, prompt, "- amt: DOUBLE (net of tax)")
	})
}
