package chat

import (
	"fmt"
	"strings"

	"github.com/chatdf/chatdf/ent"
	"github.com/chatdf/chatdf/pkg/catalog"
	"github.com/chatdf/chatdf/pkg/models"
)

// BuildSystemPrompt renders the system prompt for a turn: one section per
// ready dataset with its schema, then dialect rules and tool guidance.
func BuildSystemPrompt(datasets []*ent.Dataset) string {
	var b strings.Builder

	b.WriteString("You are a data analyst assistant. You answer questions about the user's datasets by writing SQL and interpreting the results.\n\n")

	if len(datasets) == 0 {
		b.WriteString("No datasets are loaded yet. Ask the user for a dataset URL, or call load_dataset when they provide one.\n")
		return b.String()
	}

	b.WriteString("## Loaded datasets\n\n")
	// Columns already described on an earlier dataset (same name and type)
	// collapse to a reference, keeping the prompt small for wide schemas.
	seen := make(map[string]string)
	for _, ds := range datasets {
		fmt.Fprintf(&b, "### %s\n", ds.TableName)
		fmt.Fprintf(&b, "Source: %s\nRows: %d\n", ds.URL, ds.RowCount)
		columns := catalog.SchemaFromJSON(ds.Schema)
		if len(columns) > 0 {
			b.WriteString("Columns:\n")
			for _, col := range columns {
				key := col.Name + "|" + col.Type
				if ref, ok := seen[key]; ok {
					fmt.Fprintf(&b, "- %s: %s (same as %s)\n", col.Name, col.Type, ref)
					continue
				}
				b.WriteString(columnLine(ds, col))
			}
			for _, col := range columns {
				key := col.Name + "|" + col.Type
				if _, ok := seen[key]; !ok {
					seen[key] = ds.TableName + "." + col.Name
				}
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(`## SQL rules
- Write standard SQL in the DuckDB dialect. Query the tables listed above by name.
- Only SELECT statements are executed. Results are capped; add your own LIMIT for large outputs.
- Quote identifiers with double quotes when they contain uppercase or special characters.
- Dates parse with CAST(col AS DATE) or strptime; division by zero should be guarded with NULLIF.
- String comparison is case-sensitive; use ILIKE for case-insensitive matching.

## Tools
- execute_sql: run one SELECT query. On error you get an explanation; fix the query and retry.
- load_dataset: register a new dataset URL the user provides.
- create_chart: attach a chart specification to a previous query result.
- suggest_followups: propose up to three short follow-up questions at the end of your answer.

## Charts
Emit a chart only when the user asks for one or the result is clearly visual
(time series, rankings, distributions). Reference the query result with
execution_index; omit it to chart the most recent result.

## Answer style
Summarize findings in prose. Mention concrete numbers from the results. Do
not paste raw result tables; the interface renders them.
`)
	return b.String()
}

// columnLine renders one column description with only the parentheticals
// that are actually available for it.
func columnLine(ds *ent.Dataset, col models.SchemaColumn) string {
	var parts []string

	if len(col.SampleValues) > 0 {
		quoted := make([]string, len(col.SampleValues))
		for i, v := range col.SampleValues {
			quoted[i] = fmt.Sprintf("%q", v)
		}
		parts = append(parts, "samples: "+strings.Join(quoted, ", "))
	}
	if col.Stats != nil {
		if col.Stats.Min != nil && col.Stats.Max != nil {
			parts = append(parts, fmt.Sprintf("range: %g to %g", *col.Stats.Min, *col.Stats.Max))
		}
		if col.Stats.NUnique != nil {
			parts = append(parts, fmt.Sprintf("%d unique values", *col.Stats.NUnique))
		}
		if col.Stats.NullCount != nil && *col.Stats.NullCount > 0 {
			parts = append(parts, fmt.Sprintf("%d nulls", *col.Stats.NullCount))
		}
	}
	if desc, ok := ds.ColumnDescriptions[col.Name]; ok && desc != "" {
		parts = append(parts, desc)
	}

	line := fmt.Sprintf("- %s: %s", col.Name, col.Type)
	if len(parts) > 0 {
		line += " (" + strings.Join(parts, "; ") + ")"
	}
	return line + "\n"
}

