package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateURL(t *testing.T) {
	valid := []string{
		"https://example.com/data.parquet",
		"http://data.example.org/sales.csv",
		"https://example.com/files/q1.csv.gz?token=abc",
	}
	for _, u := range valid {
		assert.NoError(t, ValidateURL(u), u)
	}

	invalid := map[string]string{
		"empty":          "",
		"whitespace":     "https://example.com/my file.csv",
		"file scheme":    "file:///etc/passwd",
		"ftp scheme":     "ftp://example.com/data.csv",
		"bare scheme":    "https://",
		"no scheme":      "example.com/data.csv",
		"embedded break": "https://example.com/a\nb.csv",
	}
	for name, u := range invalid {
		assert.Error(t, ValidateURL(u), name)
	}
}

func TestTableNamePattern(t *testing.T) {
	assert.True(t, tableNamePattern.MatchString("table1"))
	assert.True(t, tableNamePattern.MatchString("_sales_2024"))
	assert.False(t, tableNamePattern.MatchString("1table"))
	assert.False(t, tableNamePattern.MatchString("sales report"))
	assert.False(t, tableNamePattern.MatchString("drop;table"))
	assert.False(t, tableNamePattern.MatchString(""))
}
