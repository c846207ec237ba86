package api

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/chatdf/chatdf/ent"
	"github.com/chatdf/chatdf/ent/message"
)

// exportConversationHandler handles GET /api/v1/conversations/:id/export.
// Returns the full conversation detail as a JSON download.
func (s *Server) exportConversationHandler(c *echo.Context) error {
	ctx := c.Request().Context()
	conv, err := s.ownedConversation(ctx, currentUserID(c), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	detail, err := s.conversationDetail(ctx, conv)
	if err != nil {
		return mapServiceError(err)
	}

	c.Response().Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", exportFilename(conv, "json")))
	return c.JSON(http.StatusOK, detail)
}

// exportConversationHTMLHandler handles GET /api/v1/conversations/:id/export/html.
// Renders a self-contained HTML document with the messages and their SQL
// result tables.
func (s *Server) exportConversationHTMLHandler(c *echo.Context) error {
	ctx := c.Request().Context()
	conv, err := s.ownedConversation(ctx, currentUserID(c), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	messages, err := s.client.Message.Query().
		Where(message.ConversationIDEQ(conv.ID)).
		Order(ent.Asc(message.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return mapServiceError(err)
	}

	var buf bytes.Buffer
	if err := exportTemplate.Execute(&buf, exportPage{
		Title:      exportTitle(conv),
		ExportedAt: time.Now().Format(time.RFC3339),
		Messages:   buildExportMessages(messages),
	}); err != nil {
		return mapServiceError(err)
	}

	c.Response().Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", exportFilename(conv, "html")))
	return c.HTML(http.StatusOK, buf.String())
}

func exportTitle(conv *ent.Conversation) string {
	if conv.Title != "" {
		return conv.Title
	}
	return "Conversation " + conv.ID
}

func exportFilename(conv *ent.Conversation, ext string) string {
	return "conversation-" + conv.ID + "." + ext
}

type exportPage struct {
	Title      string
	ExportedAt string
	Messages   []exportMessage
}

type exportMessage struct {
	Role      string
	Content   string
	CreatedAt string
	Results   []exportResult
}

type exportResult struct {
	Query     string
	Columns   []string
	Rows      [][]interface{}
	TotalRows interface{}
	Error     string
}

func buildExportMessages(messages []*ent.Message) []exportMessage {
	out := make([]exportMessage, 0, len(messages))
	for _, m := range messages {
		em := exportMessage{
			Role:      string(m.Role),
			Content:   m.Content,
			CreatedAt: m.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for _, exec := range m.SQLExecutions {
			result := exportResult{}
			result.Query, _ = exec["query"].(string)
			result.Error, _ = exec["error"].(string)
			result.TotalRows = exec["total_rows"]
			if cols, ok := exec["columns"].([]interface{}); ok {
				for _, col := range cols {
					if name, ok := col.(string); ok {
						result.Columns = append(result.Columns, name)
					}
				}
			}
			if rows, ok := exec["rows"].([]interface{}); ok {
				for _, row := range rows {
					if cells, ok := row.([]interface{}); ok {
						result.Rows = append(result.Rows, cells)
					}
				}
			}
			em.Results = append(em.Results, result)
		}
		out = append(out, em)
	}
	return out
}

var exportTemplate = template.Must(template.New("export").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; max-width: 56rem; margin: 2rem auto; padding: 0 1rem; color: #1a1a1a; }
.message { margin: 1.5rem 0; padding: 1rem; border-radius: 8px; }
.user { background: #eef2ff; }
.assistant { background: #f6f6f6; }
.role { font-weight: bold; font-size: 0.8rem; text-transform: uppercase; color: #666; }
.time { font-size: 0.75rem; color: #999; float: right; }
.content { white-space: pre-wrap; margin-top: 0.5rem; }
table { border-collapse: collapse; margin: 0.75rem 0; font-size: 0.85rem; }
th, td { border: 1px solid #ccc; padding: 0.25rem 0.5rem; text-align: left; }
th { background: #e8e8e8; }
code.sql { display: block; background: #222; color: #eee; padding: 0.5rem; border-radius: 4px; margin: 0.5rem 0; white-space: pre-wrap; }
.error { color: #b00020; }
footer { margin-top: 2rem; font-size: 0.75rem; color: #999; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{range .Messages}}
<div class="message {{.Role}}">
<span class="time">{{.CreatedAt}}</span>
<div class="role">{{.Role}}</div>
<div class="content">{{.Content}}</div>
{{range .Results}}
<code class="sql">{{.Query}}</code>
{{if .Error}}<p class="error">{{.Error}}</p>{{else}}
<table>
<tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>{{end}}
</table>
<p>{{.TotalRows}} rows total</p>
{{end}}
{{end}}
</div>
{{end}}
<footer>Exported {{.ExportedAt}}</footer>
</body>
</html>
`))
