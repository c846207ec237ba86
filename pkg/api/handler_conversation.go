package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"

	"github.com/chatdf/chatdf/ent"
	"github.com/chatdf/chatdf/ent/conversation"
	"github.com/chatdf/chatdf/ent/dataset"
	"github.com/chatdf/chatdf/ent/message"
)

const (
	maxTitleLength    = 100
	maxBulkIDs        = 50
	previewLength     = 100
	snippetContext    = 50
	defaultSearchHits = 20
	maxSearchHits     = 100
)

// ownedConversation loads a conversation and verifies ownership.
func (s *Server) ownedConversation(ctx context.Context, userID, conversationID string) (*ent.Conversation, error) {
	conv, err := s.client.Conversation.Query().
		Where(conversation.IDEQ(conversationID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, errConversationNotFound
	}
	if err != nil {
		return nil, err
	}
	if conv.UserID != userID {
		return nil, errNotOwner
	}
	return conv, nil
}

// createConversationHandler handles POST /api/v1/conversations.
func (s *Server) createConversationHandler(c *echo.Context) error {
	var req struct {
		Title string `json:"title"`
	}
	_ = c.Bind(&req)

	conv, err := s.client.Conversation.Create().
		SetID(uuid.New().String()).
		SetUserID(currentUserID(c)).
		SetTitle(req.Title).
		Save(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, conv)
}

// ConversationSummary is one row of the conversation list.
type ConversationSummary struct {
	ID                 string    `json:"conversation_id"`
	Title              string    `json:"title"`
	IsPinned           bool      `json:"is_pinned"`
	MessageCount       int       `json:"message_count"`
	DatasetCount       int       `json:"dataset_count"`
	LastMessagePreview string    `json:"last_message_preview"`
	HasShareToken      bool      `json:"has_share_token"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// listConversationsHandler handles GET /api/v1/conversations.
// Pinned conversations sort first, then most recently updated.
func (s *Server) listConversationsHandler(c *echo.Context) error {
	ctx := c.Request().Context()
	userID := currentUserID(c)

	convs, err := s.client.Conversation.Query().
		Where(conversation.UserIDEQ(userID)).
		Order(ent.Desc(conversation.FieldIsPinned), ent.Desc(conversation.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return mapServiceError(err)
	}

	ids := make([]string, len(convs))
	for i, conv := range convs {
		ids[i] = conv.ID
	}
	msgCounts, err := s.countByConversation(ctx, ids, true)
	if err != nil {
		return mapServiceError(err)
	}
	dsCounts, err := s.countByConversation(ctx, ids, false)
	if err != nil {
		return mapServiceError(err)
	}

	summaries := make([]ConversationSummary, 0, len(convs))
	for _, conv := range convs {
		preview := ""
		last, err := s.client.Message.Query().
			Where(message.ConversationIDEQ(conv.ID)).
			Order(ent.Desc(message.FieldCreatedAt)).
			Select(message.FieldContent).
			First(ctx)
		if err == nil {
			preview = truncateRunes(last.Content, previewLength)
		} else if !ent.IsNotFound(err) {
			return mapServiceError(err)
		}
		summaries = append(summaries, ConversationSummary{
			ID:                 conv.ID,
			Title:              conv.Title,
			IsPinned:           conv.IsPinned,
			MessageCount:       msgCounts[conv.ID],
			DatasetCount:       dsCounts[conv.ID],
			LastMessagePreview: preview,
			HasShareToken:      conv.ShareToken != nil,
			CreatedAt:          conv.CreatedAt,
			UpdatedAt:          conv.UpdatedAt,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"conversations": summaries})
}

func (s *Server) countByConversation(ctx context.Context, ids []string, messages bool) (map[string]int, error) {
	var rows []struct {
		ConversationID string `json:"conversation_id"`
		Count          int    `json:"count"`
	}
	var err error
	if messages {
		err = s.client.Message.Query().
			Where(message.ConversationIDIn(ids...)).
			GroupBy(message.FieldConversationID).
			Aggregate(ent.Count()).
			Scan(ctx, &rows)
	} else {
		err = s.client.Dataset.Query().
			Where(dataset.ConversationIDIn(ids...)).
			GroupBy(dataset.FieldConversationID).
			Aggregate(ent.Count()).
			Scan(ctx, &rows)
	}
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.ConversationID] = row.Count
	}
	return counts, nil
}

// getConversationHandler handles GET /api/v1/conversations/:id.
func (s *Server) getConversationHandler(c *echo.Context) error {
	ctx := c.Request().Context()
	conv, err := s.ownedConversation(ctx, currentUserID(c), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	detail, err := s.conversationDetail(ctx, conv)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, detail)
}

// conversationDetail assembles the full conversation payload: the row
// itself plus messages in chronological order and all datasets.
func (s *Server) conversationDetail(ctx context.Context, conv *ent.Conversation) (map[string]interface{}, error) {
	messages, err := s.client.Message.Query().
		Where(message.ConversationIDEQ(conv.ID)).
		Order(ent.Asc(message.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	datasets, err := s.catalog.GetDatasets(ctx, conv.ID)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"conversation": conv,
		"messages":     messages,
		"datasets":     datasets,
	}, nil
}

// renameConversationHandler handles PATCH /api/v1/conversations/:id.
func (s *Server) renameConversationHandler(c *echo.Context) error {
	var req struct {
		Title string `json:"title"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	title := strings.TrimSpace(req.Title)
	if title == "" || len([]rune(title)) > maxTitleLength {
		return echo.NewHTTPError(http.StatusBadRequest, "title must be 1-100 characters")
	}

	ctx := c.Request().Context()
	conv, err := s.ownedConversation(ctx, currentUserID(c), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	conv, err = s.client.Conversation.UpdateOneID(conv.ID).
		SetTitle(title).
		Save(ctx)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, conv)
}

// pinConversationHandler handles PATCH /api/v1/conversations/:id/pin.
func (s *Server) pinConversationHandler(c *echo.Context) error {
	var req struct {
		IsPinned bool `json:"is_pinned"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	conv, err := s.ownedConversation(ctx, currentUserID(c), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	conv, err = s.client.Conversation.UpdateOneID(conv.ID).
		SetIsPinned(req.IsPinned).
		Save(ctx)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, conv)
}

// deleteConversationHandler handles DELETE /api/v1/conversations/:id.
// Messages and datasets go with it via the storage-level cascade.
func (s *Server) deleteConversationHandler(c *echo.Context) error {
	ctx := c.Request().Context()
	conv, err := s.ownedConversation(ctx, currentUserID(c), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	if err := s.client.Conversation.DeleteOneID(conv.ID).Exec(ctx); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}

// clearConversationsHandler handles DELETE /api/v1/conversations.
func (s *Server) clearConversationsHandler(c *echo.Context) error {
	n, err := s.client.Conversation.Delete().
		Where(conversation.UserIDEQ(currentUserID(c))).
		Exec(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]int{"deleted": n})
}

// bulkDeleteConversationsHandler handles POST /api/v1/conversations/bulk-delete.
func (s *Server) bulkDeleteConversationsHandler(c *echo.Context) error {
	var req struct {
		IDs []string `json:"ids"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if len(req.IDs) == 0 || len(req.IDs) > maxBulkIDs {
		return echo.NewHTTPError(http.StatusBadRequest, "ids must contain 1-50 entries")
	}

	n, err := s.client.Conversation.Delete().
		Where(
			conversation.IDIn(req.IDs...),
			conversation.UserIDEQ(currentUserID(c)),
		).
		Exec(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]int{"deleted": n})
}

// bulkPinConversationsHandler handles POST /api/v1/conversations/bulk-pin.
func (s *Server) bulkPinConversationsHandler(c *echo.Context) error {
	var req struct {
		IDs      []string `json:"ids"`
		IsPinned bool     `json:"is_pinned"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if len(req.IDs) == 0 || len(req.IDs) > maxBulkIDs {
		return echo.NewHTTPError(http.StatusBadRequest, "ids must contain 1-50 entries")
	}

	n, err := s.client.Conversation.Update().
		Where(
			conversation.IDIn(req.IDs...),
			conversation.UserIDEQ(currentUserID(c)),
		).
		SetIsPinned(req.IsPinned).
		Save(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]int{"updated": n})
}

// SearchHit is one result of the conversation message search.
type SearchHit struct {
	ConversationID string    `json:"conversation_id"`
	Title          string    `json:"title"`
	MessageID      string    `json:"message_id"`
	Role           string    `json:"role"`
	Snippet        string    `json:"snippet"`
	CreatedAt      time.Time `json:"created_at"`
}

// searchConversationsHandler handles GET /api/v1/conversations/search.
// Case-insensitive substring match over message content; each hit carries a
// snippet of the surrounding text.
func (s *Server) searchConversationsHandler(c *echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "q is required")
	}
	limit := defaultSearchHits
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= maxSearchHits {
			limit = n
		}
	}

	ctx := c.Request().Context()
	hits, err := s.client.Message.Query().
		Where(
			message.HasConversationWith(conversation.UserIDEQ(currentUserID(c))),
			message.ContentContainsFold(q),
		).
		Order(ent.Desc(message.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return mapServiceError(err)
	}

	titles := make(map[string]string)
	results := make([]SearchHit, 0, len(hits))
	for _, m := range hits {
		title, ok := titles[m.ConversationID]
		if !ok {
			conv, err := s.client.Conversation.Get(ctx, m.ConversationID)
			if err != nil {
				return mapServiceError(err)
			}
			title = conv.Title
			titles[m.ConversationID] = title
		}
		results = append(results, SearchHit{
			ConversationID: m.ConversationID,
			Title:          title,
			MessageID:      m.ID,
			Role:           string(m.Role),
			Snippet:        snippetAround(m.Content, q, snippetContext),
			CreatedAt:      m.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"results": results})
}

// forkConversationHandler handles POST /api/v1/conversations/:id/fork.
// The fork gets all messages up to and including the fork point plus copies
// of every dataset.
func (s *Server) forkConversationHandler(c *echo.Context) error {
	var req struct {
		MessageID string `json:"message_id"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.MessageID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message_id is required")
	}

	ctx := c.Request().Context()
	conv, err := s.ownedConversation(ctx, currentUserID(c), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}

	forkPoint, err := s.client.Message.Query().
		Where(
			message.IDEQ(req.MessageID),
			message.ConversationIDEQ(conv.ID),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return echo.NewHTTPError(http.StatusNotFound, "message not found in this conversation")
	}
	if err != nil {
		return mapServiceError(err)
	}

	messages, err := s.client.Message.Query().
		Where(
			message.ConversationIDEQ(conv.ID),
			message.CreatedAtLTE(forkPoint.CreatedAt),
		).
		Order(ent.Asc(message.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return mapServiceError(err)
	}
	datasets, err := s.catalog.GetDatasets(ctx, conv.ID)
	if err != nil {
		return mapServiceError(err)
	}

	title := "Fork of " + conv.Title
	if conv.Title == "" {
		title = "Fork"
	}
	fork, err := s.client.Conversation.Create().
		SetID(uuid.New().String()).
		SetUserID(conv.UserID).
		SetTitle(title).
		Save(ctx)
	if err != nil {
		return mapServiceError(err)
	}

	for _, m := range messages {
		create := s.client.Message.Create().
			SetID(uuid.New().String()).
			SetConversationID(fork.ID).
			SetRole(m.Role).
			SetContent(m.Content).
			SetInputTokens(m.InputTokens).
			SetOutputTokens(m.OutputTokens).
			SetCreatedAt(m.CreatedAt)
		if len(m.SQLExecutions) > 0 {
			create.SetSQLExecutions(m.SQLExecutions)
		}
		if m.Reasoning != nil {
			create.SetReasoning(*m.Reasoning)
		}
		if len(m.ToolCallTrace) > 0 {
			create.SetToolCallTrace(m.ToolCallTrace)
		}
		if err := create.Exec(ctx); err != nil {
			return mapServiceError(err)
		}
	}
	for _, ds := range datasets {
		create := s.client.Dataset.Create().
			SetID(uuid.New().String()).
			SetConversationID(fork.ID).
			SetURL(ds.URL).
			SetTableName(ds.TableName).
			SetRowCount(ds.RowCount).
			SetColumnCount(ds.ColumnCount).
			SetStatus(ds.Status).
			SetLoadedAt(ds.LoadedAt)
		if len(ds.Schema) > 0 {
			create.SetSchema(ds.Schema)
		}
		if ds.ErrorMessage != nil {
			create.SetErrorMessage(*ds.ErrorMessage)
		}
		if ds.FileSizeBytes != nil {
			create.SetFileSizeBytes(*ds.FileSizeBytes)
		}
		if len(ds.ColumnDescriptions) > 0 {
			create.SetColumnDescriptions(ds.ColumnDescriptions)
		}
		if err := create.Exec(ctx); err != nil {
			return mapServiceError(err)
		}
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"conversation":    fork,
		"messages_copied": len(messages),
		"datasets_copied": len(datasets),
	})
}

// truncateRunes cuts a string to at most n runes.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// snippetAround extracts the text surrounding the first case-insensitive
// occurrence of needle, with up to margin runes of context on each side.
func snippetAround(content, needle string, margin int) string {
	runes := []rune(content)
	idx, length := runeIndexFold(runes, []rune(needle))
	if idx < 0 {
		return truncateRunes(content, 2*margin)
	}
	start := idx - margin
	if start < 0 {
		start = 0
	}
	end := idx + length + margin
	if end > len(runes) {
		end = len(runes)
	}
	snippet := string(runes[start:end])
	if start > 0 {
		snippet = "…" + snippet
	}
	if end < len(runes) {
		snippet += "…"
	}
	return snippet
}

// runeIndexFold finds the first case-insensitive occurrence of needle in
// haystack, rune-wise. Returns the start index and match length, or -1.
func runeIndexFold(haystack, needle []rune) (int, int) {
	if len(needle) == 0 || len(needle) > len(haystack) {
		return -1, 0
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		match := true
		for j := range needle {
			if unicode.ToLower(haystack[i+j]) != unicode.ToLower(needle[j]) {
				match = false
				break
			}
		}
		if match {
			return i, len(needle)
		}
	}
	return -1, 0
}
