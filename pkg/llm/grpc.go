package llm

import (
	"context"
	"fmt"
	"io"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	llmv1 "github.com/chatdf/chatdf/proto"
)

// GRPCClient implements Client by calling the model sidecar over gRPC.
type GRPCClient struct {
	conn   *grpc.ClientConn
	client llmv1.LLMServiceClient
}

// NewGRPCClient creates a client connected to the sidecar at addr.
func NewGRPCClient(addr string) (*GRPCClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to LLM service at %s: %w", addr, err)
	}
	return &GRPCClient{
		conn:   conn,
		client: llmv1.NewLLMServiceClient(conn),
	}, nil
}

// Generate sends a conversation to the sidecar and returns a chunk stream.
func (c *GRPCClient) Generate(ctx context.Context, input *GenerateInput) (<-chan Chunk, error) {
	stream, err := c.client.Generate(ctx, toProtoRequest(input))
	if err != nil {
		return nil, fmt.Errorf("gRPC Generate call failed: %w", err)
	}

	ch := make(chan Chunk, 32)
	go func() {
		defer close(ch)
		for {
			resp, err := stream.Recv()
			if err == io.EOF {
				return
			}
			if err != nil {
				select {
				case ch <- &ErrorChunk{Message: err.Error(), Retryable: false}:
				case <-ctx.Done():
				}
				return
			}
			chunk := fromProtoResponse(resp)
			if chunk != nil {
				select {
				case ch <- chunk:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return ch, nil
}

// Close releases the gRPC connection.
func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

func toProtoRequest(input *GenerateInput) *llmv1.GenerateRequest {
	req := &llmv1.GenerateRequest{
		ConversationId: input.ConversationID,
		Model:          input.Model,
		Messages:       toProtoMessages(input.Messages),
		Tools:          toProtoTools(input.Tools),
	}
	return req
}

func toProtoMessages(msgs []ConversationMessage) []*llmv1.ConversationMessage {
	out := make([]*llmv1.ConversationMessage, len(msgs))
	for i, m := range msgs {
		pm := &llmv1.ConversationMessage{
			Role:       m.Role,
			Content:    m.Content,
			ToolCallId: m.ToolCallID,
			ToolName:   m.ToolName,
		}
		for _, tc := range m.ToolCalls {
			pm.ToolCalls = append(pm.ToolCalls, &llmv1.ToolCall{
				Id:        tc.ID,
				Name:      tc.Name,
				Arguments: tc.Arguments,
			})
		}
		out[i] = pm
	}
	return out
}

func toProtoTools(tools []ToolDefinition) []*llmv1.ToolDefinition {
	if len(tools) == 0 {
		return nil
	}
	out := make([]*llmv1.ToolDefinition, len(tools))
	for i, t := range tools {
		out[i] = &llmv1.ToolDefinition{
			Name:             t.Name,
			Description:      t.Description,
			ParametersSchema: t.ParametersSchema,
		}
	}
	return out
}

func fromProtoResponse(resp *llmv1.GenerateResponse) Chunk {
	switch c := resp.Content.(type) {
	case *llmv1.GenerateResponse_Text:
		return &TextChunk{Content: c.Text.Content}
	case *llmv1.GenerateResponse_Thinking:
		return &ThinkingChunk{Content: c.Thinking.Content}
	case *llmv1.GenerateResponse_ToolCall:
		return &ToolCallChunk{
			CallID:    c.ToolCall.CallId,
			Name:      c.ToolCall.Name,
			Arguments: c.ToolCall.Arguments,
		}
	case *llmv1.GenerateResponse_Usage:
		return &UsageChunk{
			InputTokens:  c.Usage.InputTokens,
			OutputTokens: c.Usage.OutputTokens,
			TotalTokens:  c.Usage.TotalTokens,
		}
	case *llmv1.GenerateResponse_Error:
		return &ErrorChunk{
			Message:   c.Error.Message,
			Code:      c.Error.Code,
			Retryable: c.Error.Retryable,
		}
	default:
		return nil
	}
}
