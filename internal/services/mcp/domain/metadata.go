package domain

import (
	"context"

	"github.com/google/uuid"
	"github.com/louisbranch/cosmos/internal/platform/grpc/grpcmeta"
	"github.com/louisbranch/cosmos/internal/platform/timeouts"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// grpcCallTimeout caps the time for a single gRPC call from an MCP tool handler.
const grpcCallTimeout = timeouts.GRPCRequest

// newOutgoingContext attaches a fresh request id to the outgoing call.
func newOutgoingContext(ctx context.Context) (context.Context, string) {
	requestID := uuid.NewString()
	return metadata.AppendToOutgoingContext(ctx, grpcmeta.RequestIDHeader, requestID), requestID
}

// responseRequestID prefers the id echoed by the server.
func responseRequestID(sent string, header metadata.MD) string {
	if requestID := grpcmeta.FirstMetadataValue(header, grpcmeta.RequestIDHeader); requestID != "" {
		return requestID
	}
	return sent
}

// resultWithRequestID builds a tool result carrying the call's request id.
func resultWithRequestID(requestID string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Meta: map[string]any{grpcmeta.RequestIDHeader: requestID},
	}
}

// errorMessage returns the user-facing text for a gRPC error, preferring the
// localized message detail when the server sent one.
func errorMessage(err error) string {
	st, ok := status.FromError(err)
	if !ok {
		return err.Error()
	}
	for _, detail := range st.Details() {
		if localized, ok := detail.(*errdetails.LocalizedMessage); ok && localized.GetMessage() != "" {
			return localized.GetMessage()
		}
	}
	return st.Message()
}
