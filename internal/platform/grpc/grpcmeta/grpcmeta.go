// Package grpcmeta attaches request metadata and call logging to gRPC servers.
package grpcmeta

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/louisbranch/cosmos/internal/platform/requestctx"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	// RequestIDHeader carries the request correlation identifier.
	RequestIDHeader = "x-request-id"
	// LocaleHeader carries the caller's preferred locale for user messages.
	LocaleHeader = "x-cosmos-locale"
)

// Logf formats one log line, matching log.Printf.
type Logf func(format string, args ...any)

// Options configures the server interceptors.
type Options struct {
	// NewRequestID generates identifiers for calls that arrive without one.
	NewRequestID func() string
	// Logf receives one line per completed call. Nil uses log.Printf.
	Logf Logf
	// Now is the clock used for call durations.
	Now func() time.Time
}

func (o Options) withDefaults() Options {
	if o.NewRequestID == nil {
		o.NewRequestID = uuid.NewString
	}
	if o.Logf == nil {
		o.Logf = log.Printf
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// IsPrintableASCII reports whether value is non-empty printable ASCII.
func IsPrintableASCII(value string) bool {
	if value == "" {
		return false
	}
	for i := 0; i < len(value); i++ {
		if value[i] < 0x20 || value[i] > 0x7e {
			return false
		}
	}
	return true
}

// FirstMetadataValue returns the first printable ASCII value for key.
// Control characters are dropped so values are safe to log.
func FirstMetadataValue(md metadata.MD, key string) string {
	for _, value := range md.Get(key) {
		if IsPrintableASCII(value) {
			return value
		}
	}
	return ""
}

// UnaryServerInterceptor tags unary calls with request metadata and logs them.
func UnaryServerInterceptor(opts Options) grpc.UnaryServerInterceptor {
	opts = opts.withDefaults()
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		ctx, requestID := withRequestMetadata(ctx, opts.NewRequestID)
		if err := grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, requestID)); err != nil {
			return nil, status.Errorf(codes.Internal, "set response metadata: %v", err)
		}
		start := opts.Now()
		resp, err := handler(ctx, req)
		logCall(opts, info.FullMethod, requestID, start, err)
		return resp, err
	}
}

// StreamServerInterceptor tags streaming calls with request metadata and logs
// them once the stream ends.
func StreamServerInterceptor(opts Options) grpc.StreamServerInterceptor {
	opts = opts.withDefaults()
	return func(srv any, stream grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		ctx, requestID := withRequestMetadata(stream.Context(), opts.NewRequestID)
		if err := stream.SetHeader(metadata.Pairs(RequestIDHeader, requestID)); err != nil {
			return status.Errorf(codes.Internal, "set response metadata: %v", err)
		}
		start := opts.Now()
		err := handler(srv, &wrappedServerStream{ServerStream: stream, ctx: ctx})
		logCall(opts, info.FullMethod, requestID, start, err)
		return err
	}
}

type wrappedServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (w *wrappedServerStream) Context() context.Context {
	return w.ctx
}

func withRequestMetadata(ctx context.Context, newRequestID func() string) (context.Context, string) {
	md, _ := metadata.FromIncomingContext(ctx)
	requestID := FirstMetadataValue(md, RequestIDHeader)
	if requestID == "" {
		requestID = newRequestID()
	}
	ctx = requestctx.WithRequestID(ctx, requestID)
	if locale := FirstMetadataValue(md, LocaleHeader); locale != "" {
		ctx = requestctx.WithLocale(ctx, locale)
	}
	return ctx, requestID
}

// logCall writes one line per call. Client outcomes such as InvalidArgument
// and NotFound are reported by code only; server faults include the error.
func logCall(opts Options, method, requestID string, start time.Time, err error) {
	code := status.Code(err)
	duration := opts.Now().Sub(start)
	if isServerFault(code) {
		opts.Logf("grpc %s request_id=%s code=%s duration=%s error=%v", method, requestID, code, duration, err)
		return
	}
	opts.Logf("grpc %s request_id=%s code=%s duration=%s", method, requestID, code, duration)
}

func isServerFault(code codes.Code) bool {
	switch code {
	case codes.Unknown, codes.Internal, codes.DataLoss, codes.Unavailable, codes.Unimplemented:
		return true
	default:
		return false
	}
}
