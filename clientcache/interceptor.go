package clientcache

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// UnaryClientInterceptor returns a gRPC unary client interceptor that
// authenticates RPCs with the given credential pair through the cache.
//
// The interceptor adds the cached (or freshly refreshed) access token as
// "authorization: Bearer <token>" to the outgoing request metadata. If the
// token cannot be obtained, the RPC call is aborted with an error. Token
// refresh respects the RPC context's cancellation and deadline.
//
// Usage:
//
//	conn, err := grpc.NewClient(
//	    "server:9090",
//	    grpc.WithUnaryInterceptor(cache.UnaryClientInterceptor(apiKey, apiSecret)),
//	)
func (c *Cache) UnaryClientInterceptor(apiKey, apiSecret string) grpc.UnaryClientInterceptor {
	return func(
		ctx context.Context,
		method string,
		req, reply interface{},
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		opts ...grpc.CallOption,
	) error {
		// Use the RPC context for the refresh to respect cancellation and deadlines
		token, err := c.Token(ctx, apiKey, apiSecret)
		if err != nil {
			return fmt.Errorf("clientcache: failed to get token: %w", err)
		}

		// Add token to request metadata
		ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)

		return invoker(ctx, method, req, reply, cc, opts...)
	}
}

// StreamClientInterceptor returns a gRPC stream client interceptor that
// authenticates stream creation with the given credential pair through the
// cache.
//
// The interceptor adds the access token as "authorization: Bearer <token>" to
// the outgoing request metadata. If the token cannot be obtained, stream
// creation is aborted with an error.
//
// Usage:
//
//	conn, err := grpc.NewClient(
//	    "server:9090",
//	    grpc.WithStreamInterceptor(cache.StreamClientInterceptor(apiKey, apiSecret)),
//	)
func (c *Cache) StreamClientInterceptor(apiKey, apiSecret string) grpc.StreamClientInterceptor {
	return func(
		ctx context.Context,
		desc *grpc.StreamDesc,
		cc *grpc.ClientConn,
		method string,
		streamer grpc.Streamer,
		opts ...grpc.CallOption,
	) (grpc.ClientStream, error) {
		// Use the RPC context for the refresh to respect cancellation and deadlines
		token, err := c.Token(ctx, apiKey, apiSecret)
		if err != nil {
			return nil, fmt.Errorf("clientcache: failed to get token: %w", err)
		}

		// Add token to request metadata
		ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)

		return streamer(ctx, desc, cc, method, opts...)
	}
}
