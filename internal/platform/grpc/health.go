// Package grpc holds client-side gRPC helpers shared by cosmos commands.
package grpc

import (
	"context"
	"errors"
	"time"

	gogrpc "google.golang.org/grpc"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

const (
	healthProbeTimeout  = time.Second
	healthInitialDelay  = 100 * time.Millisecond
	healthMaxRetryDelay = time.Second
)

// WaitForHealth polls the gRPC health service until service reports SERVING
// or ctx ends. Retry delays double up to one second.
func WaitForHealth(ctx context.Context, conn *gogrpc.ClientConn, service string, logf func(string, ...any)) error {
	if conn == nil {
		return errors.New("gRPC connection is not configured")
	}
	if logf == nil {
		logf = func(string, ...any) {}
	}

	client := grpc_health_v1.NewHealthClient(conn)
	delay := healthInitialDelay
	for {
		probeCtx, cancel := context.WithTimeout(ctx, healthProbeTimeout)
		resp, err := client.Check(probeCtx, &grpc_health_v1.HealthCheckRequest{Service: service})
		cancel()

		switch {
		case err != nil:
			logf("waiting for %s health: %v", conn.Target(), err)
		case resp.GetStatus() == grpc_health_v1.HealthCheckResponse_SERVING:
			return nil
		default:
			logf("waiting for %s health: status %s", conn.Target(), resp.GetStatus())
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay = min(delay*2, healthMaxRetryDelay)
	}
}
