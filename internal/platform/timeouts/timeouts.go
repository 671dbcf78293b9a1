// Package timeouts defines shared timeout constants used across commands.
package timeouts

import "time"

// GRPCDial caps the wait for a gRPC peer to report SERVING.
const GRPCDial = 5 * time.Second

// GRPCRequest caps a single gRPC request made on behalf of an MCP tool call.
const GRPCRequest = 5 * time.Second

// Shutdown limits how long telemetry may flush during shutdown.
const Shutdown = 5 * time.Second
