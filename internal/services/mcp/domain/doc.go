// Package domain translates MCP tool calls into movie catalog queries.
//
// Each tool maps one-to-one onto a movie.v1 RPC and returns a structured
// result that MCP clients can render.
package domain
