// Package service wires the MCP protocol transport to movie domain tools.
package service
