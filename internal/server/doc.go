// Package server implements the MCP (Model Context Protocol) server for the
// color tools.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// Messages under notifications/ are accepted and never answered.
//
// # Available Tools
//
// Conversion filters, dispatched through a filters.Collection:
//   - color_to_rgb: hex or hsl to rgb
//   - color_to_hex: rgb or hsl to hex
//   - color_to_hsl: hex or rgb to hsl
//   - color_extract: read one channel
//   - color_parse: every notation and channel of one color
//
// Image operations:
//   - color_sample: color of one pixel
//   - color_palette: quantized dominant colors
//   - color_swatch: solid PNG of a color
//
// A filter that does not recognize its input answers with a normal result
// whose value is null and has_value is false.
//
// # Error Handling
//
//   - -32700: the line is not JSON
//   - -32601: unknown method
//   - -32602: unknown tool or undecodable arguments
//   - -32000: the tool ran and failed (missing file, bad coordinates, ...)
//
// # Logging
//
// Diagnostics go to the zap logger passed to New. Nothing but protocol
// messages is ever written to the output stream.
//
//	srv := server.New(server.Config{Version: version}, logger)
//	if err := srv.Serve(os.Stdin, os.Stdout); err != nil {
//	    logger.Fatal("server failed", zap.Error(err))
//	}
package server
