// Package server implements an MCP (Model Context Protocol) server exposing
// the color engine as tools.
//
// The server speaks JSON-RPC 2.0 over stdin/stdout, one message per line.
// Supported methods are initialize, tools/list, tools/call, and ping;
// diagnostics go to stderr so stdout stays clean for the protocol.
//
// # Tools
//
//   - color_convert: full representation set (hex, RGB, HSL, RYB,
//     normalized forms, CSS name) for a color given in any representation
//   - color_harmony: ordered related-color palette for a base color
//   - color_nearest_name: closest CSS color name by CIE Lab distance
//   - palette_extract: dominant colors of an image file
//   - image_info: image file metadata
//
// # Error Handling
//
// Malformed requests return JSON-RPC error -32602, unknown methods -32601,
// and tool execution failures -32000 with the underlying error message in
// the data field. Engine parse and name-lookup failures surface as tool
// execution failures; the server never panics on bad input.
package server
