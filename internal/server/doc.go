// Package server implements the MCP (Model Context Protocol) server for the
// gaze field-of-view classifier.
//
// This package provides a JSON-RPC 2.0 server that exposes the classifier,
// the scene renderer and the underlying geometry tests through the MCP
// protocol, so that MCP-compatible clients can check whether a driver is
// looking at an object.
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
// # Available Tools
//
// Classification:
//   - fov_classify: Bucket every object of a scene and label the driver
//   - fov_render: Classify and draw the scene as a PNG, optionally over a
//     camera frame named by "background"
//   - fov_generate_scene: Produce a random scene
//
// Geometry helpers:
//   - fov_angle_overlap: Wrap-aware angle range overlap test
//   - fov_boxes_overlap: Axis-aligned box overlap test
//
// Scenes are passed inline under "scene" or read from a file named by "path".
// Tunables not given in a call fall back to the server's settings.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// Lines that are not valid JSON get a -32700 parse error with a null id.
//
// # Usage
//
// The server is typically started by an MCP client through the gaze-fov
// binary's serve command:
//
//	srv := server.New(server.WithSettings(settings), server.WithLogger(logger))
//	if err := srv.Serve(os.Stdin, os.Stdout); err != nil {
//	    logger.Fatal(err)
//	}
package server
