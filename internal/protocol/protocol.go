// Package protocol defines the scalar types of the HTTP/2 wire protocol.
package protocol

// A StreamID identifies one stream within an HTTP/2 session.
// Stream 0 is the connection control stream.
type StreamID uint32

// A ByteCount in HTTP/2
type ByteCount int64
