// Package formatter serializes stat responses.
//
// This package is organized into:
// - wrapper.go: the response envelope and request/response pairing
// - json.go: JSON serialization
// - xml.go: XML serialization with proper escaping
//
// XML is written by hand so element order and number formatting stay fixed.
package formatter
