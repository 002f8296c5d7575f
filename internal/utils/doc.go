// Package utils provides general-purpose helper utilities used across the
// application: API key hashing, HTTP response writing, the resty-based HTTP
// client and trace ID generation.
package utils
