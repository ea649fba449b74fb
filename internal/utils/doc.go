// Package utils provides general-purpose helper utilities used across the
// server: request context keys, HMAC digests, password hashing, HTTP
// response writing, the outbound HTTP client, JWT issuing and validation,
// and identifier generation.
package utils
