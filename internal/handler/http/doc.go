// Package http implements the REST API of the blog list.
//
// Every request passes through trace id assignment, access logging, gzip and
// CORS. Blog routes additionally run the two-stage authentication chain:
// tokenExtractor pulls the bearer token from the Authorization header and
// userExtractor verifies it and stores the resolved user in the request
// context. All failures are rendered as {"error": "..."} by the error mapper.
package http
