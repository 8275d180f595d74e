// Package api handles incoming HTTP requests, request validation, and
// response formatting for the page generation service. It acts as an
// adapter between external clients and the internal content service,
// translating HTTP concerns to generation operations.
package api
