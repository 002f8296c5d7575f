// Package http implements the HTTP transport layer of pwdmngr.
//
// It exposes the /insert, /query and /update routes, which take
// form-encoded bodies, and the middleware in front of them: panic recovery,
// request tracing, access logging, response compression and API-key
// authentication. Service errors are translated into the plain-text
// messages existing clients expect.
package http
