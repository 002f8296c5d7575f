// Package server runs the pwdmngr HTTP server: startup, signal handling and
// graceful shutdown.
package server
