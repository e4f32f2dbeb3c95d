package server

// Server defines the lifecycle contract of the transport server.
//
// [RunServer] blocks until the server stops, either because a termination
// signal arrived or because it failed to serve.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown() error
}
