package server

// Server is the lifecycle contract returned by [NewServer].
//
// RunServer blocks until a stop signal arrives or the listener fails;
// Shutdown drains in-flight merges within the configured timeout.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
