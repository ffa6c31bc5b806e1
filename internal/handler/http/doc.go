// Package http implements the HTTP transport layer of go-sub-merger.
//
// It exposes route wiring, the merge endpoint, and middleware used by the
// service. Cross-cutting concerns such as request tracing, access logging,
// response compression, and request deadlines are handled in this package
// before requests are delegated to the service layer.
package http
