// Package server implements the HTTP surface of the fortune-cat gateway.
//
// Two routes exist on a chi router:
//
//	GET /    — static greeting
//	GET /cat — run the fortune generator, wrap and encode its output,
//	           fetch a cat image saying it, and stream the upstream
//	           response back verbatim
//
// Each request is independent and stateless: one child-process execution
// and one outbound network call, then the response. There is no retry,
// no caching, and no translation of upstream failures — the upstream
// status and body are forwarded to the caller as-is.
package server
