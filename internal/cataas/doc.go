// Package cataas is a thin client for the cataas.com image service,
// the upstream collaborator that renders a cat picture with overlaid
// text.
//
// The client owns exactly two concerns: percent-encoding the wrapped
// fortune so it is safe as a URL path fragment, and issuing the outbound
// GET. The upstream response is treated as opaque — status, content type,
// and body are carried back verbatim with no interpretation, so the
// gateway can forward whatever the collaborator returned, including
// error statuses.
package cataas
