// Package disk provides a Go client for the public side of the Yandex.Disk REST API.
// It covers paginated listing of publicly shared folders, resolution of short-lived
// per-file download links, and raw content downloads from resolved links.
// Requests are authenticated with a service-level OAuth token injected by the
// transport chain, and every call is bounded by the configured request timeout.
package disk
