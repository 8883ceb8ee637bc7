// Package server exposes the web surface: an index form for pasting a
// public Yandex.Disk folder link, a listing page with a media type filter,
// and download endpoints for single files and ZIP bundles.
package server
