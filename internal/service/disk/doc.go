// Package disk aggregates the Yandex.Disk public API client into the
// operations the web surface needs: cached folder listings, per-file
// download link resolution, and ZIP bundling of remote or local files.
package disk
