package disk

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"strings"
	"sync"

	"github.com/oshokin/disk-bundler/internal/logger"
)

// archiveEntry is one fetched file waiting to be written into the archive.
type archiveEntry struct {
	// name is the entry name inside the archive.
	name string
	// data holds the fetched file bytes.
	data []byte
	// ok reports whether the file was resolved and fetched successfully.
	ok bool
}

// BuildArchive fetches the selected files of a public folder and bundles them
// into an in-memory ZIP. Files that cannot be resolved or fetched are skipped.
// Fetches run concurrently up to the configured bound; entries are written
// strictly in input order. The returned buffer is read-ready even when no
// entry made it into the archive.
func (s *ServiceImpl) BuildArchive(ctx context.Context, publicKey string, filePaths []string) (*bytes.Buffer, error) {
	if len(filePaths) == 0 {
		return nil, ErrNoFilesSelected
	}

	entries := make([]archiveEntry, len(filePaths))

	maxConcurrent := s.cfg.MaxConcurrentDownloads

	// Sequential fetch (default behavior when maxConcurrent == 1).
	if maxConcurrent == 1 {
		s.fetchArchiveEntriesSequentially(ctx, publicKey, filePaths, entries)
	} else {
		s.fetchArchiveEntriesConcurrently(ctx, publicKey, filePaths, entries, maxConcurrent)
	}

	return s.writeArchive(ctx, entries)
}

// fetchArchiveEntriesSequentially fetches the selected files one by one.
func (s *ServiceImpl) fetchArchiveEntriesSequentially(
	ctx context.Context,
	publicKey string,
	filePaths []string,
	entries []archiveEntry,
) {
	for index, filePath := range filePaths {
		// Check if context was canceled - stop fetching remaining files.
		select {
		case <-ctx.Done():
			return
		default:
		}

		entries[index] = s.fetchArchiveEntry(ctx, publicKey, filePath)
	}
}

// fetchArchiveEntriesConcurrently fetches the selected files using a worker pool.
func (s *ServiceImpl) fetchArchiveEntriesConcurrently(
	ctx context.Context,
	publicKey string,
	filePaths []string,
	entries []archiveEntry,
	maxConcurrent int64,
) {
	// Create a semaphore channel to limit concurrent fetches.
	semaphore := make(chan struct{}, maxConcurrent)

	var waitGroup sync.WaitGroup

	for index, filePath := range filePaths {
		// Check if context was canceled - stop queueing new fetches.
		select {
		case <-ctx.Done():
			goto waitForCompletion
		default:
		}

		waitGroup.Add(1)

		go func(entryIndex int, currentFilePath string) {
			defer waitGroup.Done()

			// Acquire semaphore slot (blocks if all workers are busy).
			semaphore <- struct{}{}

			defer func() {
				// Release semaphore slot when done.
				<-semaphore
			}()

			entries[entryIndex] = s.fetchArchiveEntry(ctx, publicKey, currentFilePath)
		}(index, filePath)
	}

waitForCompletion:
	// Wait for all in-flight fetches to complete.
	waitGroup.Wait()
}

// fetchArchiveEntry resolves and downloads a single file of the selection.
// Failures are logged and reported through the entry's ok flag.
func (s *ServiceImpl) fetchArchiveEntry(ctx context.Context, publicKey, filePath string) archiveEntry {
	entryName := strings.TrimPrefix(filePath, "/")
	entry := archiveEntry{name: entryName}

	downloadURL, err := s.ResolveDownloadLink(ctx, publicKey, filePath)
	if err != nil {
		logger.Warnf(ctx, "Failed to resolve download link for '%s': %v", entryName, err)

		return entry
	}

	if downloadURL == "" {
		logger.Warnf(ctx, "Skipping '%s': no download link", entryName)

		return entry
	}

	body, err := s.diskClient.DownloadFromURL(ctx, downloadURL)
	if err != nil {
		logger.Warnf(ctx, "Failed to download '%s': %v", entryName, err)

		return entry
	}

	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		logger.Warnf(ctx, "Failed to read '%s': %v", entryName, err)

		return entry
	}

	entry.data = data
	entry.ok = true

	return entry
}

// writeArchive writes the fetched entries into a ZIP buffer in input order,
// honoring the configured archive size cap.
func (s *ServiceImpl) writeArchive(ctx context.Context, entries []archiveEntry) (*bytes.Buffer, error) {
	var (
		buffer       bytes.Buffer
		archive      = zip.NewWriter(&buffer)
		totalBytes   int64
		writtenCount int
		skippedCount int
		sizeCap      = s.cfg.ParsedMaxArchiveSize
	)

	for _, entry := range entries {
		if !entry.ok {
			skippedCount++

			continue
		}

		if sizeCap > 0 && totalBytes+int64(len(entry.data)) > sizeCap {
			logger.Warnf(ctx, "Skipping '%s': archive size cap of %d bytes reached", entry.name, sizeCap)

			skippedCount++

			continue
		}

		writer, err := archive.Create(entry.name)
		if err != nil {
			return nil, err
		}

		if _, err = writer.Write(entry.data); err != nil {
			return nil, err
		}

		totalBytes += int64(len(entry.data))
		writtenCount++
	}

	if err := archive.Close(); err != nil {
		return nil, err
	}

	logger.Infof(ctx, "Archive built: %d files, %d bytes, %d skipped", writtenCount, totalBytes, skippedCount)

	return &buffer, nil
}
