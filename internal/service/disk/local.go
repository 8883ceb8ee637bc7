package disk

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"

	"github.com/mholt/archives"

	"github.com/oshokin/disk-bundler/internal/logger"
	"github.com/oshokin/disk-bundler/internal/utils"
)

// BuildLocalArchive bundles files from the media root directory into an
// in-memory ZIP. Paths are resolved against the media root, entries are
// stored under their base names, and nonexistent files are silently skipped.
func (s *ServiceImpl) BuildLocalArchive(ctx context.Context, filePaths []string) (*bytes.Buffer, error) {
	if len(filePaths) == 0 {
		return nil, ErrNoFilesSelected
	}

	diskPaths := make(map[string]string, len(filePaths))

	for _, filePath := range filePaths {
		// Leading separators would escape the media root through filepath.Join.
		relativePath := strings.TrimLeft(filePath, "/\\")
		fullPath := filepath.Join(s.cfg.MediaRoot, relativePath)

		exists, statErr := utils.IsFileExist(fullPath)
		if statErr != nil {
			logger.Warnf(ctx, "Skipping '%s': %v", relativePath, statErr)

			continue
		}

		if !exists {
			logger.Warnf(ctx, "Skipping '%s': file not found", relativePath)

			continue
		}

		diskPaths[fullPath] = filepath.Base(fullPath)
	}

	archiveFiles, err := archives.FilesFromDisk(ctx, nil, diskPaths)
	if err != nil {
		return nil, err
	}

	var buffer bytes.Buffer

	if err = (archives.Zip{}).Archive(ctx, &buffer, archiveFiles); err != nil {
		return nil, err
	}

	logger.Infof(ctx, "Local archive built: %d files", len(archiveFiles))

	return &buffer, nil
}
