package disk

import (
	"context"
	"errors"
	"strings"

	client "github.com/oshokin/disk-bundler/internal/client/disk"
	"github.com/oshokin/disk-bundler/internal/logger"
)

// ResolveDownloadLink resolves a direct download URL for one file of a public folder.
// The path is normalized by stripping a single leading slash and sent otherwise
// unmodified. When the API answers with a non-success status the link is simply
// absent: the caller gets an empty string and a nil error. Transport failures
// propagate as errors.
func (s *ServiceImpl) ResolveDownloadLink(ctx context.Context, publicKey, filePath string) (string, error) {
	normalizedPath := strings.TrimPrefix(filePath, "/")

	href, err := s.diskClient.GetDownloadLink(ctx, publicKey, normalizedPath)
	if err != nil {
		if errors.Is(err, client.ErrUnexpectedHTTPStatus) {
			logger.Warnf(ctx,
				"No download link for '%s' in public folder '%s': %v",
				normalizedPath, publicKey, err)

			return "", nil
		}

		return "", err
	}

	return href, nil
}
