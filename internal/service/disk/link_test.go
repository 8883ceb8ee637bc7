package disk

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	client "github.com/oshokin/disk-bundler/internal/client/disk"
)

func TestResolveDownloadLink(t *testing.T) {
	t.Parallel()

	service, mockClient := newTestService(t, time.Hour)
	ctx := context.Background()

	// The leading slash is stripped before the path goes out.
	mockClient.EXPECT().
		GetDownloadLink(ctx, "folder", "music/track.mp3").
		Return("https://downloader.example.com/file?token=xyz", nil)

	href, err := service.ResolveDownloadLink(ctx, "folder", "/music/track.mp3")
	require.NoError(t, err)
	assert.Equal(t, "https://downloader.example.com/file?token=xyz", href)
}

func TestResolveDownloadLink_UnexpectedStatus(t *testing.T) {
	t.Parallel()

	service, mockClient := newTestService(t, time.Hour)
	ctx := context.Background()

	mockClient.EXPECT().
		GetDownloadLink(ctx, "folder", "gone.mp3").
		Return("", fmt.Errorf("%w: %d", client.ErrUnexpectedHTTPStatus, http.StatusNotFound))

	// An API non-success means the link is absent, not that the call failed.
	href, err := service.ResolveDownloadLink(ctx, "folder", "gone.mp3")
	require.NoError(t, err)
	assert.Empty(t, href)
}

func TestResolveDownloadLink_TransportError(t *testing.T) {
	t.Parallel()

	service, mockClient := newTestService(t, time.Hour)
	ctx := context.Background()

	transportErr := errors.New("connection refused")

	mockClient.EXPECT().
		GetDownloadLink(ctx, "folder", "track.mp3").
		Return("", transportErr)

	href, err := service.ResolveDownloadLink(ctx, "folder", "track.mp3")
	require.ErrorIs(t, err, transportErr)
	assert.Empty(t, href)
}
