package disk

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	client "github.com/oshokin/disk-bundler/internal/client/disk"
	mock_client "github.com/oshokin/disk-bundler/internal/client/disk/mocks"
	"github.com/oshokin/disk-bundler/internal/config"
)

func newTestService(t *testing.T, cacheTTL time.Duration) (*ServiceImpl, *mock_client.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockClient := mock_client.NewMockClient(ctrl)

	cfg := &config.Config{
		PageLimit:              50,
		MaxConcurrentDownloads: 1,
	}

	service := &ServiceImpl{
		cfg:          cfg,
		diskClient:   mockClient,
		listingCache: NewListingCache(16, cacheTTL),
	}

	return service, mockClient
}

func makeResourcePage(start, count int, mediaType string) *client.PublicResourcesResponse {
	items := make([]*client.Resource, 0, count)

	for i := start; i < start+count; i++ {
		items = append(items, &client.Resource{
			Name:      fmt.Sprintf("file-%03d.mp3", i),
			Path:      fmt.Sprintf("/file-%03d.mp3", i),
			Type:      "file",
			MediaType: mediaType,
		})
	}

	return &client.PublicResourcesResponse{
		Type: "dir",
		Embedded: &client.ResourceList{
			Items:  items,
			Limit:  50,
			Offset: start,
		},
	}
}

func TestListItems_Pagination(t *testing.T) {
	t.Parallel()

	service, mockClient := newTestService(t, time.Hour)
	ctx := context.Background()

	// 125 items across 50-item pages: the short third page ends pagination.
	mockClient.EXPECT().
		GetPublicResources(ctx, "folder", 0, 50).
		Return(makeResourcePage(0, 50, "audio"), nil)
	mockClient.EXPECT().
		GetPublicResources(ctx, "folder", 50, 50).
		Return(makeResourcePage(50, 50, "audio"), nil)
	mockClient.EXPECT().
		GetPublicResources(ctx, "folder", 100, 50).
		Return(makeResourcePage(100, 25, "audio"), nil)

	items := service.ListItems(ctx, "folder", "")
	require.Len(t, items, 125)

	assert.Equal(t, "file-000.mp3", items[0].Name)
	assert.Equal(t, "file-124.mp3", items[124].Name)
}

func TestListItems_CacheHit(t *testing.T) {
	t.Parallel()

	service, mockClient := newTestService(t, time.Hour)
	ctx := context.Background()

	// The single expectation fails the test if a second round of requests is made.
	mockClient.EXPECT().
		GetPublicResources(ctx, "folder", 0, 50).
		Return(makeResourcePage(0, 10, "audio"), nil).
		Times(1)

	first := service.ListItems(ctx, "folder", "")
	second := service.ListItems(ctx, "folder", "")

	assert.Equal(t, first, second)
}

func TestListItems_MediaTypeFilter(t *testing.T) {
	t.Parallel()

	service, mockClient := newTestService(t, time.Hour)
	ctx := context.Background()

	page := makeResourcePage(0, 4, "audio")
	page.Embedded.Items[1].MediaType = "image"
	page.Embedded.Items[3].MediaType = "document"

	mockClient.EXPECT().
		GetPublicResources(ctx, "folder", 0, 50).
		Return(page, nil)

	items := service.ListItems(ctx, "folder", "audio")
	require.Len(t, items, 2)

	assert.Equal(t, "file-000.mp3", items[0].Name)
	assert.Equal(t, "file-002.mp3", items[1].Name)
}

func TestListItems_PartialOnPageError(t *testing.T) {
	t.Parallel()

	service, mockClient := newTestService(t, time.Hour)
	ctx := context.Background()

	mockClient.EXPECT().
		GetPublicResources(ctx, "folder", 0, 50).
		Return(makeResourcePage(0, 50, "audio"), nil)
	mockClient.EXPECT().
		GetPublicResources(ctx, "folder", 50, 50).
		Return(nil, fmt.Errorf("%w: %d", client.ErrUnexpectedHTTPStatus, 500))

	// Page 1 items only; no page-3 request is attempted.
	items := service.ListItems(ctx, "folder", "")
	assert.Len(t, items, 50)
}

func TestListItems_CacheExpiry(t *testing.T) {
	t.Parallel()

	service, mockClient := newTestService(t, 20*time.Millisecond)
	ctx := context.Background()

	mockClient.EXPECT().
		GetPublicResources(ctx, "folder", 0, 50).
		Return(makeResourcePage(0, 5, "audio"), nil).
		Times(2)

	first := service.ListItems(ctx, "folder", "")
	require.Len(t, first, 5)

	time.Sleep(50 * time.Millisecond)

	second := service.ListItems(ctx, "folder", "")
	assert.Len(t, second, 5)
}
