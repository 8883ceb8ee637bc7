package disk

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/oshokin/disk-bundler/internal/config"
	http_transport "github.com/oshokin/disk-bundler/internal/transport/http"
	"github.com/oshokin/disk-bundler/internal/utils"
)

// Client defines the interface for interacting with the Yandex.Disk public API.
type Client interface {
	// DownloadFromURL downloads content from the specified URL.
	DownloadFromURL(ctx context.Context, url string) (io.ReadCloser, error)
	// GetBaseURL returns the base URL of the Yandex.Disk public API.
	GetBaseURL() string
	// GetDownloadLink resolves a short-lived direct download URL for one file
	// of a public folder. The path is sent exactly as given.
	GetDownloadLink(ctx context.Context, publicKey, filePath string) (string, error)
	// GetPublicResources retrieves one page of a public folder listing.
	GetPublicResources(ctx context.Context, publicKey string, offset, limit int) (*PublicResourcesResponse, error)
}

// ClientImpl implements the Client interface for interacting with the Yandex.Disk public API.
type ClientImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// baseURL is the base URL for API requests.
	baseURL string
	// httpClient is the HTTP client for making requests.
	httpClient *http.Client
}

const (
	// diskAPIResourcesURI is the URI path for the public folder listing endpoint.
	diskAPIResourcesURI = "resources"
	// diskAPIDownloadURI is the URI path for the download link endpoint.
	diskAPIDownloadURI = "resources/download"
)

// NewClient creates and returns a new instance of ClientImpl.
// It initializes the HTTP client with the OAuth transport chain and timeout
// from the provided configuration.
func NewClient(cfg *config.Config) (Client, error) {
	// Parse the base URL for the Yandex.Disk public API.
	baseURL, err := url.Parse(cfg.DiskAPIBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid host URL: %w", err)
	}

	timeout := cfg.ParsedRequestTimeout
	if timeout <= 0 {
		timeout = http_transport.DefaultTimeout
	}

	// Initialize the HTTP client with the custom transport chain and timeout.
	httpClient := &http.Client{
		Transport: http_transport.NewAuthTokenInjector(
			http_transport.NewUserAgentInjector(
				http_transport.NewLogTransport(http.DefaultTransport, 0),
				utils.NewSimpleUserAgentProvider(http_transport.DefaultUserAgent)),
			cfg.AuthToken),
		Timeout: timeout,
	}

	return &ClientImpl{
		cfg:        cfg,
		baseURL:    baseURL.String(),
		httpClient: httpClient,
	}, nil
}

// DownloadFromURL downloads content from the specified URL.
// The caller owns the returned body and must close it.
func (c *ClientImpl) DownloadFromURL(ctx context.Context, url string) (io.ReadCloser, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, err
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, err
	}

	if response.StatusCode != http.StatusOK {
		response.Body.Close() //nolint:gosec // Error on close is not critical here.

		return nil, fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, response.StatusCode)
	}

	return response.Body, nil
}

// GetBaseURL returns the base URL of the Yandex.Disk public API.
func (c *ClientImpl) GetBaseURL() string {
	return c.baseURL
}

// GetDownloadLink resolves a short-lived direct download URL for one file of a public folder.
func (c *ClientImpl) GetDownloadLink(ctx context.Context, publicKey, filePath string) (string, error) {
	query := url.Values{}
	query.Set("public_key", publicKey)
	query.Set("path", filePath)

	result, err := fetchJSONWithQuery[DownloadLinkResponse](c, ctx, diskAPIDownloadURI, query)
	if err != nil {
		return "", err
	}

	return result.Data.Href, nil
}

// GetPublicResources retrieves one page of a public folder listing.
func (c *ClientImpl) GetPublicResources(
	ctx context.Context,
	publicKey string,
	offset, limit int,
) (*PublicResourcesResponse, error) {
	query := url.Values{}
	query.Set("public_key", publicKey)
	query.Set("offset", strconv.Itoa(offset))
	query.Set("limit", strconv.Itoa(limit))

	result, err := fetchJSONWithQuery[PublicResourcesResponse](c, ctx, diskAPIResourcesURI, query)
	if err != nil {
		return nil, err
	}

	return result.Data, nil
}

//nolint:revive // Has no sense, it's cause Go doesn't allow struct methods to be generic.
func fetchJSONWithQuery[T any](
	c *ClientImpl,
	ctx context.Context,
	uri string,
	query url.Values,
) (*FetchJSONResult[T], error) {
	route, err := url.JoinPath(c.baseURL, uri)
	if err != nil {
		return nil, err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, route, http.NoBody)
	if err != nil {
		return nil, err
	}

	if query != nil {
		request.URL.RawQuery = query.Encode()
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, err
	}

	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return &FetchJSONResult[T]{
			Data:       nil,
			StatusCode: response.StatusCode,
		}, fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, response.StatusCode)
	}

	var result T
	if err = json.NewDecoder(response.Body).Decode(&result); err != nil {
		return &FetchJSONResult[T]{
			Data:       nil,
			StatusCode: response.StatusCode,
		}, err
	}

	return &FetchJSONResult[T]{
		Data:       &result,
		StatusCode: response.StatusCode,
	}, nil
}
