package storage

import (
	"context"
	"net/url"
	"sync"

	"github.com/docsbotai/dashboard/pkg/domain/interfaces"
	"github.com/docsbotai/dashboard/pkg/domain/model/errs"
	"github.com/docsbotai/dashboard/pkg/domain/model/upload"
	"github.com/m-mizutani/goerr/v2"
)

// MemoryClient issues unsigned placeholder URLs and records them. It is meant
// for local development and tests where no bucket is configured.
type MemoryClient struct {
	mu      sync.RWMutex
	baseURL string
	issued  []upload.SignedURL
}

var _ interfaces.StorageClient = &MemoryClient{}

func NewMemoryClient() *MemoryClient {
	return &MemoryClient{
		baseURL: "http://localhost/storage/",
	}
}

func (m *MemoryClient) SignedURL(ctx context.Context, object string, opts upload.SignOptions) (*upload.SignedURL, error) {
	if object == "" {
		return nil, goerr.New("object name is required", goerr.T(errs.TagInvalidRequest))
	}

	q := url.Values{}
	q.Set("method", opts.Method)
	q.Set("expires", opts.Expires.UTC().Format("20060102T150405Z"))
	if opts.ContentType != "" {
		q.Set("content-type", opts.ContentType)
	}

	signed := upload.SignedURL{
		URL:       m.baseURL + url.PathEscape(object) + "?" + q.Encode(),
		Object:    object,
		Method:    opts.Method,
		ExpiresAt: opts.Expires,
	}

	m.mu.Lock()
	m.issued = append(m.issued, signed)
	m.mu.Unlock()

	return &signed, nil
}

// Issued returns the URLs signed so far.
func (m *MemoryClient) Issued() []upload.SignedURL {
	m.mu.RLock()
	defer m.mu.RUnlock()

	issued := make([]upload.SignedURL, len(m.issued))
	copy(issued, m.issued)
	return issued
}

func (m *MemoryClient) Close(ctx context.Context) {
	// Nothing to do for development purposes
}
