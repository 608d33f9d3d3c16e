package storage

import (
	"context"

	"cloud.google.com/go/storage"
	"github.com/docsbotai/dashboard/pkg/domain/interfaces"
	"github.com/docsbotai/dashboard/pkg/domain/model/errs"
	"github.com/docsbotai/dashboard/pkg/domain/model/upload"
	"github.com/docsbotai/dashboard/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/option"
)

type Client struct {
	client         *storage.Client
	bucket         string
	prefix         string
	googleAccessID string
}

var _ interfaces.StorageClient = &Client{}

type Option func(*Client)

// WithPrefix prepends prefix to every object name.
func WithPrefix(prefix string) Option {
	return func(c *Client) {
		c.prefix = prefix
	}
}

// WithGoogleAccessID sets the service account that signs URLs. When empty, the
// library detects it from the ambient credentials.
func WithGoogleAccessID(id string) Option {
	return func(c *Client) {
		c.googleAccessID = id
	}
}

func New(ctx context.Context, bucket string, opts []Option, clientOpts ...option.ClientOption) (*Client, error) {
	client, err := storage.NewClient(ctx, clientOpts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage client", goerr.T(errs.TagService))
	}

	c := &Client{
		client: client,
		bucket: bucket,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// SignedURL issues a V4 signed URL for object.
func (x *Client) SignedURL(ctx context.Context, object string, opts upload.SignOptions) (*upload.SignedURL, error) {
	objectName := x.prefix + object

	signOpts := &storage.SignedURLOptions{
		Scheme:         storage.SigningSchemeV4,
		Method:         opts.Method,
		Expires:        opts.Expires,
		ContentType:    opts.ContentType,
		GoogleAccessID: x.googleAccessID,
	}

	url, err := x.client.Bucket(x.bucket).SignedURL(objectName, signOpts)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to sign object URL",
			goerr.T(errs.TagService),
			goerr.V("bucket", x.bucket),
			goerr.TV(errs.ObjectKey, objectName),
		)
	}

	return &upload.SignedURL{
		URL:       url,
		Object:    objectName,
		Method:    opts.Method,
		ExpiresAt: opts.Expires,
	}, nil
}

func (x *Client) Close(ctx context.Context) {
	safe.Close(ctx, x.client)
}
