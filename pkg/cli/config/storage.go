package config

import (
	"context"
	"log/slog"

	"github.com/docsbotai/dashboard/pkg/adapter/storage"
	"github.com/docsbotai/dashboard/pkg/domain/interfaces"
	"github.com/docsbotai/dashboard/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/option"

	"github.com/urfave/cli/v3"
)

type Storage struct {
	bucket         string
	prefix         string
	projectID      string
	googleAccessID string
}

func (x *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "storage-bucket",
			Usage:       "Cloud Storage bucket for bot source uploads",
			Category:    "Storage",
			Destination: &x.bucket,
			Sources:     cli.EnvVars("DOCSBOT_STORAGE_BUCKET"),
		},
		&cli.StringFlag{
			Name:        "storage-prefix",
			Usage:       "Object name prefix",
			Category:    "Storage",
			Destination: &x.prefix,
			Sources:     cli.EnvVars("DOCSBOT_STORAGE_PREFIX"),
		},
		&cli.StringFlag{
			Name:        "storage-project-id",
			Usage:       "Quota project ID for Cloud Storage requests",
			Category:    "Storage",
			Destination: &x.projectID,
			Sources:     cli.EnvVars("DOCSBOT_STORAGE_PROJECT_ID"),
		},
		&cli.StringFlag{
			Name:        "storage-google-access-id",
			Usage:       "Service account email used to sign upload URLs",
			Category:    "Storage",
			Destination: &x.googleAccessID,
			Sources:     cli.EnvVars("DOCSBOT_STORAGE_GOOGLE_ACCESS_ID"),
		},
	}
}

func (x *Storage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("bucket", x.bucket),
		slog.String("prefix", x.prefix),
		slog.String("project_id", x.projectID),
		slog.String("google_access_id", x.googleAccessID),
	)
}

func (x *Storage) Configure(ctx context.Context) (*storage.Client, error) {
	if x.bucket == "" {
		return nil, goerr.New("storage bucket is not set")
	}

	var clientOpts []option.ClientOption
	if x.projectID != "" {
		clientOpts = append(clientOpts, option.WithQuotaProject(x.projectID))
	}

	opts := []storage.Option{storage.WithPrefix(x.prefix)}
	if x.googleAccessID != "" {
		opts = append(opts, storage.WithGoogleAccessID(x.googleAccessID))
	}

	return storage.New(ctx, x.bucket, opts, clientOpts...)
}

// Client returns the Cloud Storage client when a bucket is set and a local
// placeholder signer otherwise.
func (x *Storage) Client(ctx context.Context) (interfaces.StorageClient, error) {
	if !x.IsConfigured() {
		logging.From(ctx).Warn("Storage is not configured, upload URLs are placeholders")
		return storage.NewMemoryClient(), nil
	}

	client, err := x.Configure(ctx)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (x *Storage) Bucket() string {
	return x.bucket
}

func (x *Storage) IsConfigured() bool {
	return x.bucket != ""
}
