package config

import (
	"context"
	"log/slog"

	"github.com/docsbotai/dashboard/pkg/domain/interfaces"
	"github.com/docsbotai/dashboard/pkg/repository"
	"github.com/docsbotai/dashboard/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

type Firestore struct {
	projectID  string
	databaseID string
}

func (c *Firestore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore project ID, in-memory store is used when empty",
			Destination: &c.projectID,
			Category:    "Firestore",
			Sources:     cli.EnvVars("DOCSBOT_FIRESTORE_PROJECT_ID"),
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore database ID",
			Destination: &c.databaseID,
			Category:    "Firestore",
			Sources:     cli.EnvVars("DOCSBOT_FIRESTORE_DATABASE_ID"),
			Value:       "(default)",
		},
	}
}

func (c Firestore) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("project_id", c.projectID),
		slog.String("database_id", c.databaseID),
	)
}

func (c *Firestore) Configure(ctx context.Context) (*repository.Firestore, error) {
	if c.projectID == "" {
		return nil, goerr.New("firestore project ID is not set")
	}
	return repository.NewFirestore(ctx, c.projectID, c.databaseID)
}

// Repository returns the Firestore repository when configured and the
// in-memory one otherwise. The closer is always non-nil.
func (c *Firestore) Repository(ctx context.Context) (interfaces.Repository, func(), error) {
	if !c.IsConfigured() {
		logging.From(ctx).Warn("Firestore is not configured, teams and bots are kept in memory")
		return repository.NewMemory(), func() {}, nil
	}

	repo, err := c.Configure(ctx)
	if err != nil {
		return nil, func() {}, err
	}

	closer := func() {
		if err := repo.Close(); err != nil {
			logging.From(ctx).Error("failed to close firestore client", logging.ErrAttr(err))
		}
	}
	return repo, closer, nil
}

func (c *Firestore) ProjectID() string {
	return c.projectID
}

func (c *Firestore) IsConfigured() bool {
	return c.projectID != ""
}
