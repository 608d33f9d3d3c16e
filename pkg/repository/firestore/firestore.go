package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/docsbotai/dashboard/pkg/domain/interfaces"
	"github.com/docsbotai/dashboard/pkg/domain/model/errs"
	"github.com/m-mizutani/goerr/v2"
)

type Firestore struct {
	db *firestore.Client
	eb *goerr.Builder
}

var _ interfaces.Repository = &Firestore{}

func New(ctx context.Context, projectID, databaseID string) (*Firestore, error) {
	db, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("project_id", projectID),
			goerr.V("database_id", databaseID))
	}

	return &Firestore{
		db: db,
		eb: goerr.NewBuilder(
			goerr.TV(errs.RepositoryKey, "firestore"),
			goerr.V("project_id", projectID),
			goerr.V("database_id", databaseID),
		),
	}, nil
}

func (r *Firestore) Close() error {
	return r.db.Close()
}

const (
	collectionTeams = "teams"
	collectionBots  = "bots"
)

func (r *Firestore) teamDoc(teamID string) *firestore.DocumentRef {
	return r.db.Collection(collectionTeams).Doc(teamID)
}

func (r *Firestore) botCollection(teamID string) *firestore.CollectionRef {
	return r.teamDoc(teamID).Collection(collectionBots)
}
