package repository

import (
	"context"

	"github.com/docsbotai/dashboard/pkg/repository/firestore"
	"github.com/docsbotai/dashboard/pkg/repository/memory"
)

type Firestore = firestore.Firestore

type Memory = memory.Memory

// NewFirestore creates a new Firestore repository client
func NewFirestore(ctx context.Context, projectID, databaseID string) (*Firestore, error) {
	return firestore.New(ctx, projectID, databaseID)
}

// NewMemory creates an in-memory repository for development and tests
func NewMemory() *Memory {
	return memory.New()
}
