package types

import (
	"github.com/google/uuid"
)

type BotID string

func (x BotID) String() string {
	return string(x)
}

func NewBotID() BotID {
	id, err := uuid.NewV7()
	if err != nil {
		panic(err)
	}
	return BotID(id.String())
}

func (x BotID) Validate() error {
	return validateDocumentID(string(x), "bot ID")
}

type BotStatus string

const (
	BotStatusPending  BotStatus = "pending"
	BotStatusIndexing BotStatus = "indexing"
	BotStatusReady    BotStatus = "ready"
	BotStatusFailed   BotStatus = "failed"
)

func (s BotStatus) String() string {
	return string(s)
}
