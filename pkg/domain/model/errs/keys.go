package errs

import (
	"github.com/docsbotai/dashboard/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

var (
	// IDs
	TeamIDKey    = goerr.NewTypedKey[types.TeamID]("team_id")
	BotIDKey     = goerr.NewTypedKey[types.BotID]("bot_id")
	UserIDKey    = goerr.NewTypedKey[types.UserID]("user_id")
	RequestIDKey = goerr.NewTypedKey[string]("request_id")

	// Values
	RepositoryKey = goerr.NewTypedKey[string]("repository")
	CollectionKey = goerr.NewTypedKey[string]("collection")
	ObjectKey     = goerr.NewTypedKey[string]("object")
	ChannelKey    = goerr.NewTypedKey[string]("channel")
)
