package usecase

import (
	"github.com/docsbotai/dashboard/pkg/adapter/storage"
	"github.com/docsbotai/dashboard/pkg/domain/interfaces"
	"github.com/docsbotai/dashboard/pkg/repository"
	"github.com/docsbotai/dashboard/pkg/service/notifier"
	"github.com/docsbotai/dashboard/pkg/utils/retry"
)

type UseCases struct {
	// services and adapters
	repository    interfaces.Repository
	verifier      interfaces.SessionVerifier
	directory     interfaces.UserDirectory
	storageClient interfaces.StorageClient
	notifier      interfaces.Notifier
}

var _ interfaces.SessionUsecases = &UseCases{}
var _ interfaces.TeamUsecases = &UseCases{}
var _ interfaces.BotUsecases = &UseCases{}

type Option func(*UseCases)

func WithRepository(repository interfaces.Repository) Option {
	return func(u *UseCases) {
		u.repository = repository
	}
}

func WithSessionVerifier(verifier interfaces.SessionVerifier) Option {
	return func(u *UseCases) {
		u.verifier = verifier
	}
}

func WithUserDirectory(directory interfaces.UserDirectory) Option {
	return func(u *UseCases) {
		u.directory = directory
	}
}

func WithStorageClient(storageClient interfaces.StorageClient) Option {
	return func(u *UseCases) {
		u.storageClient = storageClient
	}
}

// WithNotifier sets the channel for invitation notifications. Sends are
// fire-and-forget, so a notifier should handle its own retries.
func WithNotifier(n interfaces.Notifier) Option {
	return func(u *UseCases) {
		u.notifier = n
	}
}

func New(opts ...Option) *UseCases {
	u := &UseCases{
		repository:    repository.NewMemory(),
		storageClient: storage.NewMemoryClient(),
		notifier:      notifier.NewDispatcher(retry.Default()), // Discards messages until channels are configured
	}

	for _, opt := range opts {
		opt(u)
	}

	return u
}
