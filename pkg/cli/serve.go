package cli

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/docsbotai/dashboard/pkg/cli/config"
	server "github.com/docsbotai/dashboard/pkg/controller/http"
	"github.com/docsbotai/dashboard/pkg/usecase"
	"github.com/docsbotai/dashboard/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// dashboardURL turns a listen address into the URL printed at startup.
func dashboardURL(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		if strings.HasPrefix(addr, ":") {
			return fmt.Sprintf("http://localhost%s", addr)
		}
		return fmt.Sprintf("http://%s", addr)
	}

	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}

	return fmt.Sprintf("http://%s", net.JoinHostPort(host, port))
}

func cmdServe() *cli.Command {
	var (
		addr         string
		sentryCfg    config.Sentry
		firestoreCfg config.Firestore
		storageCfg   config.Storage
		identityCfg  config.Identity
		sessionCfg   config.Session
		notifyCfg    config.Notify
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Aliases:     []string{"a"},
				Sources:     cli.EnvVars("DOCSBOT_ADDR"),
				Usage:       "Listen address",
				Value:       "127.0.0.1:8080",
				Destination: &addr,
			},
		},
		sentryCfg.Flags(),
		firestoreCfg.Flags(),
		storageCfg.Flags(),
		identityCfg.Flags(),
		sessionCfg.Flags(),
		notifyCfg.Flags(),
	)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Run the dashboard server",
		Flags:   flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logging.Default().Info("starting server",
				"addr", addr,
				"url", dashboardURL(addr),
				"sentry", sentryCfg,
				"firestore", firestoreCfg,
				"storage", storageCfg,
				"identity", identityCfg,
				"session", sessionCfg,
				"notify", notifyCfg,
			)

			if sessionCfg.DevMode() {
				logging.Default().Warn("development mode, session cookies are sent without Secure attribute")
			}

			if err := sentryCfg.Configure(); err != nil {
				return err
			}

			repo, closeRepo, err := firestoreCfg.Repository(ctx)
			if err != nil {
				return err
			}
			defer closeRepo()

			storageClient, err := storageCfg.Client(ctx)
			if err != nil {
				return err
			}
			defer storageClient.Close(ctx)

			idp, err := identityCfg.Configure(ctx)
			if err != nil {
				return err
			}

			dispatcher, err := notifyCfg.Configure(ctx)
			if err != nil {
				return err
			}

			uc := usecase.New(
				usecase.WithRepository(repo),
				usecase.WithSessionVerifier(idp),
				usecase.WithUserDirectory(idp),
				usecase.WithStorageClient(storageClient),
				usecase.WithNotifier(dispatcher),
			)

			httpServer := http.Server{
				Addr:              addr,
				Handler:           server.New(uc, server.WithDevMode(sessionCfg.DevMode())),
				ReadTimeout:       30 * time.Second,
				ReadHeaderTimeout: 10 * time.Second,
				BaseContext: func(l net.Listener) context.Context {
					return ctx
				},
			}

			errCh := make(chan error, 1)
			go func() {
				defer close(errCh)
				if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("shutting down server", "signal", sig.String())
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return httpServer.Shutdown(ctx)
			}
		},
	}
}
