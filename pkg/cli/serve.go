package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/formloom/formloom/pkg/cli/config"
	httpctrl "github.com/formloom/formloom/pkg/controller/http"
	"github.com/formloom/formloom/pkg/service/generator"
	"github.com/formloom/formloom/pkg/usecase"
	"github.com/formloom/formloom/pkg/utils/logging"
)

func cmdServe() *cli.Command {
	var addr string
	var llmCfg config.LLM

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("FORMLOOM_ADDR"),
			Destination: &addr,
		},
	}
	flags = append(flags, llmCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start the HTTP API server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			llmClient, err := llmCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure LLM client")
			}

			var opts []usecase.Option
			if llmClient != nil {
				gen, err := generator.New(llmClient)
				if err != nil {
					return goerr.Wrap(err, "failed to create schema generator")
				}
				opts = append(opts, usecase.WithGenerator(gen))
			} else {
				logger.Warn("no LLM credentials configured, generation endpoints are disabled")
			}

			uc := usecase.New(opts...)
			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc),
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			eg, ctx := errgroup.WithContext(ctx)
			eg.Go(func() error {
				logger.Info("starting HTTP server", "addr", addr, "llm", llmCfg)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return goerr.Wrap(err, "HTTP server failed")
				}
				return nil
			})
			eg.Go(func() error {
				<-ctx.Done()
				logger.Info("shutting down HTTP server")

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown HTTP server")
				}
				return nil
			})

			return eg.Wait()
		},
	}
}
