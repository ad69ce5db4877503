package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/airbusgeo/cdse-catalog/catalog"
	"github.com/airbusgeo/cdse-catalog/service/log"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string
	var maxLimit int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP catalogue service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c := catalog.Catalog{Provider: a.cfg.provider(), Proxies: a.cfg.proxies(), MaxLimit: maxLimit}

			r := mux.NewRouter()
			c.AddHandler(r)
			headersOk := handlers.AllowedHeaders([]string{"*"})
			originsOk := handlers.AllowedOrigins([]string{"*"})
			methodsOk := handlers.AllowedMethods([]string{"GET", "OPTIONS"})
			s := http.Server{
				Addr:    addr,
				Handler: handlers.LoggingHandler(os.Stderr, handlers.CORS(originsOk, headersOk, methodsOk)(r)),
			}

			errc := make(chan error, 1)
			go func() {
				log.Logger(ctx).Sugar().Infof("catalogue service listening on %s", addr)
				if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errc <- err
				}
				close(errc)
			}()

			select {
			case err := <-errc:
				return err
			case <-ctx.Done():
			}
			sctx, cncl := context.WithTimeout(context.Background(), 30*time.Second)
			defer cncl()
			if err := s.Shutdown(sctx); err != nil {
				log.Logger(ctx).Warn("catalog.Shutdown", zap.Error(err))
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listening address")
	cmd.Flags().IntVar(&maxLimit, "max-limit", 1000, "maximum number of products returned by a request")
	return cmd
}
