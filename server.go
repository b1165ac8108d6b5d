package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/technegotia/tn_quests/environment"
	"github.com/technegotia/tn_quests/routers"
	"github.com/technegotia/tn_quests/services/live"
	"github.com/technegotia/tn_quests/services/multiplexers"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// Server runs the HTTP API together with the live quest feed
type Server struct {
	logger  *zap.Logger
	env     *environment.Env
	engine  *gin.Engine
	feed    *live.QuestFeed
	storage *multiplexers.Storage
}

func NewServer(logger *zap.Logger, env *environment.Env, mainRouter routers.MainRouter, feed *live.QuestFeed,
	storage *multiplexers.Storage) *Server {
	engine := gin.Default()

	mainRouter.RegisterRoutes(engine.Group("/"))

	return &Server{
		logger:  logger,
		env:     env,
		engine:  engine,
		feed:    feed,
		storage: storage,
	}
}

// Run serves requests until ctx is done or the server fails, then shuts down
// the HTTP server and closes the storage
func (s *Server) Run(ctx context.Context) error {
	group, groupCtx := errgroup.WithContext(ctx)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", s.env.Get(environment.Port)),
		Handler: s.engine,
		// open quest streams end when the server shuts down
		BaseContext: func(net.Listener) context.Context {
			return groupCtx
		},
	}

	group.Go(func() error {
		return s.feed.Run(groupCtx)
	})
	group.Go(func() error {
		s.logger.Info("server started", zap.String("addr", httpServer.Addr))
		err := httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			return errors.Wrap(err, "could not serve requests")
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		s.logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return multierr.Combine(
			errors.Wrap(httpServer.Shutdown(shutdownCtx), "could not shut down http server"),
			errors.Wrap(s.storage.Close(shutdownCtx), "could not close storage"),
		)
	})

	return group.Wait()
}
