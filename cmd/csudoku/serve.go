package main

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	httpadapter "svw.info/csudoku/internal/adapters/http"
	"svw.info/csudoku/internal/generator"
	"svw.info/csudoku/internal/hint"
	"svw.info/csudoku/internal/infrastructure/storage"
	"svw.info/csudoku/internal/usecase"
	"svw.info/csudoku/internal/validator"
)

// requestLogger logs method, path, status, bytes, and duration for every
// request.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("http",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"bytes", c.Writer.Size(),
			"dur", time.Since(start).Round(time.Millisecond),
		)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	if listenAddr != "" {
		cfg.Server.Addr = listenAddr
	}

	// Wire providers → use cases → HTTP adapter, all sharing one solver and
	// therefore one topology.
	s := newSolver(false)
	g := generator.NewUniqueGenerator(s, cfg.Solver.Diagonal)
	v := validator.New(cfg.Solver.Diagonal)
	hin := hint.New(s)
	st := storage.NewFS(cfg.Storage.Path)
	uc := usecase.NewService(s, g, v, hin, st)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger))
	httpadapter.New(uc, logger).Register(r, prometheus.NewRegistry())

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening",
		"addr", cfg.Server.Addr,
		"diagonal", cfg.Solver.Diagonal,
		"twins", cfg.Solver.NakedTwins,
		"persist", cfg.Storage.Path,
	)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
