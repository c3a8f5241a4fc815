package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server is the HTTP shell around scheduling sessions.
type Server struct {
	store  *Store
	log    *zap.Logger
	delim  rune
	engine *gin.Engine
}

// New builds the router. delim is the column delimiter for CSV uploads.
func New(log *zap.Logger, delim rune) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	gin.SetMode(gin.ReleaseMode)

	s := &Server{store: NewStore(), log: log, delim: delim}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(log))
	r.Use(cors())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/sessions", s.handleListSessions)
	r.POST("/sessions", s.handleCreateSession)

	sessions := r.Group("/sessions/:id")
	{
		sessions.GET("", s.handleGetSession)
		sessions.POST("/teachers", s.handleAddTeacher)
		sessions.POST("/subjects", s.handleAddSubject)
		sessions.POST("/classrooms", s.handleAddClassroom)
		sessions.POST("/time-slots", s.handleAddTimeSlot)
		sessions.POST("/import", s.handleImport)
		sessions.POST("/schedule", s.handleGenerate)
		sessions.GET("/export", s.handleExport)
	}

	s.engine = r
	return s
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("HTTP server started", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
