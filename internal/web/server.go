package web

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/study-room/studybot/internal/config"
	"github.com/study-room/studybot/internal/domain"
)

// Catalog is the slice of the file service the web API reads from.
type Catalog interface {
	ListFiltered(ctx context.Context, branch, regulation, fileType, subject string) ([]domain.File, error)
	CountFiles(ctx context.Context) (int64, error)
	BranchCounts(ctx context.Context) ([]domain.BranchCount, error)
	MigrateLegacyBranches(ctx context.Context) (int64, error)
}

// Users is the slice of the user service the web API reads from.
type Users interface {
	Count(ctx context.Context) (int64, error)
}

type Server struct {
	cfg     *config.Config
	catalog Catalog
	users   Users
	started time.Time
	http    *http.Server
}

func NewServer(cfg *config.Config, catalog Catalog, users Users) *Server {
	s := &Server{
		cfg:     cfg,
		catalog: catalog,
		users:   users,
		started: time.Now(),
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(), cors.Default())

	r.GET("/health", s.handleHealth)
	api := r.Group("/api")
	{
		api.GET("/files", s.handleListFiles)
		api.GET("/stats", s.handleStats)
		api.POST("/migrate-branches", s.handleMigrateBranches)
	}

	s.http = &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: r,
	}
	return s
}

// Handler exposes the routing tree for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Run serves until the context is cancelled, then drains connections.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("web server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		slog.Info("http request",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(s.started).String(),
	})
}

func (s *Server) handleListFiles(c *gin.Context) {
	files, err := s.catalog.ListFiltered(c.Request.Context(),
		c.Query("branch"), c.Query("regulation"), c.Query("type"), c.Query("subject"))
	if err != nil {
		slog.Error("list files", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch files"})
		return
	}
	if files == nil {
		files = []domain.File{}
	}
	c.JSON(http.StatusOK, files)
}

func (s *Server) handleStats(c *gin.Context) {
	ctx := c.Request.Context()

	totalFiles, err := s.catalog.CountFiles(ctx)
	if err != nil {
		slog.Error("count files", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch stats"})
		return
	}
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		slog.Error("count users", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch stats"})
		return
	}
	branches, err := s.catalog.BranchCounts(ctx)
	if err != nil {
		slog.Error("branch counts", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch stats"})
		return
	}
	if branches == nil {
		branches = []domain.BranchCount{}
	}

	c.JSON(http.StatusOK, gin.H{
		"totalFiles": totalFiles,
		"totalUsers": totalUsers,
		"branches":   branches,
	})
}

// handleMigrateBranches folds legacy single-branch records into the
// multi-branch shape. Only a configured admin may trigger it.
func (s *Server) handleMigrateBranches(c *gin.Context) {
	var body struct {
		UserID int64 `json:"userId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if !s.cfg.IsAdmin(body.UserID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
		return
	}

	modified, err := s.catalog.MigrateLegacyBranches(c.Request.Context())
	if err != nil {
		slog.Error("migrate branches", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "migration failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "migration completed",
		"modifiedCount": modified,
	})
}
