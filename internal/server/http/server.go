// Package http exposes the bookmark sync API over HTTP. Routes and payload
// shapes follow the public sync protocol: clients create a sync with POST
// /bookmarks and thereafter address it by the returned id.
package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/syncmarks/internal/logging"
	"github.com/dmitrijs2005/syncmarks/internal/server/config"
	"github.com/dmitrijs2005/syncmarks/internal/server/services"
)

// BookmarkProvider is the slice of BookmarkService the transport needs.
type BookmarkProvider interface {
	CreateBookmarks(ctx context.Context, clientAddr string, bookmarks string) (*services.CreateBookmarksResult, error)
	GetBookmarks(ctx context.Context, id string) (*services.GetBookmarksResult, error)
	GetLastUpdated(ctx context.Context, id string) (*services.LastUpdatedResult, error)
	UpdateBookmarks(ctx context.Context, id string, bookmarks string) (*services.LastUpdatedResult, error)
	IsAcceptingNewSyncs(ctx context.Context) (bool, error)
}

type HTTPServer struct {
	address   string
	logger    logging.Logger
	bookmarks BookmarkProvider
	config    *config.Config
}

func NewHTTPServer(a string, l logging.Logger, bs BookmarkProvider, cfg *config.Config) (*HTTPServer, error) {
	return &HTTPServer{
		address:   a,
		logger:    l.With("module", "http_server"),
		bookmarks: bs,
		config:    cfg,
	}, nil
}

// newApp builds the fiber application with middleware and routes. Split out
// of Run so tests can drive it with app.Test.
func (s *HTTPServer) newApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "syncmarks",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(s.requestID)

	app.Post("/bookmarks", s.createBookmarks)
	app.Get("/bookmarks/:id", s.getBookmarks)
	app.Put("/bookmarks/:id", s.updateBookmarks)
	app.Get("/bookmarks/:id/lastUpdated", s.getLastUpdated)
	app.Get("/info", s.getInfo)

	return app
}

// requestID tags every request with an id that handlers attach to log lines
// and echo back in the X-Request-Id header.
func (s *HTTPServer) requestID(c *fiber.Ctx) error {
	id := uuid.NewString()
	c.Locals(requestIDKey, id)
	c.Set("X-Request-Id", id)
	return c.Next()
}

func (s *HTTPServer) Run(ctx context.Context) error {

	app := s.newApp()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		_ = app.ShutdownWithTimeout(5 * time.Second)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := app.Listen(s.address); err != nil {
		return err
	}

	return nil
}
