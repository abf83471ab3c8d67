package http

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/dmitrijs2005/syncmarks/internal/common"
)

const requestIDKey = "request_id"

type bookmarksRequest struct {
	Bookmarks string `json:"bookmarks"`
}

// opCtx derives a per-operation context bounded by the configured store
// timeout.
func (s *HTTPServer) opCtx(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	timeout := s.config.DBConnTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return context.WithTimeout(c.UserContext(), timeout)
}

func (s *HTTPServer) createBookmarks(c *fiber.Ctx) error {
	ctx, cancel := s.opCtx(c)
	defer cancel()

	var req bookmarksRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}

	res, err := s.bookmarks.CreateBookmarks(ctx, c.IP(), req.Bookmarks)
	if err != nil {
		return s.serviceError(c, "createBookmarks", err)
	}

	return c.JSON(fiber.Map{"id": res.ID, "lastUpdated": res.LastUpdated})
}

func (s *HTTPServer) getBookmarks(c *fiber.Ctx) error {
	ctx, cancel := s.opCtx(c)
	defer cancel()

	res, err := s.bookmarks.GetBookmarks(ctx, c.Params("id"))
	if err != nil {
		return s.serviceError(c, "getBookmarks", err)
	}
	if res == nil {
		// Unknown ids look exactly like "no data yet".
		return c.JSON(fiber.Map{})
	}

	return c.JSON(fiber.Map{"bookmarks": res.Bookmarks, "lastUpdated": res.LastUpdated})
}

func (s *HTTPServer) getLastUpdated(c *fiber.Ctx) error {
	ctx, cancel := s.opCtx(c)
	defer cancel()

	res, err := s.bookmarks.GetLastUpdated(ctx, c.Params("id"))
	if err != nil {
		return s.serviceError(c, "getLastUpdated", err)
	}
	if res == nil {
		return c.JSON(fiber.Map{})
	}

	return c.JSON(fiber.Map{"lastUpdated": res.LastUpdated})
}

func (s *HTTPServer) updateBookmarks(c *fiber.Ctx) error {
	ctx, cancel := s.opCtx(c)
	defer cancel()

	var req bookmarksRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}

	res, err := s.bookmarks.UpdateBookmarks(ctx, c.Params("id"), req.Bookmarks)
	if err != nil {
		return s.serviceError(c, "updateBookmarks", err)
	}
	if res == nil {
		return c.JSON(fiber.Map{})
	}

	return c.JSON(fiber.Map{"lastUpdated": res.LastUpdated})
}

// serviceError translates service-layer sentinels into HTTP responses.
// Anything unrecognized is a server-side failure: logged with context and
// answered with a generic message so no store detail leaks to clients.
func (s *HTTPServer) serviceError(c *fiber.Ctx, op string, err error) error {
	switch {
	case errors.Is(err, common.ErrBookmarksDataNotFound),
		errors.Is(err, common.ErrSyncIDNotFound),
		errors.Is(err, common.ErrClientIPEmpty):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, common.ErrServiceOffline),
		errors.Is(err, common.ErrNewSyncsForbidden):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, common.ErrNewSyncsLimitExceeded):
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"message": err.Error()})
	default:
		s.logger.Error(c.UserContext(), "request failed",
			"operation", op, "request_id", c.Locals(requestIDKey), "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal error"})
	}
}
