package http

import "github.com/gofiber/fiber/v2"

// apiVersion is the protocol version reported by the info endpoint.
const apiVersion = "1.0.3"

// Service statuses reported by the info endpoint.
const (
	statusOnline     = 1
	statusOffline    = 2
	statusNoNewSyncs = 3
)

// getInfo reports service availability to clients deciding whether to offer
// "create new sync". The endpoint is advisory: if the capacity count fails,
// the service still reports online rather than erroring the probe.
func (s *HTTPServer) getInfo(c *fiber.Ctx) error {
	ctx, cancel := s.opCtx(c)
	defer cancel()

	status := statusOnline
	if s.config.StatusOffline {
		status = statusOffline
	} else {
		accepting, err := s.bookmarks.IsAcceptingNewSyncs(ctx)
		if err != nil {
			s.logger.Error(c.UserContext(), "service status check failed",
				"request_id", c.Locals(requestIDKey), "error", err.Error())
		} else if !accepting {
			status = statusNoNewSyncs
		}
	}

	return c.JSON(fiber.Map{
		"status":  status,
		"message": s.config.StatusMessage,
		"version": apiVersion,
	})
}
