package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// CollectMetrics times every request and records it against the matched
// route pattern once the handler chain finishes.
func (handler *Handler) CollectMetrics(c *fiber.Ctx) error {
	started := time.Now()
	err := c.Next()

	route := c.Route().Path
	status := c.Response().StatusCode()
	if err != nil {
		if fiberErr, ok := err.(*fiber.Error); ok {
			status = fiberErr.Code
		} else {
			status = fiber.StatusInternalServerError
		}
	}

	handler.collector.RecordRequest(c.Method(), route, status, time.Since(started))
	return err
}
