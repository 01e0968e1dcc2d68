package backend

import (
	"context"

	"github.com/mesat/flight-routes/internal/models"
)

// SearchRoutes asks the backend to compose itinerary candidates for the
// request. The request must already be validated; in particular, identical
// origin and destination are rejected locally before any call is made.
func (c *Client) SearchRoutes(ctx context.Context, req models.RouteRequest) ([]models.Route, error) {
	var result []models.Route
	if err := c.post(ctx, "routes", "/routes/search", req, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// AlternativeDays lists the weekdays (1=Monday .. 7=Sunday) on which the
// requested connection exists, used when a search comes back empty.
func (c *Client) AlternativeDays(ctx context.Context, req models.RouteRequest) ([]int, error) {
	var days []int
	if err := c.post(ctx, "routes", "/routes/alternative-days", req, &days); err != nil {
		return nil, err
	}
	return days, nil
}
