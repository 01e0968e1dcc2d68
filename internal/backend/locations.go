package backend

import (
	"context"
	"net/url"
	"strconv"

	"github.com/mesat/flight-routes/internal/models"
)

// allPageSize is used when walking every page for client-side search.
const allPageSize = 200

func (c *Client) Locations(ctx context.Context, page, size int) (models.LocationPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))

	var result models.LocationPage
	if err := c.get(ctx, "locations", "/locations", q, &result); err != nil {
		return models.LocationPage{}, err
	}
	return result, nil
}

func (c *Client) SearchLocations(ctx context.Context, term string, page, size int) (models.LocationPage, error) {
	q := url.Values{}
	q.Set("searchTerm", term)
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))

	var result models.LocationPage
	if err := c.get(ctx, "locations", "/locations/search", q, &result); err != nil {
		return models.LocationPage{}, err
	}
	return result, nil
}

// AllLocations walks every page. The location set is small (one row per
// airport or city center), so the console fetches it whole for client-side
// search and grouping.
func (c *Client) AllLocations(ctx context.Context) ([]models.Location, error) {
	var all []models.Location
	for page := 0; ; page++ {
		result, err := c.Locations(ctx, page, allPageSize)
		if err != nil {
			return nil, err
		}
		all = append(all, result.Content...)
		if page+1 >= result.TotalPages || len(result.Content) == 0 {
			return all, nil
		}
	}
}

func (c *Client) Location(ctx context.Context, id int64) (models.Location, error) {
	var loc models.Location
	if err := c.get(ctx, "locations", "/locations/"+strconv.FormatInt(id, 10), nil, &loc); err != nil {
		return models.Location{}, err
	}
	return loc, nil
}

func (c *Client) CreateLocation(ctx context.Context, req models.LocationRequest) (models.Location, error) {
	var created models.Location
	if err := c.post(ctx, "locations", "/locations", req, &created); err != nil {
		return models.Location{}, err
	}
	return created, nil
}

func (c *Client) UpdateLocation(ctx context.Context, id int64, req models.LocationRequest) (models.Location, error) {
	var updated models.Location
	if err := c.put(ctx, "locations", "/locations/"+strconv.FormatInt(id, 10), req, &updated); err != nil {
		return models.Location{}, err
	}
	return updated, nil
}

func (c *Client) DeleteLocation(ctx context.Context, id int64) error {
	return c.delete(ctx, "locations", "/locations/"+strconv.FormatInt(id, 10))
}
