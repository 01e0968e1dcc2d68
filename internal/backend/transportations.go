package backend

import (
	"context"
	"net/url"
	"strconv"

	"github.com/mesat/flight-routes/internal/models"
)

func (c *Client) Transportations(ctx context.Context, page, size int) (models.TransportationPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))

	var result models.TransportationPage
	if err := c.get(ctx, "transportations", "/transportations", q, &result); err != nil {
		return models.TransportationPage{}, err
	}
	return result, nil
}

// AllTransportations fetches the unpaginated collection the backend exposes
// for client-side search.
func (c *Client) AllTransportations(ctx context.Context) ([]models.Transportation, error) {
	var all []models.Transportation
	if err := c.get(ctx, "transportations", "/transportations/all", nil, &all); err != nil {
		return nil, err
	}
	return all, nil
}

func (c *Client) FilterTransportations(ctx context.Context, term string, types []models.TransportationType) ([]models.Transportation, error) {
	q := url.Values{}
	if term != "" {
		q.Set("searchTerm", term)
	}
	for _, t := range types {
		q.Add("transportationTypes", string(t))
	}

	var result []models.Transportation
	if err := c.get(ctx, "transportations", "/transportations/filter", q, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) TransportationTypes(ctx context.Context) ([]models.TransportationType, error) {
	var types []models.TransportationType
	if err := c.get(ctx, "transportations", "/transportations/types", nil, &types); err != nil {
		return nil, err
	}
	return types, nil
}

func (c *Client) CreateTransportation(ctx context.Context, req models.TransportationRequest) (models.Transportation, error) {
	var created models.Transportation
	if err := c.post(ctx, "transportations", "/transportations", req, &created); err != nil {
		return models.Transportation{}, err
	}
	return created, nil
}

func (c *Client) UpdateTransportation(ctx context.Context, id int64, req models.TransportationRequest) (models.Transportation, error) {
	var updated models.Transportation
	if err := c.put(ctx, "transportations", "/transportations/"+strconv.FormatInt(id, 10), req, &updated); err != nil {
		return models.Transportation{}, err
	}
	return updated, nil
}

func (c *Client) DeleteTransportation(ctx context.Context, id int64) error {
	return c.delete(ctx, "transportations", "/transportations/"+strconv.FormatInt(id, 10))
}
