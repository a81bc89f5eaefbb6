package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"driveway/pkg/model"
)

type ListingClient struct {
	httpClient *HttpClient
}

type Metadata struct {
	TotalCount int64
	Limit      int
	Offset     int64
}

func NewListingClient(baseURL string) *ListingClient {
	return &ListingClient{
		httpClient: NewHttpClient(baseURL),
	}
}

func (c *ListingClient) Create(ctx context.Context, body any) (*Response, error) {
	return c.httpClient.POST(ctx, "/api/v1/listings", body)
}

func (c *ListingClient) GetAll(ctx context.Context, limit int, offset int64) (*Response, error) {
	path := fmt.Sprintf("/api/v1/listings?limit=%d&offset=%d", limit, offset)
	return c.httpClient.GET(ctx, path)
}

// GetActive fetches the full active-listing snapshot the assistant matches
// queries against. Always re-fetched per query, never cached client-side.
func (c *ListingClient) GetActive(ctx context.Context) (*Response, error) {
	return c.httpClient.GET(ctx, "/api/v1/listings/active")
}

func (c *ListingClient) Search(ctx context.Context, city string, limit int, offset int64) (*Response, error) {
	q := url.Values{}
	q.Set("city", city)
	q.Set("limit", fmt.Sprintf("%d", limit))
	q.Set("offset", fmt.Sprintf("%d", offset))

	path := "/api/v1/listings/search?" + q.Encode()
	return c.httpClient.GET(ctx, path)
}

func (c *ListingClient) GetByID(ctx context.Context, id string) (*Response, error) {
	path := "/api/v1/listings/id/" + url.PathEscape(id)
	return c.httpClient.GET(ctx, path)
}

func (c *ListingClient) Update(ctx context.Context, id string, body any) (*Response, error) {
	path := "/api/v1/listings/id/" + url.PathEscape(id)
	return c.httpClient.PATCH(ctx, path, body)
}

func (c *ListingClient) Delete(ctx context.Context, id string) (*Response, error) {
	path := "/api/v1/listings/id/" + url.PathEscape(id)
	return c.httpClient.DELETE(ctx, path)
}

func (c *ListingClient) Healthy() error {
	resp, err := c.httpClient.GET(context.Background(), "/health")
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("listings service unhealthy: %s", resp.ToString())
	}
	return nil
}

func (c *ListingClient) DecodeListing(resp *Response) (*model.Listing, error) {
	var wrapper struct {
		Data json.RawMessage `json:"data"`
	}

	if err := json.Unmarshal(resp.Body, &wrapper); err != nil {
		return nil, fmt.Errorf("could not decode listing wrapper:\n%+v\n%s", resp.ToString(), err)
	}

	var listing model.Listing
	if err := json.Unmarshal(wrapper.Data, &listing); err != nil {
		return nil, fmt.Errorf("could not decode listing json:\n%+v\n%s", resp.ToString(), err)
	}

	return &listing, nil
}

func (c *ListingClient) DecodeListings(resp *Response) ([]*model.Listing, *Metadata, error) {
	var wrapper struct {
		Data       json.RawMessage `json:"data"`
		TotalCount int64           `json:"total_count"`
		Limit      int             `json:"limit"`
		Offset     int64           `json:"offset"`
	}

	if err := json.Unmarshal(resp.Body, &wrapper); err != nil {
		return nil, nil, fmt.Errorf("could not decode paginated resp:\n%+v\n%s", resp.ToString(), err)
	}

	var listings []*model.Listing
	if err := json.Unmarshal(wrapper.Data, &listings); err != nil {
		return nil, nil, fmt.Errorf("could not decode listing list:\n%+v\n%s", resp.ToString(), err)
	}

	metadata := &Metadata{
		TotalCount: wrapper.TotalCount,
		Limit:      wrapper.Limit,
		Offset:     wrapper.Offset,
	}

	return listings, metadata, nil
}

// DecodeActiveListings unwraps the /active response, which is not paginated.
func (c *ListingClient) DecodeActiveListings(resp *Response) ([]*model.Listing, error) {
	var wrapper struct {
		Data json.RawMessage `json:"data"`
	}

	if err := json.Unmarshal(resp.Body, &wrapper); err != nil {
		return nil, fmt.Errorf("could not decode active listings wrapper:\n%+v\n%s", resp.ToString(), err)
	}

	var listings []*model.Listing
	if err := json.Unmarshal(wrapper.Data, &listings); err != nil {
		return nil, fmt.Errorf("could not decode active listings json:\n%+v\n%s", resp.ToString(), err)
	}

	return listings, nil
}
