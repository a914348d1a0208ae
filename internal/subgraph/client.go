package subgraph

import (
	"context"
	"encoding/json"
	"fmt"

	"pooltags/pkg/client"
	"pooltags/pkg/models"

	"github.com/rs/zerolog/log"
)

// PageSize is the number of pools requested per query. A page shorter than
// this ends pagination.
const PageSize = 1000

const poolsQuery = `query PoolsPage($lastTimestamp: BigInt!) {
  pools(
    first: 1000
    orderBy: createdAtTimestamp
    orderDirection: asc
    where: { createdAtTimestamp_gt: $lastTimestamp }
  ) {
    id
    createdAtTimestamp
    token0 { id name symbol }
    token1 { id name symbol }
  }
}`

type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type poolsResponse struct {
	Data *struct {
		Pools []models.Pool `json:"pools"`
	} `json:"data"`
	Errors []graphqlError `json:"errors"`
}

// Client fetches pool pages from a resolved subgraph endpoint. One request
// per page, no retries; any failure is fatal to the caller's whole run.
type Client struct {
	http *client.HTTPClient
}

func NewClient() *Client {
	return &Client{http: client.NewHTTPClient()}
}

// FetchPoolsPage requests up to PageSize pools created strictly after
// lastTimestamp, ordered ascending by creation timestamp.
func (c *Client) FetchPoolsPage(ctx context.Context, url string, lastTimestamp int64) ([]models.Pool, error) {
	body, err := c.http.Post(ctx, url, graphqlRequest{
		Query:     poolsQuery,
		Variables: map[string]interface{}{"lastTimestamp": lastTimestamp},
	})
	if err != nil {
		return nil, fmt.Errorf("querying pools after %d: %w", lastTimestamp, err)
	}

	var resp poolsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &MalformedResponseError{Reason: fmt.Sprintf("invalid JSON: %v", err)}
	}

	if len(resp.Errors) > 0 {
		messages := make([]string, len(resp.Errors))
		for i, gqlErr := range resp.Errors {
			messages[i] = gqlErr.Message
			log.Error().Str("message", gqlErr.Message).Msg("Subgraph query error")
		}
		return nil, &UpstreamQueryError{Messages: messages}
	}

	if resp.Data == nil || resp.Data.Pools == nil {
		return nil, &MalformedResponseError{Reason: "response missing data.pools"}
	}

	return resp.Data.Pools, nil
}
