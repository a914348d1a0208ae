package uniswapv3

import (
	"context"
	"fmt"

	"pooltags/internal/subgraph"
	"pooltags/internal/tags"
	"pooltags/pkg/models"

	"github.com/rs/zerolog/log"
)

// Provider produces contract tags for Uniswap v3 pools by paging through the
// network's subgraph.
type Provider struct {
	client *subgraph.Client
}

func NewProvider() *Provider {
	return &Provider{client: subgraph.NewClient()}
}

func (p *Provider) Name() string {
	return "Uniswap v3"
}

// ReturnTags resolves the network's subgraph endpoint and collects one tag
// per valid pool. Any fetch failure aborts the whole call with no partial
// result.
func (p *Provider) ReturnTags(ctx context.Context, networkID, apiKey string) ([]models.ContractTag, error) {
	url, err := subgraph.ResolveURL(networkID, apiKey)
	if err != nil {
		log.Error().Err(err).Str("network", networkID).Msg("Cannot resolve subgraph endpoint")
		return nil, fmt.Errorf("resolving endpoint for network %s: %w", networkID, err)
	}

	return p.collect(ctx, networkID, url)
}

// collect pages through the subgraph using the creation timestamp of the
// last pool seen as the cursor, transforming each page as it arrives. A page
// shorter than the page size ends the loop; a final page of exactly that
// size costs one extra empty fetch, which the upstream contract accepts.
func (p *Provider) collect(ctx context.Context, networkID, url string) ([]models.ContractTag, error) {
	var (
		result    []models.ContractTag
		watermark int64
	)

	for {
		page, err := p.client.FetchPoolsPage(ctx, url, watermark)
		if err != nil {
			log.Error().
				Err(err).
				Str("network", networkID).
				Int64("cursor", watermark).
				Msg("Pool page fetch failed")
			return nil, fmt.Errorf("fetching pools for network %s after %d: %w", networkID, watermark, err)
		}

		result = append(result, tags.Transform(networkID, page)...)

		if len(page) < subgraph.PageSize {
			break
		}
		watermark = int64(page[len(page)-1].CreatedAtTimestamp)
	}

	log.Info().Str("network", networkID).Int("tags", len(result)).Msg("Tag generation complete")
	return result, nil
}
