package provider

import (
	"context"

	"pooltags/pkg/models"
)

// TagFetcher is the tag-service capability contract: one call yields every
// contract tag the integration can currently produce for a network.
type TagFetcher interface {
	ReturnTags(ctx context.Context, networkID, apiKey string) ([]models.ContractTag, error)
	Name() string
}
