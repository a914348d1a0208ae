package tags

import (
	"fmt"
	"regexp"
	"strings"

	"pooltags/pkg/models"

	"github.com/rs/zerolog/log"
)

const (
	projectName = "Uniswap v3"
	websiteLink = "https://app.uniswap.org"

	// Symbol pairs longer than maxPairLen are cut to truncatedPairLen and
	// suffixed with "..." so the name tag stays readable.
	maxPairLen       = 45
	truncatedPairLen = 42
)

// markupPattern flags token names and symbols carrying HTML/XML-like tags.
// Tagged metadata is attacker-controlled text and never ends up in output.
var markupPattern = regexp.MustCompile(`<[^>]*>`)

// invalidField names the first token field that fails validation, or ""
// when the token is acceptable.
func invalidField(t models.Token) string {
	if name := strings.TrimSpace(t.Name); name == "" || markupPattern.MatchString(name) {
		return "name"
	}
	if symbol := strings.TrimSpace(t.Symbol); symbol == "" || markupPattern.MatchString(symbol) {
		return "symbol"
	}
	return ""
}

// Transform maps pools into contract tags, dropping any pool whose token
// metadata is empty or carries markup. A pool is rejected in full: a valid
// token on the other side never produces a partial tag. Rejections are
// logged, never returned as errors. Output preserves input order.
func Transform(networkID string, pools []models.Pool) []models.ContractTag {
	result := make([]models.ContractTag, 0, len(pools))
	for _, pool := range pools {
		if field := invalidField(pool.Token0); field != "" {
			log.Debug().
				Str("pool", pool.ID).
				Str("token", pool.Token0.ID).
				Str("field", field).
				Msg("Skipping pool, token0 failed validation")
			continue
		}
		if field := invalidField(pool.Token1); field != "" {
			log.Debug().
				Str("pool", pool.ID).
				Str("token", pool.Token1.ID).
				Str("field", field).
				Msg("Skipping pool, token1 failed validation")
			continue
		}
		result = append(result, buildTag(networkID, pool))
	}
	return result
}

func buildTag(networkID string, pool models.Pool) models.ContractTag {
	pair := pool.Token0.Symbol + "/" + pool.Token1.Symbol
	if len(pair) > maxPairLen {
		pair = pair[:truncatedPairLen] + "..."
	}

	return models.ContractTag{
		ContractAddress: fmt.Sprintf("eip155:%s:%s", networkID, pool.ID),
		PublicNameTag:   pair + " Pool",
		ProjectName:     projectName,
		UIWebsiteLink:   websiteLink,
		PublicNote: fmt.Sprintf("The liquidity pool contract on Uniswap v3 for the %s / %s pair.",
			pool.Token0.Name, pool.Token1.Name),
	}
}
