package subgraph

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

//go:embed endpoints.json
var endpointsJSON []byte

// apiKeyPlaceholder is the literal token in each endpoint template that the
// caller's gateway API key replaces.
const apiKeyPlaceholder = "{api-key}"

// endpointTemplates maps a string-encoded chain id to its gateway URL
// template. Compiled in at build time; never loaded from files or env.
var endpointTemplates = mustLoadEndpoints()

func mustLoadEndpoints() map[string]string {
	m := map[string]string{}
	if err := json.Unmarshal(endpointsJSON, &m); err != nil {
		panic(fmt.Sprintf("invalid embedded endpoint table: %v", err))
	}
	return m
}

// SupportedNetworks returns every network id with a known endpoint, sorted
// numerically so error messages and exports stay stable.
func SupportedNetworks() []string {
	ids := make([]string, 0, len(endpointTemplates))
	for id := range endpointTemplates {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, _ := strconv.Atoi(ids[i])
		b, _ := strconv.Atoi(ids[j])
		return a < b
	})
	return ids
}

// ResolveURL maps a network id to its gateway endpoint with the API key
// percent-encoded and substituted for the {api-key} placeholder. The id must
// be numeric and present in the endpoint table.
func ResolveURL(networkID, apiKey string) (string, error) {
	template, ok := endpointTemplates[networkID]
	if _, err := strconv.Atoi(networkID); err != nil || !ok {
		return "", &UnsupportedNetworkError{NetworkID: networkID, Supported: SupportedNetworks()}
	}
	return strings.Replace(template, apiKeyPlaceholder, url.PathEscape(apiKey), 1), nil
}
