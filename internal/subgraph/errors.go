package subgraph

import (
	"fmt"
	"strings"
)

// UnsupportedNetworkError is returned before any network call when the
// requested network id is unknown or not numeric. The message enumerates the
// supported ids so an operator can see what to use instead.
type UnsupportedNetworkError struct {
	NetworkID string
	Supported []string
}

func (e *UnsupportedNetworkError) Error() string {
	return fmt.Sprintf("unsupported network %q, supported networks: %s",
		e.NetworkID, strings.Join(e.Supported, ", "))
}

// UpstreamQueryError is returned when the response carries a non-empty
// GraphQL errors array, even if partial data came back alongside it.
type UpstreamQueryError struct {
	Messages []string
}

func (e *UpstreamQueryError) Error() string {
	return fmt.Sprintf("subgraph returned %d query errors: %s",
		len(e.Messages), strings.Join(e.Messages, "; "))
}

// MalformedResponseError is returned when the response body is not JSON or
// does not carry the expected data.pools shape.
type MalformedResponseError struct {
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return "malformed subgraph response: " + e.Reason
}
