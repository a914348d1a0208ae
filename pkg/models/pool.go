package models

import (
	"fmt"
	"strconv"
)

// Token holds the token-side metadata the subgraph returns for each pool.
type Token struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// Pool is a liquidity pool as indexed by the Uniswap v3 subgraph, pairing
// two tokens. Pages arrive ordered ascending by creation timestamp; that
// ordering is enforced by the query, not re-checked here.
type Pool struct {
	ID                 string        `json:"id"`
	CreatedAtTimestamp UnixTimestamp `json:"createdAtTimestamp"`
	Token0             Token         `json:"token0"`
	Token1             Token         `json:"token1"`
}

// UnixTimestamp decodes The Graph's BigInt encoding, which serializes
// integers as decimal strings.
type UnixTimestamp int64

func (t *UnixTimestamp) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("parsing timestamp %s: %w", string(data), err)
	}
	*t = UnixTimestamp(v)
	return nil
}
