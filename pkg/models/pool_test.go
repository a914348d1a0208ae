package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnixTimestampDecodesBigIntString(t *testing.T) {
	// The Graph serializes BigInt fields as decimal strings.
	var pool Pool
	require.NoError(t, json.Unmarshal([]byte(
		`{"id":"0xabc","createdAtTimestamp":"1620169200"}`), &pool))
	require.Equal(t, UnixTimestamp(1620169200), pool.CreatedAtTimestamp)
}

func TestUnixTimestampDecodesBareNumber(t *testing.T) {
	var ts UnixTimestamp
	require.NoError(t, json.Unmarshal([]byte(`42`), &ts))
	require.Equal(t, UnixTimestamp(42), ts)
}

func TestUnixTimestampRejectsGarbage(t *testing.T) {
	var ts UnixTimestamp
	require.Error(t, json.Unmarshal([]byte(`"soon"`), &ts))
}
