package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pooltags/pkg/models"

	"github.com/stretchr/testify/require"
)

func sampleTags() []models.ContractTag {
	return []models.ContractTag{
		{
			ContractAddress: "eip155:1:0xabc",
			PublicNameTag:   "WETH/USDC Pool",
			ProjectName:     "Uniswap v3",
			UIWebsiteLink:   "https://app.uniswap.org",
			PublicNote:      "The liquidity pool contract on Uniswap v3 for the Wrapped Ether / USD Coin pair.",
		},
		{
			ContractAddress: "eip155:1:0xdef",
			PublicNameTag:   "DAI/USDT Pool",
			ProjectName:     "Uniswap v3",
			UIWebsiteLink:   "https://app.uniswap.org",
			PublicNote:      "The liquidity pool contract on Uniswap v3 for the Dai / Tether pair.",
		},
	}
}

func TestWriteJSONArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "tags.json")

	require.NoError(t, NewWriter(path, FormatJSON).Write(sampleTags()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded []models.ContractTag
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, sampleTags(), decoded)
}

func TestWriteJSONUsesSubmissionKeys(t *testing.T) {
	// The downstream registry matches on the exact key strings, spaces and
	// slash included.
	path := filepath.Join(t.TempDir(), "tags.json")
	require.NoError(t, NewWriter(path, FormatJSON).Write(sampleTags()[:1]))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw []map[string]string
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 1)
	for _, key := range []string{
		"Contract Address", "Public Name Tag", "Project Name", "UI/Website Link", "Public Note",
	} {
		require.Contains(t, raw[0], key)
	}
}

func TestWriteJSONL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tags.jsonl")

	require.NoError(t, NewWriter(path, FormatJSONL).Write(sampleTags()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)

	var tag models.ContractTag
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &tag))
	require.Equal(t, "eip155:1:0xdef", tag.ContractAddress)
}
