package tags

import (
	"strings"
	"testing"

	"pooltags/pkg/models"

	"github.com/stretchr/testify/require"
)

func validPool(id string) models.Pool {
	return models.Pool{
		ID:                 id,
		CreatedAtTimestamp: 1620169200,
		Token0:             models.Token{ID: "0x1", Name: "Wrapped Ether", Symbol: "WETH"},
		Token1:             models.Token{ID: "0x2", Name: "USD Coin", Symbol: "USDC"},
	}
}

func TestTransformBuildsTagFields(t *testing.T) {
	result := Transform("1", []models.Pool{validPool("0xabc")})
	require.Len(t, result, 1)

	tag := result[0]
	require.Equal(t, "eip155:1:0xabc", tag.ContractAddress)
	require.Equal(t, "WETH/USDC Pool", tag.PublicNameTag)
	require.Equal(t, "Uniswap v3", tag.ProjectName)
	require.Equal(t, "https://app.uniswap.org", tag.UIWebsiteLink)
	require.Equal(t,
		"The liquidity pool contract on Uniswap v3 for the Wrapped Ether / USD Coin pair.",
		tag.PublicNote)
}

func TestTransformRejectsMarkup(t *testing.T) {
	pool := validPool("0xabc")
	pool.Token0.Name = "<script>alert(1)</script>"

	require.Empty(t, Transform("1", []models.Pool{pool}))
}

func TestTransformRejectsBlankSymbol(t *testing.T) {
	pool := validPool("0xabc")
	pool.Token1.Symbol = "   "

	require.Empty(t, Transform("1", []models.Pool{pool}))
}

func TestTransformRejectsPoolInFull(t *testing.T) {
	// One bad token drops the whole pool; the valid side never produces a
	// partial tag.
	bad := validPool("0xbad")
	bad.Token0.Name = ""
	good := validPool("0xgood")

	result := Transform("1", []models.Pool{bad, good})
	require.Len(t, result, 1)
	require.Equal(t, "eip155:1:0xgood", result[0].ContractAddress)
}

func TestTransformTruncatesLongPairs(t *testing.T) {
	pool := validPool("0xabc")
	pool.Token0.Symbol = strings.Repeat("A", 30)
	pool.Token1.Symbol = strings.Repeat("B", 19) // pair is 50 chars with the slash

	result := Transform("1", []models.Pool{pool})
	require.Len(t, result, 1)

	pair := strings.TrimSuffix(result[0].PublicNameTag, " Pool")
	require.Len(t, pair, 45)
	require.True(t, strings.HasSuffix(pair, "..."))
	require.Equal(t, strings.Repeat("A", 30)+"/"+strings.Repeat("B", 11)+"...", pair)
}

func TestTransformKeepsPairsAtLimit(t *testing.T) {
	pool := validPool("0xabc")
	pool.Token0.Symbol = strings.Repeat("A", 22)
	pool.Token1.Symbol = strings.Repeat("B", 22) // exactly 45 chars with the slash

	result := Transform("1", []models.Pool{pool})
	require.Len(t, result, 1)

	pair := strings.TrimSuffix(result[0].PublicNameTag, " Pool")
	require.Len(t, pair, 45)
	require.False(t, strings.HasSuffix(pair, "..."))
}

func TestTransformPreservesOrder(t *testing.T) {
	first := validPool("0xfirst")
	second := validPool("0xsecond")

	result := Transform("137", []models.Pool{first, second})
	require.Len(t, result, 2)
	require.Equal(t, "eip155:137:0xfirst", result[0].ContractAddress)
	require.Equal(t, "eip155:137:0xsecond", result[1].ContractAddress)
}
