package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	value, ok := ParseAmount("1,500")
	require.True(t, ok)
	require.Equal(t, float64(1500), value)

	value, ok = ParseAmount(" 45.2\n")
	require.True(t, ok)
	require.Equal(t, 45.2, value)

	_, ok = ParseAmount("N/A")
	require.False(t, ok)

	_, ok = ParseAmount("")
	require.False(t, ok)
}

func TestParseUsdAmount(t *testing.T) {
	value, ok := ParseUsdAmount("~$45.20")
	require.True(t, ok)
	require.Equal(t, 45.2, value)

	value, ok = ParseUsdAmount("$1,234.56")
	require.True(t, ok)
	require.Equal(t, 1234.56, value)

	_, ok = ParseUsdAmount("~$—")
	require.False(t, ok)
}

func TestTrimRarityToken(t *testing.T) {
	require.Equal(t, "Vintage", TrimRarityToken("Vintage 3%"))
	require.Equal(t, "Rare", TrimRarityToken("Rare"))
	// multi-word values lose their last word, this mirrors the page markup
	require.Equal(t, "Deep Space", TrimRarityToken("Deep Space 3%"))
}

func TestIssuedValues(t *testing.T) {
	require.Equal(t, []string{"1,234", "10,000"}, IssuedValues("1,234 of 10,000"))
	require.Equal(t, []string{}, IssuedValues(""))
	require.Equal(t, []string{"42"}, IssuedValues("42"))
}

func TestNormalizeKey(t *testing.T) {
	require.Equal(t, "owner", NormalizeKey("  Owner\n"))
	require.Equal(t, "model", NormalizeKey("Model"))
}
