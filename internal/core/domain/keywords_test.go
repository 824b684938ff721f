package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordSetAddIsIdempotent(t *testing.T) {
	var ks KeywordSet
	require.True(t, ks.Add("shoes"))
	require.False(t, ks.Add("shoes"))
	require.False(t, ks.Add("  shoes "))
	assert.Equal(t, 1, ks.Len())
	assert.Equal(t, "shoes", ks.String())
}

func TestKeywordSetAddTrimsAndRejectsEmpty(t *testing.T) {
	var ks KeywordSet
	assert.False(t, ks.Add("   "))
	assert.False(t, ks.Add(""))
	assert.True(t, ks.Add("  sale\t"))
	assert.Equal(t, []string{"sale"}, ks.Keywords())
}

func TestKeywordSetIsCaseSensitive(t *testing.T) {
	var ks KeywordSet
	ks.Add("Sale")
	assert.True(t, ks.Add("sale"))
	assert.Equal(t, "Sale, sale", ks.String())
}

// Adding then removing the same keyword restores size and flattened form.
func TestKeywordSetAddRemoveRoundTrip(t *testing.T) {
	for _, seed := range []string{"", "shoes", "shoes, sale", "a, b, c"} {
		ks := ParseKeywords(seed)
		size, flat := ks.Len(), ks.String()

		ks.Add("winter")
		ks.Remove("winter")

		assert.Equal(t, size, ks.Len(), "seed %q", seed)
		assert.Equal(t, flat, ks.String(), "seed %q", seed)
	}
}

func TestKeywordSetRemoveMissing(t *testing.T) {
	ks := ParseKeywords("shoes, sale")
	assert.False(t, ks.Remove("boots"))
	assert.True(t, ks.Remove("shoes"))
	assert.Equal(t, "sale", ks.String())
}

func TestParseKeywords(t *testing.T) {
	ks := ParseKeywords("shoes, sale, shoes, , boots")
	assert.Equal(t, []string{"shoes", "sale", "boots"}, ks.Keywords())
	assert.Equal(t, 0, ParseKeywords("").Len())
}

func TestKeywordSetCloneIsIndependent(t *testing.T) {
	ks := ParseKeywords("a, b")
	c := ks.Clone()
	c.Add("c")
	ks.Add("d")
	assert.Equal(t, "a, b, c", c.String())
	assert.Equal(t, "a, b, d", ks.String())
}

func TestKeywordSetJSON(t *testing.T) {
	var empty KeywordSet
	b, err := json.Marshal(empty)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(b))

	b, err = json.Marshal(ParseKeywords("shoes, sale"))
	require.NoError(t, err)
	assert.JSONEq(t, `["shoes","sale"]`, string(b))
}

func TestKeywordSetUnmarshalNormalizes(t *testing.T) {
	var got KeywordSet
	require.NoError(t, json.Unmarshal([]byte(`[" shoes ","shoes",""]`), &got))
	assert.Equal(t, []string{"shoes"}, got.Keywords())
}
