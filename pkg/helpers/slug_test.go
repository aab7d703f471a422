package helpers

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "jane-doe", Slugify("Jane Doe"))
	assert.Equal(t, "jane-doe", Slugify("  Jane   Doe  "))
	assert.Equal(t, "josé-doe", Slugify("José Doe"))
}

func TestSlugify_RoundTripsToTheName(t *testing.T) {
	t.Parallel()

	// The slug the API advertises must resolve back to the name it was
	// derived from, accented characters included.
	for _, name := range []string{"Jane Doe", "José Doe", "Åsa Lindqvist"} {
		key := NormalizeSlug(Slugify(name))
		re, err := regexp.Compile("(?i)" + NamePattern(key))
		require.NoError(t, err)
		assert.True(t, re.MatchString(name), "slug for %q does not resolve", name)
	}
}

func TestNormalizeSlug(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Jane Doe", NormalizeSlug("Jane-Doe"))
	assert.Equal(t, "jane doe", NormalizeSlug("jane-doe"))
	assert.Equal(t, "Jane Doe", NormalizeSlug("Jane%2DDoe"))
	assert.Equal(t, "", NormalizeSlug("---"))
	assert.Equal(t, "", NormalizeSlug(""))
}

func TestNamePattern_EscapesMetacharacters(t *testing.T) {
	t.Parallel()

	// "a.*" must only match the literal string, never act as a wildcard.
	re, err := regexp.Compile("(?i)" + NamePattern("a.*"))
	require.NoError(t, err)

	assert.False(t, re.MatchString("alice"))
	assert.False(t, re.MatchString("anything at all"))
	assert.True(t, re.MatchString("a.*"))
}

func TestNamePattern_CaseInsensitiveWholeString(t *testing.T) {
	t.Parallel()

	re, err := regexp.Compile("(?i)" + NamePattern("Jane Doe"))
	require.NoError(t, err)

	assert.True(t, re.MatchString("jane doe"))
	assert.True(t, re.MatchString("JANE DOE"))
	assert.False(t, re.MatchString("jane doe jr"))
	assert.False(t, re.MatchString("not jane doe"))
}
