package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSitesAll(t *testing.T) {
	descs := ResolveSites([]string{"all"})
	names := make([]string, 0, len(descs))
	for _, d := range descs {
		names = append(names, d.Site)
	}
	assert.Equal(t, []string{"anthem", "psychtoday", "uhc"}, names)
}

func TestResolveSitesSkipsUnknown(t *testing.T) {
	descs := ResolveSites([]string{"anthem", "nosuchsite"})
	require.Len(t, descs, 1)
	assert.Equal(t, "anthem", descs[0].Site)
}

func TestResolveSitesDeduplicates(t *testing.T) {
	descs := ResolveSites([]string{"uhc", "uhc", "all"})
	assert.Len(t, descs, 3)
}
