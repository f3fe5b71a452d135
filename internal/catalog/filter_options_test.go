package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterOptionsCoverAllVocabularies(t *testing.T) {
	opts := FilterOptions()

	assert.Len(t, opts.FloralSources, 17)
	assert.Len(t, opts.Origins, 16)
	assert.Len(t, opts.Types, 7)
	assert.Len(t, opts.FlavorProfiles, 8)
	assert.Len(t, opts.SourceTypes, 6)
	assert.Len(t, opts.Certifications, 8)
}

func TestFilterOptionsCarryDisplayLabels(t *testing.T) {
	opts := FilterOptions()

	for _, group := range [][]EnumOption{
		opts.FloralSources, opts.Origins, opts.Types,
		opts.FlavorProfiles, opts.SourceTypes, opts.Certifications,
	} {
		require.NotEmpty(t, group)
		for _, opt := range group {
			assert.NotEmpty(t, opt.Value)
			assert.NotEmpty(t, opt.DisplayName)
			assert.Equal(t, int64(0), opt.Count)
		}
	}

	assert.Equal(t, "ORANGE_BLOSSOM", opts.FloralSources[3].Value)
	assert.Equal(t, "Orange Blossom", opts.FloralSources[3].DisplayName)
}
