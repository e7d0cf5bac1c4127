package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories_TabOrder(t *testing.T) {
	assert.Equal(t, []Category{CategoryVerified, CategoryNearYou, CategoryNew}, Categories())
	for _, c := range Categories() {
		assert.True(t, c.Valid(), c)
	}
	assert.False(t, Category("featured").Valid())
	assert.False(t, Category("").Valid())
}

func TestCategory_Label(t *testing.T) {
	assert.Equal(t, "Verified", CategoryVerified.Label())
	assert.Equal(t, "Near you", CategoryNearYou.Label())
	assert.Equal(t, "New", CategoryNew.Label())
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
	}{
		{"verified", CategoryVerified},
		{"Verified", CategoryVerified},
		{"near_you", CategoryNearYou},
		{"Near you", CategoryNearYou},
		{"near-you", CategoryNearYou},
		{"  NEW ", CategoryNew},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCategory(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseCategory("luxury")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "luxury")
}
