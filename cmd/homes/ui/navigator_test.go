package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoute(t *testing.T) {
	tests := []struct {
		path    string
		want    Route
		wantErr bool
	}{
		{path: "/", want: Route{Path: "/"}},
		{path: "", want: Route{Path: "/"}},
		{path: "/listing/lst-001", want: Route{Path: "/listing/lst-001", ListingID: "lst-001"}},
		{path: "/listing/", wantErr: true},
		{path: "/listing/a/b", wantErr: true},
		{path: "/favorites", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := ParseRoute(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNavigator_PushBack(t *testing.T) {
	n := NewNavigator()
	assert.Equal(t, RouteList, n.Current().Path)
	assert.False(t, n.Back(), "cannot go back from the list")

	r, err := n.Push(ListingRoute("lst-003"))
	require.NoError(t, err)
	assert.True(t, r.IsDetail())
	assert.Equal(t, "lst-003", n.Current().ListingID)
	assert.Equal(t, 2, n.Depth())

	_, err = n.Push("/nowhere")
	assert.Error(t, err)
	assert.Equal(t, 2, n.Depth(), "failed push leaves the stack alone")

	assert.True(t, n.Back())
	assert.Equal(t, RouteList, n.Current().Path)
	assert.False(t, n.Current().IsDetail())
}
