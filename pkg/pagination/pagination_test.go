package pagination

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPageRequest_Normalize(t *testing.T) {
	t.Parallel()

	require.Equal(t, PageRequest{Limit: MaxLimit, Offset: 0}, PageRequest{Limit: 1000, Offset: -3}.Normalize())
	require.Equal(t, PageRequest{Limit: 5, Offset: 10}, PageRequest{Limit: 5, Offset: 10}.Normalize())
	require.False(t, PageRequest{}.Enabled())
}

func TestPage_Links(t *testing.T) {
	t.Parallel()

	base, err := url.Parse("http://testserver/api/v1/posts/?limit=2&offset=2")
	require.NoError(t, err)

	tests := []struct {
		name     string
		req      PageRequest
		items    []int
		total    int
		wantNext *string
		wantPrev *string
	}{
		{
			name:     "middle window",
			req:      PageRequest{Limit: 2, Offset: 2},
			items:    []int{3, 4},
			total:    5,
			wantNext: ptr("http://testserver/api/v1/posts/?limit=2&offset=4"),
			wantPrev: ptr("http://testserver/api/v1/posts/?limit=2"),
		},
		{
			name:  "last window",
			req:   PageRequest{Limit: 2, Offset: 4},
			items: []int{5},
			total: 5,
			// offset 2 is still > 0, so it stays in the link
			wantPrev: ptr("http://testserver/api/v1/posts/?limit=2&offset=2"),
		},
		{
			name:  "disabled",
			req:   PageRequest{},
			items: []int{1, 2, 3},
			total: 3,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := NewPage(tt.items, tt.total, tt.req)
			require.Equal(t, tt.total, p.Count)
			require.Equal(t, tt.wantNext, p.NextURL(base, tt.req))
			require.Equal(t, tt.wantPrev, p.PrevURL(base, tt.req))
		})
	}
}

func ptr(s string) *string { return &s }
