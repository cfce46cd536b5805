package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/google/uuid"
)

func TestResolvedTarget_Destination(t *testing.T) {
	url := "https://example.com/direct"
	selectorID := uuid.New()
	selectorURL := "https://example.com/selector"
	empty := ""

	tests := []struct {
		name   string
		target ResolvedTarget
		want   string
		wantOK bool
	}{
		{
			name:   "direct url only",
			target: ResolvedTarget{URL: &url},
			want:   url,
			wantOK: true,
		},
		{
			name:   "selector only",
			target: ResolvedTarget{SelectorID: &selectorID, SelectorURL: &selectorURL},
			want:   selectorURL,
			wantOK: true,
		},
		{
			name:   "selector wins over stale url",
			target: ResolvedTarget{URL: &url, SelectorID: &selectorID, SelectorURL: &selectorURL},
			want:   selectorURL,
			wantOK: true,
		},
		{
			name:   "selector with empty url falls back",
			target: ResolvedTarget{URL: &url, SelectorID: &selectorID, SelectorURL: &empty},
			want:   url,
			wantOK: true,
		},
		{
			name:   "no destination at all",
			target: ResolvedTarget{},
			wantOK: false,
		},
		{
			name:   "empty direct url",
			target: ResolvedTarget{URL: &empty},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			destination, ok := tt.target.Destination()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, destination)
		})
	}
}
