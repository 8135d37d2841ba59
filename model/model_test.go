package model

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FreezeNow/swagger-to-axios/oaserrors"
)

func TestParseCLIType(t *testing.T) {
	tests := []struct {
		in      string
		want    CLIType
		wantErr bool
	}{
		{in: "", want: CLITypeVueCli},
		{in: "VueCli", want: CLITypeVueCli},
		{in: "vuecli", want: CLITypeVueCli},
		{in: "Vite", want: CLITypeVite},
		{in: " VITE ", want: CLITypeVite},
		{in: "webpack", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCLIType(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, oaserrors.ErrConfig))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultFolderName(t *testing.T) {
	a := DefaultFolderName("https://example.com/a.yaml")
	assert.Regexp(t, regexp.MustCompile(`^api_[0-9a-f]{8}$`), a)
	assert.Equal(t, a, DefaultFolderName("https://example.com/a.yaml"))
	assert.NotEqual(t, a, DefaultFolderName("https://example.com/b.yaml"))
}

func TestFolderStatsAndTag(t *testing.T) {
	f := Folder{Tags: []Tag{
		{Name: "a", Operations: []Operation{{URL: "/a", Method: "get"}, {URL: "/a", Method: "post"}}},
		{Name: "b"},
		{Name: "", Operations: []Operation{{URL: "/c", Method: "get"}}},
	}}
	assert.Equal(t, Stats{Tags: 3, Operations: 3}, f.Stats())

	tag, ok := f.Tag("")
	require.True(t, ok)
	assert.Len(t, tag.Operations, 1)
	_, ok = f.Tag("missing")
	assert.False(t, ok)
}
