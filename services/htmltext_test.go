package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "great video", "great video"},
		{"entities", "Tom &amp; Jerry &quot;forever&quot; &#39;ok&#39;", `Tom & Jerry "forever" 'ok'`},
		{"line breaks", "first line<br>second line", "first line\nsecond line"},
		{"links keep their text", `see <a href="https://www.youtube.com/watch?v=x&amp;t=10">0:10</a> lol`, "see 0:10 lol"},
		{"bold", "<b>so</b> good", "so good"},
		{"trims", "  spaced  ", "spaced"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, PlainText(tt.in))
		})
	}
}
