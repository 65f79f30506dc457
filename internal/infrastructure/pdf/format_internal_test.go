package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCount(t *testing.T) {
	cases := map[int64]string{
		0:       "0",
		999:     "999",
		1000:    "1,000",
		25000:   "25,000",
		1234567: "1,234,567",
		-1200:   "-1,200",
		-15:     "-15",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatCount(in), "formatCount(%d)", in)
	}
}
