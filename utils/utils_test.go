package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Headphones":            "headphones",
		"Smart Watches & Bands": "smart-watches-bands",
		"  Audio / Speakers  ":  "audio-speakers",
		"--Weird--Name--":       "weird-name",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), "Slugify(%q)", in)
	}
}

func TestGenerateTrackingNumber(t *testing.T) {
	a := GenerateTrackingNumber()
	b := GenerateTrackingNumber()

	assert.True(t, strings.HasPrefix(a, "TRK"))
	assert.Len(t, a, 19)
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, strings.ToUpper(a))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 484.98, Round2(484.9825))
	assert.Equal(t, 10.0, Round2(9.999))
	assert.Equal(t, 0.0, Round2(0))
}

func TestPaginate(t *testing.T) {
	start, end, meta := Paginate(7, 2, 2)
	assert.Equal(t, 2, start)
	assert.Equal(t, 4, end)
	assert.Equal(t, 2, meta.CurrentPage)
	assert.Equal(t, 4, meta.TotalPages)
	assert.Equal(t, 7, meta.TotalItems)
	assert.Equal(t, 2, meta.ItemsPerPage)

	// a page past the end yields an empty window
	start, end, _ = Paginate(7, 10, 2)
	assert.Equal(t, start, end)
}
