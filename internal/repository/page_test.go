package repository

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePage(t *testing.T) {
	tests := []struct {
		name       string
		page, size string
		sort       []string
		want       Page
	}{
		{"defaults", "", "", nil, Page{Size: DefaultPageSize}},
		{"garbage", "x", "-3", nil, Page{Size: DefaultPageSize}},
		{"size capped", "1", "50000", nil, Page{Number: 1, Size: MaxPageSize}},
		{"page capped", strconv.Itoa(math.MaxInt), "20", nil, Page{Number: MaxPageNumber, Size: 20}},
		{"sort", "0", "5", []string{"libelle,desc", " id ", ","}, Page{Size: 5, Sort: []Order{{"libelle", true}, {"id", false}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePage(tt.page, tt.size, tt.sort))
		})
	}
}

func TestOffsetNeverOverflows(t *testing.T) {
	p := ParsePage("9223372036854775807", strconv.Itoa(MaxPageSize), nil)
	assert.Positive(t, p.Offset())
	assert.LessOrEqual(t, p.Offset(), math.MaxInt32)

	p = Page{Number: math.MaxInt, Size: math.MaxInt}
	assert.Positive(t, p.Offset())
	assert.LessOrEqual(t, p.Offset(), math.MaxInt32)

	assert.Zero(t, Page{Number: 3}.Offset(), "unpaged")
}
