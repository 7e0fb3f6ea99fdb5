package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	p := NewPagination(1, 20, 45)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNextPage)
	assert.False(t, p.HasPreviousPage)

	p = NewPagination(3, 20, 45)
	assert.False(t, p.HasNextPage)
	assert.True(t, p.HasPreviousPage)

	// an exact multiple does not add a trailing empty page
	p = NewPagination(2, 20, 40)
	assert.Equal(t, 2, p.TotalPages)
	assert.False(t, p.HasNextPage)

	p = NewPagination(1, 20, 0)
	assert.Zero(t, p.TotalPages)
	assert.False(t, p.HasNextPage)
}

func TestPageQueryOffset(t *testing.T) {
	assert.Zero(t, PageQuery{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 40, PageQuery{Page: 3, Limit: 20}.Offset())
}
