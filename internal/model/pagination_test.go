package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageNormalize(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		page := Page{}.Normalize()
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, DefaultPageSize, page.PageSize)
	})

	t.Run("page size capped", func(t *testing.T) {
		page := Page{Page: 2, PageSize: 500}.Normalize()
		assert.Equal(t, MaxPageSize, page.PageSize)
	})

	t.Run("negative values clamped", func(t *testing.T) {
		page := Page{Page: -3, PageSize: -1}.Normalize()
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, DefaultPageSize, page.PageSize)
	})
}

func TestPageOffset(t *testing.T) {
	page := Page{Page: 3, PageSize: 10}.Normalize()
	assert.Equal(t, 10, page.Limit())
	assert.Equal(t, 20, page.Offset())
}
