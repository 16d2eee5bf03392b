package store_test

import (
	"testing"

	"github.com/inkwellapp/inkwell-server/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate_FirstPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page := store.Paginate(items, store.PageParams{Page: 1, PageSize: 2})

	assert.Equal(t, 5, page.Count)
	assert.Equal(t, []int{1, 2}, page.Results)
	require.NotNil(t, page.Next)
	assert.Equal(t, 2, *page.Next)
	assert.Nil(t, page.Previous)
}

func TestPaginate_MiddlePage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page := store.Paginate(items, store.PageParams{Page: 2, PageSize: 2})

	assert.Equal(t, []int{3, 4}, page.Results)
	require.NotNil(t, page.Next)
	assert.Equal(t, 3, *page.Next)
	require.NotNil(t, page.Previous)
	assert.Equal(t, 1, *page.Previous)
}

func TestPaginate_LastPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page := store.Paginate(items, store.PageParams{Page: 3, PageSize: 2})

	assert.Equal(t, []int{5}, page.Results)
	assert.Nil(t, page.Next)
	require.NotNil(t, page.Previous)
	assert.Equal(t, 2, *page.Previous)
}

func TestPaginate_PastTheEnd(t *testing.T) {
	items := []int{1, 2, 3}

	page := store.Paginate(items, store.PageParams{Page: 10, PageSize: 2})

	assert.Equal(t, 3, page.Count)
	assert.Empty(t, page.Results)
	assert.Nil(t, page.Next)
}

func TestPaginate_DefaultsApplied(t *testing.T) {
	items := make([]int, 25)

	page := store.Paginate(items, store.PageParams{})

	// Default page size is 10, page 1
	assert.Len(t, page.Results, 10)
	assert.Nil(t, page.Previous)
	require.NotNil(t, page.Next)
}

func TestPageParams_Validate(t *testing.T) {
	p := store.PageParams{Page: -3, PageSize: 5000}
	p.Validate()

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 100, p.PageSize)
}
