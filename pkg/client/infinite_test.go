package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leaddesk/internal/entity"
	"leaddesk/internal/usecase"
)

// pagedServer serves fixed two-item pages from a backing slice, honoring
// page and limit-free pagination the way the real list endpoint does.
func pagedServer(t *testing.T, total int, pageSize int) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		start := page * pageSize
		end := start + pageSize
		if end > total {
			end = total
		}

		var items []entity.LeadListItem
		for i := start; i < end; i++ {
			items = append(items, entity.LeadListItem{ID: "lead-" + strconv.Itoa(i)})
		}
		json.NewEncoder(w).Encode(usecase.ListLeadsOutput{
			Leads:   items,
			HasMore: end < total,
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestInfiniteLeadsAccumulatesPages(t *testing.T) {
	srv := pagedServer(t, 5, 2)
	c := New(srv.URL, "token")
	ctx := context.Background()

	list := c.InfiniteLeads("", "all")
	assert.True(t, list.HasMore(), "a fresh list is always fetchable")
	assert.Empty(t, list.Items())

	require.NoError(t, list.FetchNext(ctx))
	assert.Len(t, list.Items(), 2)
	assert.True(t, list.HasMore())

	require.NoError(t, list.FetchNext(ctx))
	require.NoError(t, list.FetchNext(ctx))
	assert.Len(t, list.Items(), 5)
	assert.False(t, list.HasMore())

	// Order is arrival order.
	assert.Equal(t, "lead-0", list.Items()[0].ID)
	assert.Equal(t, "lead-4", list.Items()[4].ID)
}

func TestInfiniteLeadsStopsAtEnd(t *testing.T) {
	srv := pagedServer(t, 2, 2)
	c := New(srv.URL, "token")
	ctx := context.Background()

	list := c.InfiniteLeads("", "all")
	require.NoError(t, list.FetchNext(ctx))
	assert.False(t, list.HasMore())

	// Further fetches are no-ops, not errors.
	require.NoError(t, list.FetchNext(ctx))
	require.NoError(t, list.FetchNext(ctx))
	assert.Len(t, list.Items(), 2)
}

func TestInfiniteLeadsSetQueryResets(t *testing.T) {
	srv := pagedServer(t, 4, 2)
	c := New(srv.URL, "token")
	ctx := context.Background()

	list := c.InfiniteLeads("", "all")
	require.NoError(t, list.FetchNext(ctx))
	require.Len(t, list.Items(), 2)

	// Same query keeps the accumulation.
	list.SetQuery("", "all")
	assert.Len(t, list.Items(), 2)

	// A changed query discards it and starts over.
	list.SetQuery("acme", "all")
	assert.Empty(t, list.Items())
	assert.True(t, list.HasMore())

	require.NoError(t, list.FetchNext(ctx))
	assert.Len(t, list.Items(), 2)
}

func TestInfiniteLeadsErrorKeepsPosition(t *testing.T) {
	var failNext atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if failNext.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": "Internal server error"})
			return
		}
		json.NewEncoder(w).Encode(usecase.ListLeadsOutput{
			Leads:   []entity.LeadListItem{{ID: "lead-0"}},
			HasMore: true,
		})
	}))
	t.Cleanup(srv.Close)

	c := New(srv.URL, "token")
	ctx := context.Background()

	list := c.InfiniteLeads("", "all")
	require.NoError(t, list.FetchNext(ctx))

	failNext.Store(true)
	err := list.FetchNext(ctx)
	require.Error(t, err)
	assert.Len(t, list.Items(), 1, "a failed page leaves the accumulation untouched")
	assert.True(t, list.HasMore(), "the failed page can be retried")
}
