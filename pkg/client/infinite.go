package client

import (
	"context"

	"leaddesk/internal/entity"
)

// InfiniteLeadList accumulates lead pages in fetch order, the way an
// infinite-scroll view consumes them. Changing the search or filter
// discards everything and restarts from page zero: the underlying ordered
// result set is a different one.
type InfiniteLeadList struct {
	client *Client
	search string
	filter string

	items    []entity.LeadListItem
	nextPage int
	hasMore  bool
	started  bool
}

func (c *Client) InfiniteLeads(search, filter string) *InfiniteLeadList {
	return &InfiniteLeadList{
		client: c,
		search: search,
		filter: filter,
	}
}

// FetchNext loads the next page and appends it to the accumulation. It is
// a no-op once the last fetched page reported no more results.
func (l *InfiniteLeadList) FetchNext(ctx context.Context) error {
	if l.started && !l.hasMore {
		return nil
	}

	out, err := l.client.ListLeads(ctx, l.nextPage, l.search, l.filter)
	if err != nil {
		return err
	}

	l.items = append(l.items, out.Leads...)
	l.nextPage++
	l.hasMore = out.HasMore
	l.started = true
	return nil
}

// SetQuery changes the search/filter. A changed query resets the
// accumulation; an identical one keeps it.
func (l *InfiniteLeadList) SetQuery(search, filter string) {
	if search == l.search && filter == l.filter {
		return
	}
	l.search = search
	l.filter = filter
	l.items = nil
	l.nextPage = 0
	l.hasMore = false
	l.started = false
}

// Items returns the pages fetched so far, concatenated in arrival order.
func (l *InfiniteLeadList) Items() []entity.LeadListItem {
	return l.items
}

func (l *InfiniteLeadList) HasMore() bool {
	return !l.started || l.hasMore
}
