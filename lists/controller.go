package lists

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/aksecuretech/portal-go/client"
)

// PageSize is the expected page length; a shorter page means the end of the
// collection.
const PageSize = 10

// Item is anything the controller can key by id.
type Item interface {
	ItemID() string
}

// ErrDeleteNotConfirmed is returned when the confirmation step declined the
// delete; no network call was made.
var ErrDeleteNotConfirmed = fmt.Errorf("delete not confirmed")

// Controller holds a fetched collection and keeps it consistent across
// incremental pagination, user-initiated deletes and refreshes. State is an
// id-keyed, order-preserving map so delete, append and refresh commute.
//
// At most one page fetch is outstanding at a time, and pages are requested
// in strictly increasing order.
type Controller[T Item] struct {
	api  *client.Client
	path string
	log  zerolog.Logger

	mu      sync.Mutex
	order   []string
	byID    map[string]T
	page    int
	hasMore bool
	loading bool
	errMsg  string
	gen     int
	closed  bool
}

func NewController[T Item](api *client.Client, path string, log zerolog.Logger) *Controller[T] {
	return &Controller[T]{
		api:  api,
		path: path,
		log:  log,
		byID: make(map[string]T),
	}
}

// Items returns the collection in fetch order.
func (c *Controller[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

func (c *Controller[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

func (c *Controller[T]) HasMore() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hasMore
}

// Err returns the current fetch error message, empty when the last fetch
// succeeded. A fetch error never clears already-loaded items.
func (c *Controller[T]) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}

// Close discards results of any in-flight fetch. The request itself is not
// cancelled here; cancel the context for that.
func (c *Controller[T]) Close() {
	c.mu.Lock()
	c.closed = true
	c.gen++
	c.mu.Unlock()
}

// FetchInitial loads page 1, replacing whatever is held.
func (c *Controller[T]) FetchInitial(ctx context.Context) error {
	c.mu.Lock()
	if c.loading || c.closed {
		c.mu.Unlock()
		return nil
	}
	c.loading = true
	c.gen++
	gen := c.gen
	c.mu.Unlock()

	items, hasMore, err := c.fetchPage(ctx, 1)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || gen != c.gen {
		return nil
	}
	c.loading = false
	if err != nil {
		c.errMsg = errText(err)
		return err
	}
	c.order = c.order[:0]
	c.byID = make(map[string]T, len(items))
	c.appendLocked(items)
	c.page = 1
	c.hasMore = hasMore
	c.errMsg = ""
	return nil
}

// LoadMore fetches the next page. It is a no-op while a fetch is already
// loading or when the collection is exhausted, which is what serializes
// pagination under scroll-sentinel triggers.
func (c *Controller[T]) LoadMore(ctx context.Context) error {
	c.mu.Lock()
	if c.loading || !c.hasMore || c.closed {
		c.mu.Unlock()
		return nil
	}
	c.loading = true
	next := c.page + 1
	gen := c.gen
	c.mu.Unlock()

	items, hasMore, err := c.fetchPage(ctx, next)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || gen != c.gen {
		return nil
	}
	c.loading = false
	if err != nil {
		c.errMsg = errText(err)
		return err
	}
	c.appendLocked(items)
	c.page = next
	c.hasMore = hasMore
	c.errMsg = ""
	return nil
}

// Refresh discards all held state and re-runs the initial fetch from page 1.
func (c *Controller[T]) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.order = c.order[:0]
	c.byID = make(map[string]T)
	c.page = 0
	c.hasMore = false
	c.errMsg = ""
	c.loading = false
	c.gen++
	c.mu.Unlock()
	return c.FetchInitial(ctx)
}

// Delete removes a single item. confirm must return true before any network
// call is issued. On success the item is spliced out locally without a
// re-fetch; on failure the collection is left untouched.
func (c *Controller[T]) Delete(ctx context.Context, id string, confirm func() bool) error {
	if confirm == nil || !confirm() {
		return ErrDeleteNotConfirmed
	}
	if err := c.api.Delete(ctx, c.path+"/"+id, nil); err != nil {
		c.log.Warn().Str("id", id).Err(err).Msg("delete failed")
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.byID[id]; !ok {
		return nil
	}
	delete(c.byID, id)
	for i, held := range c.order {
		if held == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

func (c *Controller[T]) appendLocked(items []T) {
	for _, item := range items {
		id := item.ItemID()
		if _, ok := c.byID[id]; !ok {
			c.order = append(c.order, id)
		}
		c.byID[id] = item
	}
}

func (c *Controller[T]) fetchPage(ctx context.Context, page int) ([]T, bool, error) {
	var raw json.RawMessage
	path := fmt.Sprintf("%s?page=%d&limit=%d", c.path, page, PageSize)
	if err := c.api.Get(ctx, path, &raw); err != nil {
		return nil, false, err
	}
	items, hasMore, ok := decodePage[T](raw)
	if !ok {
		c.log.Warn().Str("path", c.path).Msg("unexpected list response shape, treating as empty")
		return nil, false, nil
	}
	return items, hasMore, nil
}

func errText(err error) string {
	var apiErr *client.APIError
	if ok := asAPIError(err, &apiErr); ok {
		return apiErr.Message
	}
	return err.Error()
}
