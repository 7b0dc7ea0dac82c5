package listing

import (
	"context"
	"fmt"
	"sync"

	"github.com/onlyfix/admin/internal/shared/errors"
	"github.com/onlyfix/admin/internal/shared/logger"
	"github.com/onlyfix/admin/internal/shared/pagination"
)

// Fetcher loads one page of T matching filter F.
type Fetcher[T, F any] func(ctx context.Context, page int, filter F) (*pagination.Response[T], error)

// Deleter removes one item server-side.
type Deleter[T any] func(ctx context.Context, item T) error

type ControllerConfig[T, F any] struct {
	// Entity names the item in confirmations, e.g. "ticket".
	Entity string
	Fetch  Fetcher[T, F]
	Delete Deleter[T]
	// Describe renders one item for confirmations, e.g. "ticket #3".
	Describe func(T) string
	// Key identifies an item across reloads. Without it, results of item
	// actions land on the index they started from.
	Key func(T) int
}

// Controller drives one paginated admin screen: loading, filtering, paging
// and deleting, with errors routed to the host.
type Controller[T, F any] struct {
	cfg     ControllerConfig[T, F]
	store   *Store[T]
	session SessionClearer
	host    Host
	logger  logger.Interface

	mu     sync.Mutex
	filter F
}

func NewController[T, F any](cfg ControllerConfig[T, F], session SessionClearer, host Host, log logger.Interface) *Controller[T, F] {
	if cfg.Describe == nil {
		cfg.Describe = func(T) string { return "this " + cfg.Entity }
	}
	return &Controller[T, F]{
		cfg:     cfg,
		store:   NewStore[T](),
		session: session,
		host:    host,
		logger:  log,
	}
}

func (c *Controller[T, F]) Store() *Store[T] {
	return c.store
}

func (c *Controller[T, F]) State() State[T] {
	return c.store.State()
}

func (c *Controller[T, F]) Filter() F {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

// Load fetches the current page with the current filter.
func (c *Controller[T, F]) Load(ctx context.Context) error {
	return c.load(ctx, c.store.State().CurrentPage)
}

// ApplyFilter replaces the filter and reloads from the first page.
func (c *Controller[T, F]) ApplyFilter(ctx context.Context, filter F) error {
	c.SetFilter(filter)
	return c.LoadPage(ctx, 1)
}

// SetFilter replaces the filter without loading.
func (c *Controller[T, F]) SetFilter(filter F) {
	c.mu.Lock()
	c.filter = filter
	c.mu.Unlock()
}

// LoadPage jumps to page and loads it.
func (c *Controller[T, F]) LoadPage(ctx context.Context, page int) error {
	page = max(page, 1)
	c.store.Dispatch(PageChanged{Page: page})
	return c.load(ctx, page)
}

// NextPage loads the following page. On the last page it does nothing.
func (c *Controller[T, F]) NextPage(ctx context.Context) error {
	st := c.store.State()
	if !st.HasNext() {
		return nil
	}
	c.store.Dispatch(PageChanged{Page: st.CurrentPage + 1})
	return c.load(ctx, st.CurrentPage+1)
}

// PreviousPage loads the preceding page. On the first page it does nothing.
func (c *Controller[T, F]) PreviousPage(ctx context.Context) error {
	st := c.store.State()
	if !st.HasPrevious() {
		return nil
	}
	c.store.Dispatch(PageChanged{Page: st.CurrentPage - 1})
	return c.load(ctx, st.CurrentPage-1)
}

func (c *Controller[T, F]) load(ctx context.Context, page int) error {
	c.store.Dispatch(LoadStarted{})

	result, err := c.cfg.Fetch(ctx, page, c.Filter())
	if err != nil {
		if !c.HandleUnauthorized(err) {
			c.logger.Warnw("failed to load page", "entity", c.cfg.Entity, "page", page, "error", err)
		}
		c.store.Dispatch(LoadFailed{Message: errors.Message(err)})
		return err
	}

	c.store.Dispatch(PageLoaded[T]{Page: *result})
	return nil
}

// Delete asks the host to confirm, deletes the item at index and removes it
// from the page on success. It reports whether the item was deleted.
func (c *Controller[T, F]) Delete(ctx context.Context, index int) (bool, error) {
	item, err := c.ItemAt(index)
	if err != nil {
		return false, err
	}

	if !c.host.Confirm("Confirm Delete", fmt.Sprintf("Are you sure you want to delete %s?", c.cfg.Describe(item))) {
		return false, nil
	}

	c.store.Dispatch(LoadStarted{})
	if err := c.cfg.Delete(ctx, item); err != nil {
		c.Fail(err)
		return false, err
	}

	// the page may have changed while the request was in flight
	c.store.Dispatch(ItemRemoved[T]{Index: index, Match: c.sameAs(item)})
	c.logger.Infow("item deleted", "entity", c.cfg.Entity, "index", index)
	return true, nil
}

// Replace swaps in an updated copy of an item. With a Key configured the row
// is found again by key, and nothing happens if it is no longer on the page.
func (c *Controller[T, F]) Replace(index int, item T) {
	c.store.Dispatch(ItemReplaced[T]{Index: index, Match: c.sameAs(item), Item: item})
}

func (c *Controller[T, F]) sameAs(item T) func(T) bool {
	if c.cfg.Key == nil {
		return nil
	}
	key := c.cfg.Key(item)
	return func(other T) bool { return c.cfg.Key(other) == key }
}

// ItemAt returns the item at index on the current page.
func (c *Controller[T, F]) ItemAt(index int) (T, error) {
	st := c.store.State()
	if index < 0 || index >= len(st.Items) {
		var zero T
		return zero, fmt.Errorf("%s index %d out of range [0,%d)", c.cfg.Entity, index, len(st.Items))
	}
	return st.Items[index], nil
}

// Busy marks an item action in flight; pair with Fail or Replace.
func (c *Controller[T, F]) Busy() {
	c.store.Dispatch(LoadStarted{})
}

// Fail routes an action error to the host: a 401 ends the session, anything
// else becomes a blocking alert.
func (c *Controller[T, F]) Fail(err error) {
	c.store.Dispatch(ActionFinished{})
	if c.HandleUnauthorized(err) {
		return
	}
	c.logger.Warnw("action failed", "entity", c.cfg.Entity, "error", err)
	c.host.Alert("Error", errors.Message(err))
}

// HandleUnauthorized clears the session and sends the host to the login
// screen when err is a 401. It reports whether it did so.
func (c *Controller[T, F]) HandleUnauthorized(err error) bool {
	return HandleUnauthorized(err, c.session, c.host, c.logger)
}

// HandleUnauthorized ends the session on a 401: credentials are cleared and
// the host navigates to RouteLogin. Other errors are left to the caller.
func HandleUnauthorized(err error, session SessionClearer, nav Navigator, log logger.Interface) bool {
	if !errors.IsUnauthorized(err) {
		return false
	}
	if clearErr := session.Clear(); clearErr != nil {
		log.Errorw("failed to clear credentials", "error", clearErr)
	}
	log.Infow("session expired, returning to login")
	nav.GoTo(RouteLogin)
	return true
}
