package notice

import (
	"net/url"
	"sync"
)

// Listener receives the query of every navigation.
type Listener func(q url.Values)

// Navigator holds the current URL and pushes changes to its subscribers.
// Navigations are delivered one at a time and in order, so the last
// notification a listener sees always matches the current URL. Listeners
// must not call Navigate or Subscribe.
type Navigator struct {
	// navMu serializes a whole navigation: state change plus delivery.
	navMu sync.Mutex

	mu        sync.RWMutex
	current   *url.URL
	nextID    int
	listeners map[int]Listener
}

// NewNavigator starts at rawURL.
func NewNavigator(rawURL string) (*Navigator, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	return &Navigator{
		current:   u,
		listeners: make(map[int]Listener),
	}, nil
}

// Query returns a copy of the current query.
func (n *Navigator) Query() url.Values {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.current.Query()
}

// Subscribe registers fn and calls it once with the current query.
// The returned func removes the subscription.
func (n *Navigator) Subscribe(fn Listener) (unsubscribe func()) {
	n.navMu.Lock()
	defer n.navMu.Unlock()

	n.mu.Lock()
	id := n.nextID
	n.nextID++
	n.listeners[id] = fn
	q := n.current.Query()
	n.mu.Unlock()

	fn(q)

	return func() {
		n.mu.Lock()
		delete(n.listeners, id)
		n.mu.Unlock()
	}
}

// Navigate moves to rawURL and notifies every subscriber before returning.
// Listeners of one navigation run in no particular order.
func (n *Navigator) Navigate(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return err
	}

	n.navMu.Lock()
	defer n.navMu.Unlock()

	n.mu.Lock()
	n.current = u
	listeners := make([]Listener, 0, len(n.listeners))
	for _, l := range n.listeners {
		listeners = append(listeners, l)
	}
	n.mu.Unlock()

	q := u.Query()
	for _, l := range listeners {
		l(q)
	}
	return nil
}

// Banner keeps the notice fragment in sync with a Navigator.
type Banner struct {
	mu          sync.RWMutex
	fragment    Fragment
	unsubscribe func()
}

// NewBanner subscribes to nav and renders the current URL right away.
func NewBanner(nav *Navigator) *Banner {
	b := &Banner{}
	b.unsubscribe = nav.Subscribe(b.update)
	return b
}

func (b *Banner) update(q url.Values) {
	f := RenderQuery(q)
	b.mu.Lock()
	b.fragment = f
	b.mu.Unlock()
}

// Fragment returns the latest rendering.
func (b *Banner) Fragment() Fragment {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.fragment
}

// Close stops following the navigator. The last fragment is kept.
func (b *Banner) Close() {
	if b.unsubscribe != nil {
		b.unsubscribe()
	}
}
