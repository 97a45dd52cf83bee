package catalog

import (
	"container/list"
	"context"
	"sync"

	"golang.org/x/text/language"
)

type cacheKey struct {
	name   string
	locale string
}

type cacheEntry struct {
	key     cacheKey
	catalog *Catalog
}

// CachedLoader keeps recently loaded catalogs in an LRU cache in front of another loader.
// Only successful loads are cached; a missing catalog is looked up again on the next call.
// Catalogs are immutable, so cached values are shared between callers.
type CachedLoader struct {
	next     Loader
	capacity int

	mu       sync.Mutex
	items    map[cacheKey]*list.Element
	eviction *list.List
}

// NewCachedLoader wraps next with a cache holding up to capacity catalogs.
// The capacity must be positive, otherwise it panics.
func NewCachedLoader(next Loader, capacity int) *CachedLoader {
	if next == nil {
		panic("catalog: cached loader requires a loader")
	}
	if capacity <= 0 {
		panic("catalog: cache capacity must be positive")
	}
	return &CachedLoader{
		next:     next,
		capacity: capacity,
		items:    make(map[cacheKey]*list.Element),
		eviction: list.New(),
	}
}

// Load implements the Loader interface
func (l *CachedLoader) Load(ctx context.Context, name string, locale language.Tag) (*Catalog, error) {
	key := cacheKey{name: name, locale: locale.String()}

	l.mu.Lock()
	if elem, ok := l.items[key]; ok {
		l.eviction.MoveToFront(elem)
		cat := elem.Value.(*cacheEntry).catalog
		l.mu.Unlock()
		return cat, nil
	}
	l.mu.Unlock()

	cat, err := l.next.Load(ctx, name, locale)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if elem, ok := l.items[key]; ok {
		elem.Value.(*cacheEntry).catalog = cat
		l.eviction.MoveToFront(elem)
		return cat, nil
	}
	l.items[key] = l.eviction.PushFront(&cacheEntry{key: key, catalog: cat})
	if l.eviction.Len() > l.capacity {
		oldest := l.eviction.Back()
		l.eviction.Remove(oldest)
		delete(l.items, oldest.Value.(*cacheEntry).key)
	}
	return cat, nil
}

// Invalidate drops the cached catalog for name and locale, if any.
func (l *CachedLoader) Invalidate(name string, locale language.Tag) {
	l.mu.Lock()
	defer l.mu.Unlock()
	key := cacheKey{name: name, locale: locale.String()}
	if elem, ok := l.items[key]; ok {
		l.eviction.Remove(elem)
		delete(l.items, key)
	}
}

// Purge drops every cached catalog.
func (l *CachedLoader) Purge() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = make(map[cacheKey]*list.Element)
	l.eviction.Init()
}

// Len returns the number of cached catalogs.
func (l *CachedLoader) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.eviction.Len()
}
