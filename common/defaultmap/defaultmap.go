package defaultmap

import (
	"sync"
)

// Thread safe map with lazy construction of missing values. The
// constructor runs under the map's own lock, so for any key exactly
// one value is ever created regardless of how many callers race.
type DefaultSafemap[K comparable, V any] interface {
	Get(key K) V
	Lookup(key K) (V, bool)
	Set(key K, val V)
	Delete(key K)
	Clear()
	Count() int
	Keys() []K
	Foreach(it func(K, V) bool)
}

type defaultmapImpl[K comparable, V any] struct {
	data        map[K]V
	mutex       sync.RWMutex
	defaultFunc func(K) V
}

// New builds a map whose missing entries are created by defaultFunc.
// The constructor receives the key so values can own their identity.
func New[K comparable, V any](defaultFunc func(K) V) DefaultSafemap[K, V] {
	return &defaultmapImpl[K, V]{
		data:        make(map[K]V),
		defaultFunc: defaultFunc,
	}
}

func (h *defaultmapImpl[K, V]) Get(key K) V {
	h.mutex.Lock()
	v, ex := h.data[key]
	if !ex {
		v = h.defaultFunc(key)
		h.data[key] = v
	}
	h.mutex.Unlock()
	return v
}

func (h *defaultmapImpl[K, V]) Lookup(key K) (V, bool) {
	h.mutex.RLock()
	v, ex := h.data[key]
	h.mutex.RUnlock()
	return v, ex
}

func (h *defaultmapImpl[K, V]) Set(key K, val V) {
	h.mutex.Lock()
	h.data[key] = val
	h.mutex.Unlock()
}

func (h *defaultmapImpl[K, V]) Delete(key K) {
	h.mutex.Lock()
	delete(h.data, key)
	h.mutex.Unlock()
}

func (h *defaultmapImpl[K, V]) Clear() {
	h.mutex.Lock()
	h.data = make(map[K]V)
	h.mutex.Unlock()
}

func (h *defaultmapImpl[K, V]) Count() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.data)
}

func (h *defaultmapImpl[K, V]) Keys() []K {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	keys := make([]K, 0, len(h.data))
	for k := range h.data {
		keys = append(keys, k)
	}
	return keys
}

func (h *defaultmapImpl[K, V]) Foreach(it func(K, V) bool) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	for k, v := range h.data {
		if !it(k, v) {
			break
		}
	}
}
