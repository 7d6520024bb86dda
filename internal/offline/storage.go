package offline

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"
)

// KV is the flat byte-store contract the offline cache is built on.
// It matches the gofiber storage driver interface, so any of those
// drivers (redis in production) can back it.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, val []byte, exp time.Duration) error
	Delete(key string) error
}

// Bucket is a namespaced view of the store.
type Bucket interface {
	// Match returns the stored response for a request key, or nil when
	// absent. Absence is a normal outcome, not an error.
	Match(key string) (*CachedResponse, error)
	Put(key string, resp *CachedResponse) error
}

// Storage is the persistent store the two caching strategies and the
// install/activate lifecycle are defined against.
type Storage interface {
	Open(namespace string) Bucket
	DeleteNamespace(namespace string) error
	ListNamespaces() ([]string, error)
}

const (
	keyPrefix = "offline:"
	indexKey  = "offline:index"
)

// kvStorage layers namespaces over a flat KV by prefixing keys and
// keeping a JSON index of namespace -> request keys under a reserved
// key. The index makes namespace deletion possible without key scans,
// which the KV contract does not offer.
type kvStorage struct {
	mu sync.Mutex
	kv KV
}

// NewStorage wraps a flat KV store with namespace bookkeeping.
func NewStorage(kv KV) Storage {
	return &kvStorage{kv: kv}
}

func storeKey(namespace, key string) string {
	return keyPrefix + namespace + ":" + key
}

func (s *kvStorage) Open(namespace string) Bucket {
	return &kvBucket{storage: s, namespace: namespace}
}

func (s *kvStorage) DeleteNamespace(namespace string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	index, err := s.loadIndex()
	if err != nil {
		return err
	}
	for _, key := range index[namespace] {
		if err := s.kv.Delete(storeKey(namespace, key)); err != nil {
			return fmt.Errorf("delete %q from namespace %q: %w", key, namespace, err)
		}
	}
	delete(index, namespace)
	return s.saveIndex(index)
}

func (s *kvStorage) ListNamespaces() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index, err := s.loadIndex()
	if err != nil {
		return nil, err
	}
	namespaces := make([]string, 0, len(index))
	for ns := range index {
		namespaces = append(namespaces, ns)
	}
	sort.Strings(namespaces)
	return namespaces, nil
}

// record must be called with the mutex held.
func (s *kvStorage) record(namespace, key string) error {
	index, err := s.loadIndex()
	if err != nil {
		return err
	}
	for _, k := range index[namespace] {
		if k == key {
			return nil
		}
	}
	if index == nil {
		index = make(map[string][]string)
	}
	index[namespace] = append(index[namespace], key)
	return s.saveIndex(index)
}

func (s *kvStorage) loadIndex() (map[string][]string, error) {
	data, err := s.kv.Get(indexKey)
	if err != nil {
		return nil, fmt.Errorf("load namespace index: %w", err)
	}
	if len(data) == 0 {
		return map[string][]string{}, nil
	}
	var index map[string][]string
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("decode namespace index: %w", err)
	}
	return index, nil
}

func (s *kvStorage) saveIndex(index map[string][]string) error {
	data, err := json.Marshal(index)
	if err != nil {
		return fmt.Errorf("encode namespace index: %w", err)
	}
	return s.kv.Set(indexKey, data, 0)
}

type kvBucket struct {
	storage   *kvStorage
	namespace string
}

func (b *kvBucket) Match(key string) (*CachedResponse, error) {
	data, err := b.storage.kv.Get(storeKey(b.namespace, key))
	if err != nil {
		return nil, fmt.Errorf("match %q in namespace %q: %w", key, b.namespace, err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	var resp CachedResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("decode cached response for %q: %w", key, err)
	}
	return &resp, nil
}

func (b *kvBucket) Put(key string, resp *CachedResponse) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("encode response for %q: %w", key, err)
	}

	b.storage.mu.Lock()
	defer b.storage.mu.Unlock()

	// Stored entries never expire on their own; they are superseded by
	// newer fetches or deleted with their namespace.
	if err := b.storage.kv.Set(storeKey(b.namespace, key), data, 0); err != nil {
		return fmt.Errorf("store response for %q: %w", key, err)
	}
	return b.storage.record(b.namespace, key)
}
