package clientcache

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// entryStore holds the cached entries. The default is an unbounded map; a
// capacity-bounded LRU can be selected with WithMaxEntries for deployments
// that see a large number of distinct API keys.
//
// Implementations are not required to be safe for concurrent use on their
// own; the Cache serializes access through its lock.
type entryStore interface {
	get(key string) (*expiringClient, bool)
	add(key string, entry *expiringClient)
	len() int
}

type mapStore map[string]*expiringClient

func (s mapStore) get(key string) (*expiringClient, bool) {
	entry, ok := s[key]
	return entry, ok
}

func (s mapStore) add(key string, entry *expiringClient) {
	s[key] = entry
}

func (s mapStore) len() int {
	return len(s)
}

// lruStore bounds the cache with least-recently-used eviction. Evicted
// clients need no cleanup; their transports are released once the last caller
// drops its handle.
type lruStore struct {
	lru *lru.Cache[string, *expiringClient]
}

func newLRUStore(size int) *lruStore {
	// lru.New only fails for a non-positive size, which WithMaxEntries rejects.
	cache, err := lru.New[string, *expiringClient](size)
	if err != nil {
		panic(err)
	}
	return &lruStore{lru: cache}
}

func (s *lruStore) get(key string) (*expiringClient, bool) {
	return s.lru.Get(key)
}

func (s *lruStore) add(key string, entry *expiringClient) {
	s.lru.Add(key, entry)
}

func (s *lruStore) len() int {
	return s.lru.Len()
}
