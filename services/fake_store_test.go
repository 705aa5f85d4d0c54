package services

import (
	"context"
	"encoding/json"
	"sync"
)

// fakeStore is an in-memory KVStore for tests. Values round-trip
// through JSON so callers get copies, like the real store.
type fakeStore struct {
	mu     sync.Mutex
	items  map[string][]byte
	sets   map[string]map[string]map[string]struct{}
	writes int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		items: map[string][]byte{},
		sets:  map[string]map[string]map[string]struct{}{},
	}
}

func (f *fakeStore) GetItem(ctx context.Context, key string, out interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.items[key]
	if !ok {
		return ErrItemNotFound
	}
	return json.Unmarshal(data, out)
}

func (f *fakeStore) PutItem(ctx context.Context, key string, item interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, err := json.Marshal(item)
	if err != nil {
		return err
	}
	f.writes++
	f.items[key] = data
	return nil
}

func (f *fakeStore) PutItemIfAbsent(ctx context.Context, key string, item interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[key]; ok {
		return ErrConditionFailed
	}
	data, err := json.Marshal(item)
	if err != nil {
		return err
	}
	f.writes++
	f.items[key] = data
	return nil
}

func (f *fakeStore) AddToSet(ctx context.Context, key, field string, members ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(members) == 0 {
		return nil
	}
	f.writes++
	fields, ok := f.sets[key]
	if !ok {
		fields = map[string]map[string]struct{}{}
		f.sets[key] = fields
	}
	set, ok := fields[field]
	if !ok {
		set = map[string]struct{}{}
		fields[field] = set
	}
	for _, m := range members {
		set[m] = struct{}{}
	}
	return nil
}

func (f *fakeStore) GetSet(ctx context.Context, key, field string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	members := []string{}
	for m := range f.sets[key][field] {
		members = append(members, m)
	}
	return members, nil
}

func (f *fakeStore) GetSetMap(ctx context.Context, key string) (map[string][]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := map[string][]string{}
	for field, set := range f.sets[key] {
		members := []string{}
		for m := range set {
			members = append(members, m)
		}
		result[field] = members
	}
	return result, nil
}

func (f *fakeStore) writeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writes
}
