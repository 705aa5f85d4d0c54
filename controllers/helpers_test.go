package controllers_test

import (
	"context"
	"encoding/json"
	"sync"

	"wedding_server/services"
)

// memStore is a minimal in-memory services.KVStore for handler tests
type memStore struct {
	mu    sync.Mutex
	items map[string][]byte
	sets  map[string]map[string]map[string]struct{}
}

func newMemStore() *memStore {
	return &memStore{
		items: map[string][]byte{},
		sets:  map[string]map[string]map[string]struct{}{},
	}
}

func (m *memStore) GetItem(ctx context.Context, key string, out interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.items[key]
	if !ok {
		return services.ErrItemNotFound
	}
	return json.Unmarshal(data, out)
}

func (m *memStore) PutItem(ctx context.Context, key string, item interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, err := json.Marshal(item)
	if err != nil {
		return err
	}
	m.items[key] = data
	return nil
}

func (m *memStore) PutItemIfAbsent(ctx context.Context, key string, item interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[key]; ok {
		return services.ErrConditionFailed
	}
	data, err := json.Marshal(item)
	if err != nil {
		return err
	}
	m.items[key] = data
	return nil
}

func (m *memStore) AddToSet(ctx context.Context, key, field string, members ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	fields, ok := m.sets[key]
	if !ok {
		fields = map[string]map[string]struct{}{}
		m.sets[key] = fields
	}
	set, ok := fields[field]
	if !ok {
		set = map[string]struct{}{}
		fields[field] = set
	}
	for _, member := range members {
		set[member] = struct{}{}
	}
	return nil
}

func (m *memStore) GetSet(ctx context.Context, key, field string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	members := []string{}
	for member := range m.sets[key][field] {
		members = append(members, member)
	}
	return members, nil
}

func (m *memStore) GetSetMap(ctx context.Context, key string) (map[string][]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := map[string][]string{}
	for field, set := range m.sets[key] {
		members := []string{}
		for member := range set {
			members = append(members, member)
		}
		result[field] = members
	}
	return result, nil
}
