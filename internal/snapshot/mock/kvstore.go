package mock

import (
	"sort"
	"strings"
	"sync"
)

// KVStore mocks snapshot.KVStore.
type KVStore struct {
	data    map[string][]byte
	reads   int
	updates int
	deletes int
	err     error
	m       sync.Mutex
}

// NewKVStore creates new KVStore instance with given data.
func NewKVStore(data map[string][]byte) *KVStore {
	return &KVStore{
		data: data,
	}
}

// Fail makes every following call return err. Nil err restores normal operation.
func (s *KVStore) Fail(err error) {
	s.m.Lock()
	defer s.m.Unlock()

	s.err = err
}

// ReadKey returns data saved for given key.
func (s *KVStore) ReadKey(key []byte) ([]byte, error) {
	s.m.Lock()
	defer s.m.Unlock()

	s.reads++
	if s.err != nil {
		return nil, s.err
	}
	if s.data == nil {
		return nil, nil
	}

	return s.data[string(key)], nil
}

// UpdateKey stores given data under given key.
func (s *KVStore) UpdateKey(key []byte, data []byte) error {
	s.m.Lock()
	defer s.m.Unlock()

	s.updates++
	if s.err != nil {
		return s.err
	}
	if s.data == nil {
		s.data = make(map[string][]byte)
	}
	s.data[string(key)] = data

	return nil
}

// DeleteKey removes given key.
func (s *KVStore) DeleteKey(key []byte) error {
	s.m.Lock()
	defer s.m.Unlock()

	s.deletes++
	if s.err != nil {
		return s.err
	}
	delete(s.data, string(key))

	return nil
}

// KeysWithPrefix returns stored keys with given prefix, sorted.
func (s *KVStore) KeysWithPrefix(prefix []byte) ([][]byte, error) {
	s.m.Lock()
	defer s.m.Unlock()

	if s.err != nil {
		return nil, s.err
	}

	var keys []string
	for k := range s.data {
		if strings.HasPrefix(k, string(prefix)) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	result := make([][]byte, 0, len(keys))
	for _, k := range keys {
		result = append(result, []byte(k))
	}

	return result, nil
}

// Keys returns all stored keys, sorted.
func (s *KVStore) Keys() []string {
	s.m.Lock()
	defer s.m.Unlock()

	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Reads returns read call count.
func (s *KVStore) Reads() int {
	s.m.Lock()
	defer s.m.Unlock()

	return s.reads
}

// Updates returns update call count.
func (s *KVStore) Updates() int {
	s.m.Lock()
	defer s.m.Unlock()

	return s.updates
}

// Deletes returns delete call count.
func (s *KVStore) Deletes() int {
	s.m.Lock()
	defer s.m.Unlock()

	return s.deletes
}
