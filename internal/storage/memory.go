package storage

import "context"

// Memory is a map-backed Store. It backs unit tests of the state layer
// and doubles as a fault-injection point: the error fields, when set,
// are returned by the corresponding operation.
type Memory struct {
	data map[string][]byte

	SaveErr   error
	LoadErr   error
	DeleteErr error
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Save(_ context.Context, key string, value []byte) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *Memory) Load(_ context.Context, key string) ([]byte, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	value, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), value...), nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	delete(m.data, key)
	return nil
}

func (m *Memory) Close() error { return nil }

// Has reports whether key currently holds a value. Test helper.
func (m *Memory) Has(key string) bool {
	_, ok := m.data[key]
	return ok
}
