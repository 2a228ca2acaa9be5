package store

// Memory is an in-memory DB used in tests and when the database file cannot
// be opened.
type Memory struct {
	m map[string]string
}

func NewMemory() *Memory {
	return &Memory{m: make(map[string]string)}
}

func (s *Memory) Get(key string) (string, bool, error) {
	value, found := s.m[key]

	return value, found, nil
}

func (s *Memory) Set(key, value string) error {
	s.m[key] = value

	return nil
}

func (s *Memory) Remove(key string) error {
	delete(s.m, key)

	return nil
}

func (s *Memory) Close() error {
	return nil
}
