package store

import "bytes"

// MemKV is an in-process KV. Values are copied on the way in and out.
type MemKV struct {
	m map[string][]byte

	// SetErr, when non-nil, is returned by Set without storing anything.
	SetErr error
	// GetErr, when non-nil, is returned by Get.
	GetErr error
}

func NewMemKV() *MemKV {
	return &MemKV{m: map[string][]byte{}}
}

func (s *MemKV) Get(key string) ([]byte, bool, error) {
	if s.GetErr != nil {
		return nil, false, s.GetErr
	}
	v, ok := s.m[key]
	if !ok {
		return nil, false, nil
	}
	return bytes.Clone(v), true, nil
}

func (s *MemKV) Set(key string, value []byte) error {
	if s.SetErr != nil {
		return s.SetErr
	}
	if s.m == nil {
		s.m = map[string][]byte{}
	}
	s.m[key] = bytes.Clone(value)
	return nil
}
