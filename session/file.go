package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// FileKV is a KeyValue backing persisted as a JSON file, so a session
// survives process restarts. The whole map is rewritten on every change;
// it only ever holds the three session keys.
type FileKV struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

var _ KeyValue = (*FileKV)(nil)

func NewFileKV(path string) (*FileKV, error) {
	kv := &FileKV{path: path, values: make(map[string]string)}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return kv, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "[NewFileKV] read")
	}
	if err := json.Unmarshal(raw, &kv.values); err != nil {
		return nil, errors.Wrap(err, "[NewFileKV] decode")
	}
	return kv, nil
}

func (f *FileKV) Get(key string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values[key]
}

func (f *FileKV) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
	return f.flush()
}

func (f *FileKV) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.values[key]; !ok {
		return nil
	}
	delete(f.values, key)
	return f.flush()
}

func (f *FileKV) flush() error {
	raw, err := json.MarshalIndent(f.values, "", "  ")
	if err != nil {
		return errors.Wrap(err, "[FileKV.flush] encode")
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return errors.Wrap(err, "[FileKV.flush] mkdir")
	}
	if err := os.WriteFile(f.path, raw, 0o600); err != nil {
		return errors.Wrap(err, "[FileKV.flush] write")
	}
	return nil
}
