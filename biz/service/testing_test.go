package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"gorm.io/gorm"

	"github.com/bitsea/gamebay/biz/dal/db"
	"github.com/bitsea/gamebay/biz/dal/model"
)

// fakeStorage is an in-memory object store with failure injection.
type fakeStorage struct {
	mu           sync.Mutex
	objects      map[string][]byte
	contentTypes map[string]string
	puts         int
	failPutKeys  map[string]bool
	failAllPuts  bool
	failDeletes  map[string]bool
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		objects:      make(map[string][]byte),
		contentTypes: make(map[string]string),
		failPutKeys:  make(map[string]bool),
		failDeletes:  make(map[string]bool),
	}
}

func (f *fakeStorage) PutObject(ctx context.Context, key string, data io.Reader, contentType string, size int64) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts++
	if f.failAllPuts || f.failPutKeys[key] {
		return "", errors.New("injected put failure")
	}
	content, err := io.ReadAll(data)
	if err != nil {
		return "", err
	}
	f.objects[key] = content
	f.contentTypes[key] = contentType
	return f.URL(key), nil
}

func (f *fakeStorage) GetObject(ctx context.Context, key string) (io.ReadCloser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	content, ok := f.objects[key]
	if !ok {
		return nil, fmt.Errorf("object not found: %s", key)
	}
	return io.NopCloser(bytes.NewReader(content)), nil
}

func (f *fakeStorage) DeleteObject(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failDeletes[key] {
		return errors.New("injected delete failure")
	}
	delete(f.objects, key)
	delete(f.contentTypes, key)
	return nil
}

func (f *fakeStorage) ObjectExists(ctx context.Context, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.objects[key]
	return ok, nil
}

func (f *fakeStorage) ListPrefix(ctx context.Context, prefix string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var keys []string
	for key := range f.objects {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

func (f *fakeStorage) DeletePrefix(ctx context.Context, prefix string, includeSelf bool) error {
	keys, err := f.ListPrefix(ctx, prefix)
	if err != nil {
		return err
	}
	for _, key := range keys {
		if err := f.DeleteObject(ctx, key); err != nil {
			return err
		}
	}
	if includeSelf {
		return f.DeleteObject(ctx, prefix)
	}
	return nil
}

func (f *fakeStorage) URL(key string) string {
	return "https://cdn.test/bucket/" + key
}

func (f *fakeStorage) Type() string {
	return "fake"
}

func (f *fakeStorage) has(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.objects[key]
	return ok
}

func (f *fakeStorage) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.objects)
}

func newTestService(t *testing.T) (*Service, *fakeStorage, *gorm.DB) {
	t.Helper()
	gdb := db.SetupTestDB(t)
	t.Cleanup(func() { db.CleanupTestDB(t, gdb) })
	store := newFakeStorage()
	return NewService(gdb, store), store, gdb
}

func createUser(t *testing.T, gdb *gorm.DB, username string) *model.User {
	t.Helper()
	return db.CreateTestUser(t, gdb, username)
}

func createGame(t *testing.T, gdb *gorm.DB, ownerID uint, title string, published bool) *model.Game {
	t.Helper()
	return db.CreateTestGame(t, gdb, ownerID, title, published)
}
