package biz

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/mock"
)

var testLogger = log.NewFilter(log.DefaultLogger, log.FilterLevel(log.LevelError))

type fakeKV struct {
	mu     sync.Mutex
	values map[string]string
	sets   int

	getErr error
	setErr error
}

func newFakeKV() *fakeKV {
	return &fakeKV{values: make(map[string]string)}
}

func (f *fakeKV) Get(_ context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return "", false, f.getErr
	}
	v, ok := f.values[key]
	return v, ok, nil
}

func (f *fakeKV) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return f.setErr
	}
	f.sets++
	f.values[key] = value
	return nil
}

func (f *fakeKV) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.values, key)
	return nil
}

var errBackend = errors.New("backend unavailable")

type mockCatalog struct {
	mock.Mock
}

func (m *mockCatalog) SearchMovies(ctx context.Context, query string, page int) ([]Movie, error) {
	args := m.Called(ctx, query, page)
	movies, _ := args.Get(0).([]Movie)
	return movies, args.Error(1)
}

func (m *mockCatalog) GetMovieDetails(ctx context.Context, id string) (*Movie, error) {
	args := m.Called(ctx, id)
	movie, _ := args.Get(0).(*Movie)
	return movie, args.Error(1)
}

func moviePage(prefix string, n int) []Movie {
	movies := make([]Movie, 0, n)
	for i := 0; i < n; i++ {
		movies = append(movies, Movie{ID: fmt.Sprintf("%s%03d", prefix, i), Title: fmt.Sprintf("%s %d", prefix, i)})
	}
	return movies
}
