package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"biaresh/config"
	"biaresh/internal/domain/entity"
	"biaresh/internal/domain/repository"
	"biaresh/internal/infra/persistence/blob"
	"biaresh/internal/infra/validation"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

var testEpoch = time.Date(2025, 3, 21, 9, 30, 0, 0, time.UTC)

// fakeClock advances one second and one id per NextID call
type fakeClock struct {
	mu   sync.Mutex
	now  time.Time
	next int64
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: testEpoch, next: testEpoch.UnixMilli()}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) NextID() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.next++
	c.now = c.now.Add(time.Second)

	return c.next
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishStoreEvent(ctx context.Context, event *entity.StoreEvent) error {
	args := m.Called(ctx, event)

	return args.Error(0)
}

func (m *mockPublisher) Close() error {
	return nil
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) NotifyOwner(ctx context.Context, subject, body string) error {
	args := m.Called(ctx, subject, body)

	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.ApplyDefaults()

	return cfg
}

func newMemoryRepo(t *testing.T) repository.SlotRepository {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return blob.NewSlotRepository(bucket, "")
}

// requireSlotAbsent asserts that key was never written or has been removed
func requireSlotAbsent(t *testing.T, repo repository.SlotRepository, key string) {
	t.Helper()

	_, err := repo.Get(context.Background(), key)
	require.ErrorIs(t, err, repository.ErrSlotNotFound)
}

func testProducts() []entity.Product {
	return []entity.Product{
		{ID: 1, Name: "صابون گل سرخ", NameEn: "Rose Soap", Price: 120000, Category: entity.CategorySoaps, Image: "/img/rose.jpg", Images: []string{"/img/rose.jpg"}, Benefits: []string{}},
		{ID: 2, Name: "صابون زعفران", NameEn: "Saffron Soap", Price: 150000, Category: entity.CategorySoaps, Image: "/img/saffron.jpg", Images: []string{"/img/saffron.jpg"}, Benefits: []string{}},
		{ID: 3, Name: "روغن بادام", NameEn: "Almond Oil", Price: 280000, Category: entity.CategoryOils, Image: "/img/almond.jpg", Images: []string{"/img/almond.jpg"}, Benefits: []string{}},
		{ID: 4, Name: "ست هدیه نوروز", NameEn: "Nowruz Gift Set", Price: 650000, Category: entity.CategoryGiftSets, Image: "/img/nowruz.jpg", Images: []string{"/img/nowruz.jpg"}, Benefits: []string{}},
	}
}

func newTestValidator() *validation.Validator {
	return validation.New()
}
