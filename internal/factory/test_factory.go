package factory

import (
	"time"

	"github.com/soracane/roomdraw/internal/dependencies/mocks"
	"github.com/soracane/roomdraw/internal/storage/memory"
	"github.com/soracane/roomdraw/internal/testutil"
)

// TestApp bundles an App wired against in-memory storage and mocked
// clock/random for deterministic tests
type TestApp struct {
	*App

	MemoryStorage *memory.Storage
	MockClock     *mocks.MockClock
	MockRandom    *mocks.MockRandom
}

// NewTestApp creates a fully wired test application
func NewTestApp() *TestApp {
	store := memory.New()
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	rnd := mocks.NewMockRandom()

	return &TestApp{
		App:           newWithDependencies(store, clk, rnd, testutil.NopLogger()),
		MemoryStorage: store,
		MockClock:     clk,
		MockRandom:    rnd,
	}
}
