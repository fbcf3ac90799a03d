package factory

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/MCBE-Utilities/BeRAPI/internal/dependencies/mocks"
	"github.com/MCBE-Utilities/BeRAPI/internal/endpoints"
	"github.com/MCBE-Utilities/BeRAPI/internal/storage/memory"
)

// TestClient extends Client with test-specific helpers
type TestClient struct {
	*Client

	// Mocks for test control
	MockClock *mocks.MockClock
}

// NewTestClient creates a Client configured for testing with mocked dependencies.
// Requests go to eps through httpClient; no identity is stored.
func NewTestClient(eps endpoints.Endpoints, httpClient *http.Client) *TestClient {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	client := newWithDependencies(store, mockClock, eps, httpClient, logger)

	return &TestClient{
		Client:    client,
		MockClock: mockClock,
	}
}
