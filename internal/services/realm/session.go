// Package realm maps Realms API resources onto long-lived entities.
//
// Realm objects are stateless views over the snapshot they were fetched
// with; a Manager never reuses them. Player and Banned objects carry a lazily
// filled Xbox profile cache, and a realm's PlayerManager returns the same
// *Player for a xuid for as long as that Realm object is alive.
package realm

import (
	"context"
	"log/slog"

	"github.com/MCBE-Utilities/BeRAPI/internal/dependencies/clock"
	"github.com/MCBE-Utilities/BeRAPI/internal/endpoints"
	"github.com/MCBE-Utilities/BeRAPI/internal/requests"
)

// Requester performs a single authorized request.
// *requests.Manager is the production implementation.
type Requester interface {
	Do(ctx context.Context, method, endpoint string, result any, opts ...requests.Option) error
}

// session is shared by every entity created from one Manager
type session struct {
	requests  Requester
	endpoints endpoints.Endpoints
	clock     clock.Clock
	logger    *slog.Logger
}
