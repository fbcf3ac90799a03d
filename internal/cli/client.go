package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/MCBE-Utilities/BeRAPI/internal/factory"
	"github.com/MCBE-Utilities/BeRAPI/internal/model"
	"github.com/MCBE-Utilities/BeRAPI/internal/services/realm"
)

// NewClient builds a factory.Client from the loaded configuration
func NewClient(ctx context.Context, cfg *Config, logger *slog.Logger) (*factory.Client, error) {
	if cfg.Env.SessionTicket == "" || cfg.Env.AccountHash == "" {
		return nil, errors.New("BERAPI_SESSION_TICKET and BERAPI_ACCOUNT_HASH are required")
	}
	return factory.New(ctx, cfg.Env.Factory(logger))
}

func parseRealmID(arg string) (model.RealmID, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid realm id %q", arg)
	}
	return model.RealmID(id), nil
}

// getRealm resolves a realm id argument against the account's realm list
func getRealm(ctx context.Context, arg string) (*realm.Realm, error) {
	id, err := parseRealmID(arg)
	if err != nil {
		return nil, err
	}
	return client.Realms.GetByID(ctx, id)
}
