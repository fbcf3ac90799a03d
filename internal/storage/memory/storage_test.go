package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/MCBE-Utilities/BeRAPI/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) TestSaveAndGetIdentity() {
	identity := model.Identity{
		SessionTicket: "ticket",
		AccountHash:   "hash",
		ExpiresAt:     time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	}

	err := s.storage.SaveIdentity(s.ctx, "realms", identity)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetIdentity(s.ctx, "realms")
	s.Require().NoError(err)
	s.Equal(identity, retrieved)
}

func (s *StorageSuite) TestGetIdentityNotFound() {
	_, err := s.storage.GetIdentity(s.ctx, "xbox")
	s.ErrorIs(err, model.ErrIdentityNotFound)
}

func (s *StorageSuite) TestSaveIdentityOverwrites() {
	_ = s.storage.SaveIdentity(s.ctx, "realms", model.Identity{SessionTicket: "old", AccountHash: "hash"})
	_ = s.storage.SaveIdentity(s.ctx, "realms", model.Identity{SessionTicket: "new", AccountHash: "hash"})

	retrieved, err := s.storage.GetIdentity(s.ctx, "realms")
	s.Require().NoError(err)
	s.Equal("new", retrieved.SessionTicket)
}

func (s *StorageSuite) TestDeleteIdentity() {
	_ = s.storage.SaveIdentity(s.ctx, "realms", model.Identity{SessionTicket: "ticket"})

	err := s.storage.DeleteIdentity(s.ctx, "realms")
	s.Require().NoError(err)

	_, err = s.storage.GetIdentity(s.ctx, "realms")
	s.ErrorIs(err, model.ErrIdentityNotFound)
}

func (s *StorageSuite) TestPartiesAreIndependent() {
	_ = s.storage.SaveIdentity(s.ctx, "realms", model.Identity{SessionTicket: "realms-ticket"})
	_ = s.storage.SaveIdentity(s.ctx, "xbox", model.Identity{SessionTicket: "xbox-ticket"})

	realms, _ := s.storage.GetIdentity(s.ctx, "realms")
	xbox, _ := s.storage.GetIdentity(s.ctx, "xbox")
	s.Equal("realms-ticket", realms.SessionTicket)
	s.Equal("xbox-ticket", xbox.SessionTicket)
}
