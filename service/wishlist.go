package service

import (
	"context"

	"go.uber.org/zap"

	"conference-central/database"
	"conference-central/errors"
	"conference-central/model"
)

// WishlistService owns the (profile, session) interest state machine.
// Sessions carry no counter, so a profile-scoped transaction suffices.
type WishlistService struct {
	store database.Store
	log   *zap.SugaredLogger
}

func NewWishlistService(store database.Store, log *zap.SugaredLogger) *WishlistService {
	return &WishlistService{store: store, log: log}
}

// Add puts a session on the caller's wishlist.
func (s *WishlistService) Add(ctx context.Context, ident model.Identity, sessionID string) (bool, error) {
	if err := s.checkSessionExists(ctx, ident, sessionID); err != nil {
		return false, err
	}

	err := s.store.RunTransaction(ctx, func(tx database.Tx) error {
		profile, err := tx.GetProfile(ident.UserID)
		if err != nil {
			return err
		}
		if profile == nil {
			profile = model.NewProfile(ident)
		}

		if profile.HasSession(sessionID) {
			return errors.Conflictf("you have already added this session to wishlist")
		}
		profile.SessionKeysToAttend = append(profile.SessionKeysToAttend, sessionID)
		return tx.PutProfile(profile)
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// Remove takes a session off the caller's wishlist; removing an absent
// one is a conflict.
func (s *WishlistService) Remove(ctx context.Context, ident model.Identity, sessionID string) (bool, error) {
	if err := s.checkSessionExists(ctx, ident, sessionID); err != nil {
		return false, err
	}

	err := s.store.RunTransaction(ctx, func(tx database.Tx) error {
		profile, err := tx.GetProfile(ident.UserID)
		if err != nil {
			return err
		}
		if profile == nil || !profile.HasSession(sessionID) {
			return errors.Conflictf("the session you are deleting is not in the wishlist")
		}
		profile.RemoveSession(sessionID)
		return tx.PutProfile(profile)
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// Sessions lists wishlisted sessions in the order they were added.
func (s *WishlistService) Sessions(ctx context.Context, ident model.Identity) ([]model.Session, error) {
	if ident.UserID == "" {
		return nil, errors.Unauthenticatedf("authorization required")
	}

	profile, err := s.store.GetProfile(ctx, ident.UserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return []model.Session{}, nil
	}
	return s.store.SessionsByIDs(ctx, profile.SessionKeysToAttend)
}

func (s *WishlistService) checkSessionExists(ctx context.Context, ident model.Identity, sessionID string) error {
	if ident.UserID == "" {
		return errors.Unauthenticatedf("authorization required")
	}
	session, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if session == nil {
		return errors.NotFoundf("no session found with key: %s", sessionID)
	}
	return nil
}
