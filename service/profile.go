package service

import (
	"context"

	"go.uber.org/zap"

	"conference-central/database"
	"conference-central/errors"
	"conference-central/model"
)

type ProfileService struct {
	store database.Store
	log   *zap.SugaredLogger
}

func NewProfileService(store database.Store, log *zap.SugaredLogger) *ProfileService {
	return &ProfileService{store: store, log: log}
}

// GetOrCreate returns the caller's profile, creating it on first
// authenticated access.
func (s *ProfileService) GetOrCreate(ctx context.Context, ident model.Identity) (*model.Profile, error) {
	if ident.UserID == "" {
		return nil, errors.Unauthenticatedf("authorization required")
	}

	profile, err := s.store.GetProfile(ctx, ident.UserID)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		return profile, nil
	}

	profile = model.NewProfile(ident)
	if err := s.store.PutProfile(ctx, profile); err != nil {
		return nil, err
	}
	s.log.Infow("created profile", "user_id", ident.UserID)
	return profile, nil
}

// Save updates the user-modifiable profile fields, leaving empty ones
// untouched.
func (s *ProfileService) Save(ctx context.Context, ident model.Identity, form model.ProfileForm) (*model.Profile, error) {
	profile, err := s.GetOrCreate(ctx, ident)
	if err != nil {
		return nil, err
	}

	changed := false
	if form.DisplayName != "" {
		profile.DisplayName = form.DisplayName
		changed = true
	}
	if form.TeeShirtSize != "" {
		if !model.TeeShirtSizes[form.TeeShirtSize] {
			return nil, errors.Validationf("unknown tee shirt size %q", form.TeeShirtSize)
		}
		profile.TeeShirtSize = form.TeeShirtSize
		changed = true
	}

	if changed {
		if err := s.store.PutProfile(ctx, profile); err != nil {
			return nil, err
		}
	}
	return profile, nil
}
