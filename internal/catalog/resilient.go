package catalog

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/payam49er/avatarhub/internal/model"
)

// ResilientSource decorates a fallible Source so the view layer never has
// to model a "service unavailable" state: transport failures are logged
// and absorbed into the deterministic substitute dataset. Logical
// failures (ErrLogicalFailure) pass through untouched; the server did
// answer, and substituting data would mask a real refusal.
type ResilientSource struct {
	remote   Source
	fallback *FallbackSource
	log      zerolog.Logger
}

// NewResilientSource wraps remote with fallback substitution.
func NewResilientSource(remote Source, log zerolog.Logger) *ResilientSource {
	return &ResilientSource{
		remote:   remote,
		fallback: NewFallbackSource(),
		log:      log,
	}
}

// ListAvatars degrades a transport failure to the fallback pool with the
// same paging and group-slicing applied.
func (s *ResilientSource) ListAvatars(ctx context.Context, req ListAvatarsRequest) (AvatarPage, error) {
	page, err := s.remote.ListAvatars(ctx, req)
	if err != nil {
		if errors.Is(err, ErrLogicalFailure) {
			return AvatarPage{}, err
		}
		s.log.Warn().Err(err).
			Int("page", req.Page).
			Str("group_id", req.GroupID).
			Msg("avatar listing failed, serving fallback")
		return s.fallback.ListAvatars(ctx, req)
	}
	return page, nil
}

// ListGroups degrades a transport failure to the fixed substitute groups.
func (s *ResilientSource) ListGroups(ctx context.Context, publicOnly bool) (GroupList, error) {
	list, err := s.remote.ListGroups(ctx, publicOnly)
	if err != nil {
		if errors.Is(err, ErrLogicalFailure) {
			return GroupList{}, err
		}
		s.log.Warn().Err(err).Msg("group listing failed, serving fallback")
		return s.fallback.ListGroups(ctx, publicOnly)
	}
	return list, nil
}

// AvatarDetail degrades a transport failure to a substitute detail record
// seeded from the id.
func (s *ResilientSource) AvatarDetail(ctx context.Context, avatarID string) (model.AvatarDetail, error) {
	detail, err := s.remote.AvatarDetail(ctx, avatarID)
	if err != nil {
		if errors.Is(err, ErrLogicalFailure) {
			return model.AvatarDetail{}, err
		}
		s.log.Warn().Err(err).Str("avatar_id", avatarID).Msg("avatar detail failed, serving fallback")
		return s.fallback.AvatarDetail(ctx, avatarID)
	}
	return detail, nil
}
