package profile

import (
	"context"

	"github.com/greenbasket/storefront/constant"
	"github.com/greenbasket/storefront/model"
	profilerepo "github.com/greenbasket/storefront/repository/profile"
	utilsContext "github.com/greenbasket/storefront/utils/context"
	"github.com/greenbasket/storefront/utils/derive"
	"github.com/greenbasket/storefront/utils/errors"
	"github.com/greenbasket/storefront/utils/logger"
	"go.uber.org/zap"
)

type ProfileApp interface {
	GetProfile(ctx context.Context) (*model.Profile, error)
	UpdateProfile(ctx context.Context, req *model.UpdateProfileRequest) (*model.Profile, error)
}

type profileAppImpl struct {
	profileRepo profilerepo.ProfileRepository
}

func NewProfileApp(profileRepo profilerepo.ProfileRepository) ProfileApp {
	return &profileAppImpl{profileRepo: profileRepo}
}

// GetProfile returns the caller's profile with the completeness score
// recomputed on every read. A user without a stored row gets an empty
// profile rather than an error, so the page always renders a form.
func (s *profileAppImpl) GetProfile(ctx context.Context) (*model.Profile, error) {
	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		return nil, errors.SetCustomError(constant.ErrInvalidSession)
	}

	p, err := s.profileRepo.Get(ctx, userID)
	if err != nil {
		logger.Error("[GetProfile] error profileRepo.Get", zap.Uint64("user_id", userID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if p == nil {
		p = &model.Profile{
			UserID:       userID,
			PrivacyLevel: string(constant.PrivacyPublic),
		}
	}

	p.Completeness = derive.ProfileCompleteness(p)
	return p, nil
}

func (s *profileAppImpl) UpdateProfile(ctx context.Context, req *model.UpdateProfileRequest) (*model.Profile, error) {
	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		return nil, errors.SetCustomError(constant.ErrInvalidSession)
	}

	privacy := req.PrivacyLevel
	if privacy == "" {
		privacy = string(constant.PrivacyPublic)
	}

	p := &model.Profile{
		UserID:       userID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		AvatarURL:    req.AvatarURL,
		Bio:          req.Bio,
		BirthDate:    req.BirthDate,
		Gender:       req.Gender,
		Occupation:   req.Occupation,
		Address:      req.Address,
		Website:      req.Website,
		SocialLinks:  req.SocialLinks,
		PrivacyLevel: privacy,
	}

	if err := s.profileRepo.Upsert(ctx, p); err != nil {
		logger.Error("[UpdateProfile] error profileRepo.Upsert", zap.Uint64("user_id", userID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	p.Completeness = derive.ProfileCompleteness(p)
	return p, nil
}
