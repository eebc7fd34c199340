package profile_test

import (
	"context"
	"errors"
	"testing"

	appprofile "github.com/greenbasket/storefront/application/profile"
	"github.com/greenbasket/storefront/constant"
	profilemocks "github.com/greenbasket/storefront/mocks/repository/profile"
	"github.com/greenbasket/storefront/model"
	cerr "github.com/greenbasket/storefront/utils/errors"
	"github.com/stretchr/testify/mock"
)

func ctxWithUser(userID uint64) context.Context {
	return context.WithValue(context.Background(), constant.UserIDKey, userID)
}

func TestProfileApp_GetProfile(t *testing.T) {
	type fields struct {
		profileRepo *profilemocks.ProfileRepository
	}
	tests := []struct {
		name        string
		fields      fields
		ctx         context.Context
		mockCall    func(f fields)
		wantErr     bool
		wantErrCode string
		check       func(t *testing.T, got *model.Profile)
	}{
		{
			name:        "error: missing session",
			fields:      fields{profileRepo: profilemocks.NewProfileRepository(t)},
			ctx:         context.Background(),
			wantErr:     true,
			wantErrCode: constant.ErrorTypeCode[constant.ErrInvalidSession],
		},
		{
			name:   "error: repository failure",
			fields: fields{profileRepo: profilemocks.NewProfileRepository(t)},
			ctx:    ctxWithUser(42),
			mockCall: func(f fields) {
				f.profileRepo.
					On("Get", mock.Anything, uint64(42)).
					Return(nil, errors.New("db gone")).
					Once()
			},
			wantErr:     true,
			wantErrCode: constant.ErrorTypeCode[constant.ErrInternal],
		},
		{
			name:   "success: no stored row yields an empty public profile",
			fields: fields{profileRepo: profilemocks.NewProfileRepository(t)},
			ctx:    ctxWithUser(42),
			mockCall: func(f fields) {
				f.profileRepo.
					On("Get", mock.Anything, uint64(42)).
					Return(nil, nil).
					Once()
			},
			check: func(t *testing.T, got *model.Profile) {
				if got.UserID != 42 {
					t.Fatalf("user id = %d, want 42", got.UserID)
				}
				if got.PrivacyLevel != string(constant.PrivacyPublic) {
					t.Fatalf("privacy = %q, want public", got.PrivacyLevel)
				}
				if got.Completeness != 0 {
					t.Fatalf("completeness = %d, want 0", got.Completeness)
				}
			},
		},
		{
			name:   "success: completeness recomputed on read",
			fields: fields{profileRepo: profilemocks.NewProfileRepository(t)},
			ctx:    ctxWithUser(42),
			mockCall: func(f fields) {
				f.profileRepo.
					On("Get", mock.Anything, uint64(42)).
					Return(&model.Profile{
						UserID:       42,
						FirstName:    "Ada",
						LastName:     "Moss",
						PrivacyLevel: string(constant.PrivacyPrivate),
					}, nil).
					Once()
			},
			check: func(t *testing.T, got *model.Profile) {
				// 2 of the 18 counted fields filled.
				if got.Completeness != 11 {
					t.Fatalf("completeness = %d, want 11", got.Completeness)
				}
				if got.PrivacyLevel != string(constant.PrivacyPrivate) {
					t.Fatalf("privacy = %q, want private", got.PrivacyLevel)
				}
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appprofile.NewProfileApp(tt.fields.profileRepo)

			got, err := app.GetProfile(tt.ctx)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetProfile() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != tt.wantErrCode {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), tt.wantErrCode)
				}
				return
			}
			if tt.check != nil {
				tt.check(t, got)
			}
		})
	}
}

func TestProfileApp_UpdateProfile(t *testing.T) {
	type fields struct {
		profileRepo *profilemocks.ProfileRepository
	}
	tests := []struct {
		name        string
		fields      fields
		ctx         context.Context
		req         *model.UpdateProfileRequest
		mockCall    func(f fields)
		wantErr     bool
		wantErrCode string
		check       func(t *testing.T, got *model.Profile)
	}{
		{
			name:        "error: missing session",
			fields:      fields{profileRepo: profilemocks.NewProfileRepository(t)},
			ctx:         context.Background(),
			req:         &model.UpdateProfileRequest{},
			wantErr:     true,
			wantErrCode: constant.ErrorTypeCode[constant.ErrInvalidSession],
		},
		{
			name:   "error: upsert failure",
			fields: fields{profileRepo: profilemocks.NewProfileRepository(t)},
			ctx:    ctxWithUser(42),
			req:    &model.UpdateProfileRequest{FirstName: "Ada"},
			mockCall: func(f fields) {
				f.profileRepo.
					On("Upsert", mock.Anything, mock.AnythingOfType("*model.Profile")).
					Return(errors.New("db gone")).
					Once()
			},
			wantErr:     true,
			wantErrCode: constant.ErrorTypeCode[constant.ErrInternal],
		},
		{
			name:   "success: empty privacy defaults to public",
			fields: fields{profileRepo: profilemocks.NewProfileRepository(t)},
			ctx:    ctxWithUser(42),
			req: &model.UpdateProfileRequest{
				FirstName: "Ada",
				LastName:  "Moss",
			},
			mockCall: func(f fields) {
				f.profileRepo.
					On("Upsert", mock.Anything, mock.MatchedBy(func(p *model.Profile) bool {
						return p.UserID == 42 && p.PrivacyLevel == string(constant.PrivacyPublic)
					})).
					Return(nil).
					Once()
			},
			check: func(t *testing.T, got *model.Profile) {
				if got.PrivacyLevel != string(constant.PrivacyPublic) {
					t.Fatalf("privacy = %q, want public", got.PrivacyLevel)
				}
				if got.Completeness != 11 {
					t.Fatalf("completeness = %d, want 11", got.Completeness)
				}
			},
		},
		{
			name:   "success: explicit privacy is kept",
			fields: fields{profileRepo: profilemocks.NewProfileRepository(t)},
			ctx:    ctxWithUser(42),
			req: &model.UpdateProfileRequest{
				FirstName:    "Ada",
				PrivacyLevel: string(constant.PrivacyFriendsOnly),
			},
			mockCall: func(f fields) {
				f.profileRepo.
					On("Upsert", mock.Anything, mock.MatchedBy(func(p *model.Profile) bool {
						return p.PrivacyLevel == string(constant.PrivacyFriendsOnly)
					})).
					Return(nil).
					Once()
			},
			check: func(t *testing.T, got *model.Profile) {
				if got.PrivacyLevel != string(constant.PrivacyFriendsOnly) {
					t.Fatalf("privacy = %q, want friends_only", got.PrivacyLevel)
				}
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appprofile.NewProfileApp(tt.fields.profileRepo)

			got, err := app.UpdateProfile(tt.ctx, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateProfile() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != tt.wantErrCode {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), tt.wantErrCode)
				}
				return
			}
			if tt.check != nil {
				tt.check(t, got)
			}
		})
	}
}
