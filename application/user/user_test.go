package user_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	appuser "github.com/greenbasket/storefront/application/user"
	"github.com/greenbasket/storefront/cmd/config"
	"github.com/greenbasket/storefront/constant"
	sessionmocks "github.com/greenbasket/storefront/mocks/repository/session"
	usermocks "github.com/greenbasket/storefront/mocks/repository/user"
	"github.com/greenbasket/storefront/model"
	cerr "github.com/greenbasket/storefront/utils/errors"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func authConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret-key-for-jwt-signing",
			JWTExpiration:  time.Hour,
			SessionExpTime: time.Hour,
		},
	}
}

func TestUserApp_Register(t *testing.T) {
	type fields struct {
		config      *config.Config
		userRepo    *usermocks.UserRepository
		sessionRepo *sessionmocks.Repository
	}
	type args struct {
		ctx context.Context
		req *model.RegisterRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.RegisterResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: register new user",
			fields: fields{
				config:      authConfig(),
				userRepo:    usermocks.NewUserRepository(t),
				sessionRepo: sessionmocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					FirstName: "Ada",
					LastName:  "Moss",
					Email:     "ada@example.com",
					Phone:     "081234567890",
					Password:  "password123",
				},
			},
			mockCall: func(f fields) {
				// Check email doesn't exist
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "ada@example.com"}).
					Return(nil, nil).
					Once()

				// Check phone doesn't exist
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Phone: "081234567890"}).
					Return(nil, nil).
					Once()

				// Create user
				f.userRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.UserEntity) bool {
						return ent.FirstName == "Ada" &&
							ent.LastName == "Moss" &&
							ent.Email == "ada@example.com" &&
							ent.Phone == "081234567890" &&
							ent.PasswordHash != ""
					})).
					Return(&model.UserEntity{
						ID:           1,
						FirstName:    "Ada",
						LastName:     "Moss",
						Email:        "ada@example.com",
						Phone:        "081234567890",
						PasswordHash: "hashed_password",
						CreatedAt:    time.Now(),
					}, nil).
					Once()
			},
			want: &model.RegisterResponse{
				FirstName: "Ada",
				LastName:  "Moss",
				Email:     "ada@example.com",
			},
			wantErr: false,
		},
		{
			name: "error: email already exists",
			fields: fields{
				config:      authConfig(),
				userRepo:    usermocks.NewUserRepository(t),
				sessionRepo: sessionmocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					FirstName: "Ada",
					LastName:  "Moss",
					Email:     "existing@example.com",
					Phone:     "081234567890",
					Password:  "password123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "existing@example.com"}).
					Return(&model.UserEntity{
						ID:    1,
						Email: "existing@example.com",
					}, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
		{
			name: "error: phone already exists",
			fields: fields{
				config:      authConfig(),
				userRepo:    usermocks.NewUserRepository(t),
				sessionRepo: sessionmocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					FirstName: "Ada",
					LastName:  "Moss",
					Email:     "ada@example.com",
					Phone:     "081111111111",
					Password:  "password123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "ada@example.com"}).
					Return(nil, nil).
					Once()

				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Phone: "081111111111"}).
					Return(&model.UserEntity{
						ID:    1,
						Phone: "081111111111",
					}, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
		{
			name: "error: repository Get email returns error",
			fields: fields{
				config:      authConfig(),
				userRepo:    usermocks.NewUserRepository(t),
				sessionRepo: sessionmocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					FirstName: "Ada",
					LastName:  "Moss",
					Email:     "ada@example.com",
					Phone:     "081234567890",
					Password:  "password123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "ada@example.com"}).
					Return(nil, errors.New("db error")).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: repository Create returns error",
			fields: fields{
				config:      authConfig(),
				userRepo:    usermocks.NewUserRepository(t),
				sessionRepo: sessionmocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					FirstName: "Ada",
					LastName:  "Moss",
					Email:     "ada@example.com",
					Phone:     "081234567890",
					Password:  "password123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "ada@example.com"}).
					Return(nil, nil).
					Once()

				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Phone: "081234567890"}).
					Return(nil, nil).
					Once()

				f.userRepo.
					On("Create", mock.Anything, mock.AnythingOfType("*model.UserEntity")).
					Return(nil, errors.New("create failed")).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := appuser.NewUserApp(tt.fields.config, tt.fields.userRepo, tt.fields.sessionRepo)

			got, err := app.Register(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Register() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Register() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUserApp_Login(t *testing.T) {
	type fields struct {
		config      *config.Config
		userRepo    *usermocks.UserRepository
		sessionRepo *sessionmocks.Repository
	}
	type args struct {
		ctx context.Context
		req *model.LoginRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.LoginResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: login with email",
			fields: fields{
				config:      authConfig(),
				userRepo:    usermocks.NewUserRepository(t),
				sessionRepo: sessionmocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{
					Identifier: "ada@example.com",
					Password:   "password123",
				},
			},
			mockCall: func(f fields) {
				hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "ada@example.com"}).
					Return(&model.UserEntity{
						ID:           1,
						FirstName:    "Ada",
						LastName:     "Moss",
						Email:        "ada@example.com",
						Phone:        "081234567890",
						PasswordHash: string(hashedPassword),
						CreatedAt:    time.Now(),
					}, nil).
					Once()

				f.sessionRepo.
					On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), time.Hour).
					Return(nil).
					Once()
			},
			want: &model.LoginResponse{
				FirstName: "Ada",
				LastName:  "Moss",
				Email:     "ada@example.com",
			},
			wantErr: false,
		},
		{
			name: "success: login with phone",
			fields: fields{
				config:      authConfig(),
				userRepo:    usermocks.NewUserRepository(t),
				sessionRepo: sessionmocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{
					Identifier: "081234567890",
					Password:   "password123",
				},
			},
			mockCall: func(f fields) {
				hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Phone: "081234567890"}).
					Return(&model.UserEntity{
						ID:           1,
						FirstName:    "Ada",
						LastName:     "Moss",
						Email:        "ada@example.com",
						Phone:        "081234567890",
						PasswordHash: string(hashedPassword),
						CreatedAt:    time.Now(),
					}, nil).
					Once()

				f.sessionRepo.
					On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), time.Hour).
					Return(nil).
					Once()
			},
			want: &model.LoginResponse{
				FirstName: "Ada",
				LastName:  "Moss",
				Email:     "ada@example.com",
			},
			wantErr: false,
		},
		{
			name: "error: user not found",
			fields: fields{
				config:      authConfig(),
				userRepo:    usermocks.NewUserRepository(t),
				sessionRepo: sessionmocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{
					Identifier: "notfound@example.com",
					Password:   "password123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "notfound@example.com"}).
					Return(nil, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: invalid password",
			fields: fields{
				config:      authConfig(),
				userRepo:    usermocks.NewUserRepository(t),
				sessionRepo: sessionmocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{
					Identifier: "ada@example.com",
					Password:   "wrongpassword",
				},
			},
			mockCall: func(f fields) {
				hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "ada@example.com"}).
					Return(&model.UserEntity{
						ID:           1,
						Email:        "ada@example.com",
						PasswordHash: string(hashedPassword),
					}, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInvalidPassword,
		},
		{
			name: "error: SetSession returns error",
			fields: fields{
				config:      authConfig(),
				userRepo:    usermocks.NewUserRepository(t),
				sessionRepo: sessionmocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{
					Identifier: "ada@example.com",
					Password:   "password123",
				},
			},
			mockCall: func(f fields) {
				hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "ada@example.com"}).
					Return(&model.UserEntity{
						ID:           1,
						Email:        "ada@example.com",
						PasswordHash: string(hashedPassword),
					}, nil).
					Once()

				f.sessionRepo.
					On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), time.Hour).
					Return(errors.New("redis error")).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := appuser.NewUserApp(tt.fields.config, tt.fields.userRepo, tt.fields.sessionRepo)

			got, err := app.Login(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Login() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.FirstName != tt.want.FirstName || got.Email != tt.want.Email {
				t.Fatalf("Login() = %+v, want %+v", got, tt.want)
			}
			if got.Token == "" {
				t.Fatal("Login() token should not be empty")
			}
		})
	}
}

func TestUserApp_Logout(t *testing.T) {
	t.Run("success: session deleted", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		sessionRepo := sessionmocks.NewRepository(t)
		app := appuser.NewUserApp(authConfig(), userRepo, sessionRepo)

		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		userRepo.On("Get", mock.Anything, mock.Anything).Return(&model.UserEntity{
			ID:           1,
			PasswordHash: string(hashedPassword),
		}, nil).Once()
		sessionRepo.On("SetSession", mock.Anything, mock.Anything, uint64(1), time.Hour).Return(nil).Once()

		resp, err := app.Login(context.Background(), &model.LoginRequest{
			Identifier: "ada@example.com",
			Password:   "password123",
		})
		if err != nil {
			t.Fatalf("login for token: %v", err)
		}

		sessionRepo.
			On("DeleteSession", mock.Anything, mock.AnythingOfType("string")).
			Return(nil).
			Once()

		if err := app.Logout(context.Background(), resp.Token); err != nil {
			t.Fatalf("Logout() error = %v", err)
		}
	})

	t.Run("error: malformed token", func(t *testing.T) {
		app := appuser.NewUserApp(authConfig(), usermocks.NewUserRepository(t), sessionmocks.NewRepository(t))

		err := app.Logout(context.Background(), "invalid.token.string")
		var ce cerr.CustomError
		if !errors.As(err, &ce) {
			t.Fatalf("error type = %T, want CustomError", err)
		}
		if ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrInvalidSession] {
			t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[constant.ErrInvalidSession])
		}
	})
}

func TestUserApp_ValidateToken(t *testing.T) {
	login := func(t *testing.T, userRepo *usermocks.UserRepository, sessionRepo *sessionmocks.Repository) (appuser.UserApp, string) {
		t.Helper()
		app := appuser.NewUserApp(authConfig(), userRepo, sessionRepo)

		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		userRepo.On("Get", mock.Anything, mock.Anything).Return(&model.UserEntity{
			ID:           1,
			PasswordHash: string(hashedPassword),
		}, nil).Once()
		sessionRepo.On("SetSession", mock.Anything, mock.Anything, uint64(1), time.Hour).Return(nil).Once()

		resp, err := app.Login(context.Background(), &model.LoginRequest{
			Identifier: "ada@example.com",
			Password:   "password123",
		})
		if err != nil {
			t.Fatalf("login for token: %v", err)
		}
		return app, resp.Token
	}

	t.Run("success: valid token", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		sessionRepo := sessionmocks.NewRepository(t)
		app, token := login(t, userRepo, sessionRepo)

		sessionRepo.
			On("GetSession", mock.Anything, mock.AnythingOfType("string")).
			Return(uint64(1), nil).
			Once()

		got, err := app.ValidateToken(context.Background(), token)
		if err != nil {
			t.Fatalf("ValidateToken() error = %v", err)
		}
		if got != 1 {
			t.Fatalf("ValidateToken() = %d, want 1", got)
		}
	})

	t.Run("error: invalid token format", func(t *testing.T) {
		app := appuser.NewUserApp(authConfig(), usermocks.NewUserRepository(t), sessionmocks.NewRepository(t))

		if _, err := app.ValidateToken(context.Background(), "invalid.token.string"); err == nil {
			t.Fatal("ValidateToken() expected error for malformed token")
		}
	})

	t.Run("error: session not found", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		sessionRepo := sessionmocks.NewRepository(t)
		app, token := login(t, userRepo, sessionRepo)

		sessionRepo.
			On("GetSession", mock.Anything, mock.AnythingOfType("string")).
			Return(uint64(0), errors.New("session not found")).
			Once()

		if _, err := app.ValidateToken(context.Background(), token); err == nil {
			t.Fatal("ValidateToken() expected error for missing session")
		}
	})

	t.Run("error: session belongs to another user", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		sessionRepo := sessionmocks.NewRepository(t)
		app, token := login(t, userRepo, sessionRepo)

		sessionRepo.
			On("GetSession", mock.Anything, mock.AnythingOfType("string")).
			Return(uint64(2), nil).
			Once()

		if _, err := app.ValidateToken(context.Background(), token); err == nil {
			t.Fatal("ValidateToken() expected error for mismatched session")
		}
	})
}
