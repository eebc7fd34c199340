package shopper_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	appshopper "github.com/greenbasket/storefront/application/shopper"
	"github.com/greenbasket/storefront/constant"
	sessionmocks "github.com/greenbasket/storefront/mocks/repository/session"
	"github.com/greenbasket/storefront/model"
	cerr "github.com/greenbasket/storefront/utils/errors"
	"github.com/stretchr/testify/mock"
)

func ctxWithUser(userID uint64) context.Context {
	return context.WithValue(context.Background(), constant.UserIDKey, userID)
}

func assertErrCode(t *testing.T, err error, wantCode string) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != wantCode {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), wantCode)
	}
}

func TestShopperApp_ToggleWishlist(t *testing.T) {
	type fields struct {
		sessionRepo *sessionmocks.Repository
	}
	tests := []struct {
		name        string
		fields      fields
		ctx         context.Context
		productID   uint64
		mockCall    func(f fields)
		wantErr     bool
		wantErrCode string
		want        *model.ToggleWishlistResponse
	}{
		{
			name:        "error: missing session",
			fields:      fields{sessionRepo: sessionmocks.NewRepository(t)},
			ctx:         context.Background(),
			productID:   7,
			wantErr:     true,
			wantErrCode: constant.ErrorTypeCode[constant.ErrInvalidSession],
		},
		{
			name:      "success: absent product is added",
			fields:    fields{sessionRepo: sessionmocks.NewRepository(t)},
			ctx:       ctxWithUser(42),
			productID: 7,
			mockCall: func(f fields) {
				f.sessionRepo.
					On("InWishlist", mock.Anything, uint64(42), uint64(7)).
					Return(false, nil).
					Once()
				f.sessionRepo.
					On("AddWishlist", mock.Anything, uint64(42), uint64(7)).
					Return(nil).
					Once()
			},
			want: &model.ToggleWishlistResponse{ProductID: 7, InWishlist: true},
		},
		{
			name:      "success: present product is removed",
			fields:    fields{sessionRepo: sessionmocks.NewRepository(t)},
			ctx:       ctxWithUser(42),
			productID: 7,
			mockCall: func(f fields) {
				f.sessionRepo.
					On("InWishlist", mock.Anything, uint64(42), uint64(7)).
					Return(true, nil).
					Once()
				f.sessionRepo.
					On("RemoveWishlist", mock.Anything, uint64(42), uint64(7)).
					Return(nil).
					Once()
			},
			want: &model.ToggleWishlistResponse{ProductID: 7, InWishlist: false},
		},
		{
			name:      "error: membership check failure",
			fields:    fields{sessionRepo: sessionmocks.NewRepository(t)},
			ctx:       ctxWithUser(42),
			productID: 7,
			mockCall: func(f fields) {
				f.sessionRepo.
					On("InWishlist", mock.Anything, uint64(42), uint64(7)).
					Return(false, errors.New("redis gone")).
					Once()
			},
			wantErr:     true,
			wantErrCode: constant.ErrorTypeCode[constant.ErrInternal],
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appshopper.NewShopperApp(tt.fields.sessionRepo)

			got, err := app.ToggleWishlist(tt.ctx, tt.productID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ToggleWishlist() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.wantErrCode)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ToggleWishlist() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestShopperApp_GetWishlist(t *testing.T) {
	sessionRepo := sessionmocks.NewRepository(t)
	sessionRepo.
		On("ListWishlist", mock.Anything, uint64(42)).
		Return([]uint64{3, 7}, nil).
		Once()

	app := appshopper.NewShopperApp(sessionRepo)
	got, err := app.GetWishlist(ctxWithUser(42))
	if err != nil {
		t.Fatalf("GetWishlist() error = %v", err)
	}
	if !reflect.DeepEqual(got.ProductIDs, []uint64{3, 7}) {
		t.Fatalf("GetWishlist() = %+v", got)
	}
}

func TestShopperApp_SetCartItem(t *testing.T) {
	type fields struct {
		sessionRepo *sessionmocks.Repository
	}
	tests := []struct {
		name        string
		fields      fields
		ctx         context.Context
		productID   uint64
		quantity    int
		mockCall    func(f fields)
		wantErr     bool
		wantErrCode string
	}{
		{
			name:        "error: missing session",
			fields:      fields{sessionRepo: sessionmocks.NewRepository(t)},
			ctx:         context.Background(),
			productID:   7,
			quantity:    1,
			wantErr:     true,
			wantErrCode: constant.ErrorTypeCode[constant.ErrInvalidSession],
		},
		{
			name:        "error: negative quantity is rejected without a write",
			fields:      fields{sessionRepo: sessionmocks.NewRepository(t)},
			ctx:         ctxWithUser(42),
			productID:   7,
			quantity:    -1,
			wantErr:     true,
			wantErrCode: constant.ErrorTypeCode[constant.ErrInvalidRequest],
		},
		{
			name:      "success: positive quantity is written",
			fields:    fields{sessionRepo: sessionmocks.NewRepository(t)},
			ctx:       ctxWithUser(42),
			productID: 7,
			quantity:  3,
			mockCall: func(f fields) {
				f.sessionRepo.
					On("SetCartItem", mock.Anything, uint64(42), uint64(7), 3).
					Return(nil).
					Once()
			},
		},
		{
			name:      "success: zero quantity removes the entry",
			fields:    fields{sessionRepo: sessionmocks.NewRepository(t)},
			ctx:       ctxWithUser(42),
			productID: 7,
			quantity:  0,
			mockCall: func(f fields) {
				f.sessionRepo.
					On("RemoveCartItem", mock.Anything, uint64(42), uint64(7)).
					Return(nil).
					Once()
			},
		},
		{
			name:      "error: write failure",
			fields:    fields{sessionRepo: sessionmocks.NewRepository(t)},
			ctx:       ctxWithUser(42),
			productID: 7,
			quantity:  3,
			mockCall: func(f fields) {
				f.sessionRepo.
					On("SetCartItem", mock.Anything, uint64(42), uint64(7), 3).
					Return(errors.New("redis gone")).
					Once()
			},
			wantErr:     true,
			wantErrCode: constant.ErrorTypeCode[constant.ErrInternal],
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appshopper.NewShopperApp(tt.fields.sessionRepo)

			err := app.SetCartItem(tt.ctx, tt.productID, tt.quantity)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SetCartItem() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.wantErrCode)
			}
		})
	}
}

func TestShopperApp_GetCart(t *testing.T) {
	sessionRepo := sessionmocks.NewRepository(t)
	sessionRepo.
		On("GetCart", mock.Anything, uint64(42)).
		Return(map[uint64]int{7: 3, 11: 1}, nil).
		Once()

	app := appshopper.NewShopperApp(sessionRepo)
	got, err := app.GetCart(ctxWithUser(42))
	if err != nil {
		t.Fatalf("GetCart() error = %v", err)
	}
	want := map[uint64]int{7: 3, 11: 1}
	if !reflect.DeepEqual(got.Items, want) {
		t.Fatalf("GetCart() = %+v, want %+v", got.Items, want)
	}
}
