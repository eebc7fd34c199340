package shopper

import (
	"context"

	"github.com/greenbasket/storefront/constant"
	"github.com/greenbasket/storefront/model"
	sessionrepo "github.com/greenbasket/storefront/repository/session"
	utilsContext "github.com/greenbasket/storefront/utils/context"
	"github.com/greenbasket/storefront/utils/errors"
	"github.com/greenbasket/storefront/utils/logger"
	"go.uber.org/zap"
)

// ShopperApp holds the session-scoped shopper state: wishlist membership and
// cart quantities, keyed by product id. Single-user state, last writer wins.
type ShopperApp interface {
	ToggleWishlist(ctx context.Context, productID uint64) (*model.ToggleWishlistResponse, error)
	GetWishlist(ctx context.Context) (*model.WishlistResponse, error)
	SetCartItem(ctx context.Context, productID uint64, quantity int) error
	GetCart(ctx context.Context) (*model.CartResponse, error)
}

type shopperAppImpl struct {
	sessionRepo sessionrepo.Repository
}

func NewShopperApp(sessionRepo sessionrepo.Repository) ShopperApp {
	return &shopperAppImpl{sessionRepo: sessionRepo}
}

func (s *shopperAppImpl) ToggleWishlist(ctx context.Context, productID uint64) (*model.ToggleWishlistResponse, error) {
	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		return nil, errors.SetCustomError(constant.ErrInvalidSession)
	}

	member, err := s.sessionRepo.InWishlist(ctx, userID, productID)
	if err != nil {
		logger.Error("[ToggleWishlist] error InWishlist", zap.Uint64("product_id", productID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if member {
		err = s.sessionRepo.RemoveWishlist(ctx, userID, productID)
	} else {
		err = s.sessionRepo.AddWishlist(ctx, userID, productID)
	}
	if err != nil {
		logger.Error("[ToggleWishlist] error updating wishlist", zap.Uint64("product_id", productID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.ToggleWishlistResponse{
		ProductID:  productID,
		InWishlist: !member,
	}, nil
}

func (s *shopperAppImpl) GetWishlist(ctx context.Context) (*model.WishlistResponse, error) {
	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		return nil, errors.SetCustomError(constant.ErrInvalidSession)
	}

	ids, err := s.sessionRepo.ListWishlist(ctx, userID)
	if err != nil {
		logger.Error("[GetWishlist] error ListWishlist", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.WishlistResponse{ProductIDs: ids}, nil
}

// SetCartItem writes the quantity for a product; zero removes the entry.
func (s *shopperAppImpl) SetCartItem(ctx context.Context, productID uint64, quantity int) error {
	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		return errors.SetCustomError(constant.ErrInvalidSession)
	}
	if quantity < 0 {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}

	var err error
	if quantity == 0 {
		err = s.sessionRepo.RemoveCartItem(ctx, userID, productID)
	} else {
		err = s.sessionRepo.SetCartItem(ctx, userID, productID, quantity)
	}
	if err != nil {
		logger.Error("[SetCartItem] error updating cart", zap.Uint64("product_id", productID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *shopperAppImpl) GetCart(ctx context.Context) (*model.CartResponse, error) {
	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		return nil, errors.SetCustomError(constant.ErrInvalidSession)
	}

	items, err := s.sessionRepo.GetCart(ctx, userID)
	if err != nil {
		logger.Error("[GetCart] error GetCart", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.CartResponse{Items: items}, nil
}
