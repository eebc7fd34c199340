package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/greenbasket/storefront/constant"
	"github.com/greenbasket/storefront/model"
	"github.com/greenbasket/storefront/utils/errors"
	validatorx "github.com/greenbasket/storefront/utils/validator"
)

// GetProfile handler
// @Summary Get the caller's profile
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Profile
// @Failure 401 {object} errors.CustomError
// @Router /profile [get]
func (s *RestHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if s.ProfileApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.ProfileApp.GetProfile(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateProfile handler
// @Summary Update the caller's profile
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.UpdateProfileRequest true "Profile"
// @Success 200 {object} model.Profile
// @Failure 400 {object} errors.CustomError
// @Router /profile [put]
func (s *RestHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.ProfileApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.ProfileApp.UpdateProfile(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetWishlist handler
// @Summary List wishlist product ids
// @Tags Shopper
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.WishlistResponse
// @Router /wishlist [get]
func (s *RestHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if s.ShopperApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.ShopperApp.GetWishlist(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ToggleWishlist handler
// @Summary Toggle a product's wishlist membership
// @Tags Shopper
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} model.ToggleWishlistResponse
// @Router /wishlist/{id} [post]
func (s *RestHandler) ToggleWishlist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.ShopperApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.ShopperApp.ToggleWishlist(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetCart handler
// @Summary Get cart quantities
// @Tags Shopper
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.CartResponse
// @Router /cart [get]
func (s *RestHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if s.ShopperApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.ShopperApp.GetCart(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// SetCartItem handler
// @Summary Set a cart quantity (0 removes the item)
// @Tags Shopper
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param request body model.SetCartItemRequest true "Quantity"
// @Success 200 {object} model.CartResponse
// @Router /cart/{id} [put]
func (s *RestHandler) SetCartItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.SetCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.ShopperApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	if err := s.ShopperApp.SetCartItem(ctx, id, req.Quantity); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ShopperApp.GetCart(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
