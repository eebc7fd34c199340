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

// Home handler
// @Summary Home page view-model
// @Description Featured, newest, categories and best sellers in one aggregate
// @Tags Storefront
// @Produce json
// @Success 200 {object} model.HomeViewModel
// @Failure 502 {object} errors.CustomError
// @Router /home [get]
func (s *RestHandler) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if s.HomeApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.HomeApp.GetHomeViewModel(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ProductDetail handler
// @Summary Product detail view-model
// @Description Product with category, reviews, gallery and related products
// @Tags Storefront
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} model.ProductDetailResponse
// @Failure 400 {object} errors.CustomError
// @Failure 404 {object} errors.CustomError
// @Router /products/{id} [get]
func (s *RestHandler) ProductDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if s.CatalogApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.CatalogApp.GetProductDetail(ctx, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Testimonials handler
// @Summary Top testimonials
// @Tags Storefront
// @Produce json
// @Success 200 {array} model.Review
// @Router /testimonials [get]
func (s *RestHandler) Testimonials(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if s.CatalogApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.CatalogApp.ListTestimonials(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// SubscribeNewsletter handler
// @Summary Subscribe to the newsletter
// @Tags Newsletter
// @Accept json
// @Produce json
// @Param request body model.NewsletterSubscribeRequest true "Subscribe Request"
// @Success 200 {object} model.NewsletterSubscribeResponse
// @Failure 400 {object} errors.CustomError
// @Router /newsletter/subscribe [post]
func (s *RestHandler) SubscribeNewsletter(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.NewsletterSubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.NewsletterApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.NewsletterApp.Subscribe(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DispatchWelcome handles the consumer callback for welcome emails.
func (s *RestHandler) DispatchWelcome(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.NewsletterApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	if err := s.NewsletterApp.DispatchWelcome(ctx, id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, struct{}{})
}
