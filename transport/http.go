package transport

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	catalogapp "github.com/greenbasket/storefront/application/catalog"
	homeapp "github.com/greenbasket/storefront/application/home"
	newsletterapp "github.com/greenbasket/storefront/application/newsletter"
	profileapp "github.com/greenbasket/storefront/application/profile"
	shopperapp "github.com/greenbasket/storefront/application/shopper"
	userapp "github.com/greenbasket/storefront/application/user"
	"github.com/greenbasket/storefront/constant"
	"github.com/greenbasket/storefront/model"
	"github.com/greenbasket/storefront/utils/errors"
	validatorx "github.com/greenbasket/storefront/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp       userapp.UserApp
	HomeApp       homeapp.HomeApp
	CatalogApp    catalogapp.CatalogApp
	ProfileApp    profileapp.ProfileApp
	ShopperApp    shopperapp.ShopperApp
	NewsletterApp newsletterapp.NewsletterApp
}

func NewTransport(internalAPIKey string, rh *RestHandler) http.Handler {
	mux := mux.NewRouter()

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	mux.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/login", rh.Login).Methods(http.MethodPost)
	mux.HandleFunc("/home", rh.Home).Methods(http.MethodGet)
	mux.HandleFunc("/products/{id}", rh.ProductDetail).Methods(http.MethodGet)
	mux.HandleFunc("/testimonials", rh.Testimonials).Methods(http.MethodGet)
	mux.HandleFunc("/newsletter/subscribe", rh.SubscribeNewsletter).Methods(http.MethodPost)

	// Protected routes
	mux.HandleFunc("/logout", rh.Logout).Methods(http.MethodPost)
	mux.HandleFunc("/profile", rh.GetProfile).Methods(http.MethodGet)
	mux.HandleFunc("/profile", rh.UpdateProfile).Methods(http.MethodPut)
	mux.HandleFunc("/wishlist", rh.GetWishlist).Methods(http.MethodGet)
	mux.HandleFunc("/wishlist/{id}", rh.ToggleWishlist).Methods(http.MethodPost)
	mux.HandleFunc("/cart", rh.GetCart).Methods(http.MethodGet)
	mux.HandleFunc("/cart/{id}", rh.SetCartItem).Methods(http.MethodPut)

	// Internal routes (queue consumer callbacks)
	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/newsletter/{id}/welcome", rh.DispatchWelcome).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(rh.UserApp))

	return mux
}

// Register handler
// @Summary Register user
// @Description Register a new user
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.RegisterResponse
// @Failure 400 {object} errors.CustomError
// @Router /register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.UserApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.UserApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Login user
// @Description Login with email or phone and receive JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} errors.CustomError
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.UserApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.UserApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Logout handler
// @Summary Logout user
// @Description Revoke the current session
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response
// @Failure 401 {object} errors.CustomError
// @Router /logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		writeError(w, errors.SetCustomError(constant.ErrInvalidSession))
		return
	}

	if s.UserApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	if err := s.UserApp.Logout(ctx, strings.TrimPrefix(auth, "Bearer ")); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, struct{}{})
}
