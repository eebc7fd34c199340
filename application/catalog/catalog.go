package catalog

import (
	"context"
	"strconv"

	"github.com/greenbasket/storefront/cmd/config"
	"github.com/greenbasket/storefront/constant"
	"github.com/greenbasket/storefront/model"
	productrepo "github.com/greenbasket/storefront/repository/product"
	reviewrepo "github.com/greenbasket/storefront/repository/review"
	"github.com/greenbasket/storefront/utils/derive"
	"github.com/greenbasket/storefront/utils/errors"
	"github.com/greenbasket/storefront/utils/logger"
	"github.com/greenbasket/storefront/utils/placeholder"
	"go.uber.org/zap"
)

type CatalogApp interface {
	GetProductDetail(ctx context.Context, rawID string) (*model.ProductDetailResponse, error)
	ListTestimonials(ctx context.Context) ([]model.Review, error)
}

type catalogAppImpl struct {
	config      *config.Config
	productRepo productrepo.ProductRepository
	reviewRepo  reviewrepo.ReviewRepository
}

func NewCatalogApp(config *config.Config, productRepo productrepo.ProductRepository, reviewRepo reviewrepo.ReviewRepository) CatalogApp {
	return &catalogAppImpl{
		config:      config,
		productRepo: productRepo,
		reviewRepo:  reviewRepo,
	}
}

// GetProductDetail resolves the detail page view-model. The identifier must
// parse before any query runs. The primary fetch (product + category +
// reviews) is fatal on failure; the related-products fetch degrades to an
// empty list so the page still renders.
func (s *catalogAppImpl) GetProductDetail(ctx context.Context, rawID string) (*model.ProductDetailResponse, error) {
	id, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	detail, err := s.productRepo.GetDetail(ctx, id)
	if err != nil {
		logger.Error("[GetProductDetail] error productRepo.GetDetail", zap.Uint64("id", id), zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorWithMessage(constant.ErrDataFetch, "product: "+err.Error())
	}
	if detail == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	reviews, err := s.reviewRepo.ListByProduct(ctx, id)
	if err != nil {
		logger.Error("[GetProductDetail] error reviewRepo.ListByProduct", zap.Uint64("id", id), zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorWithMessage(constant.ErrDataFetch, "reviews: "+err.Error())
	}
	detail.Reviews = reviews

	// Related products are non-fatal: log and degrade to empty.
	related, err := s.productRepo.ListRelated(ctx, detail.CategoryID, detail.ID, s.config.Storefront.RelatedLimit)
	if err != nil {
		logger.Warn("[GetProductDetail] related products degraded", zap.Uint64("id", id), zap.String("error", err.Error()))
		related = []model.ProductCard{}
	}

	decorate(detail)
	for i := range related {
		card := &related[i]
		card.DisplayPrice = card.Price
		if card.DiscountPercentage != nil && *card.DiscountPercentage > 0 {
			price := card.Price
			card.DisplayPrice = derive.DiscountedPrice(price, *card.DiscountPercentage)
			card.OriginalPrice = &price
			card.Badge = derive.DiscountBadge(*card.DiscountPercentage)
		}
		card.ImageURL = placeholder.CardImage(card.ImageURL, card.Name)
	}

	return &model.ProductDetailResponse{
		Product: detail,
		Related: related,
	}, nil
}

func (s *catalogAppImpl) ListTestimonials(ctx context.Context) ([]model.Review, error) {
	reviews, err := s.reviewRepo.ListTestimonials(ctx, s.config.Storefront.TestimonialsLimit)
	if err != nil {
		logger.Error("[ListTestimonials] error reviewRepo.ListTestimonials", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return reviews, nil
}

func decorate(detail *model.ProductDetail) {
	detail.Gallery = placeholder.GalleryOfFour(detail.Name, detail.ImageURL, detail.AdditionalImages)

	detail.DisplayPrice = detail.Price
	if detail.DiscountPercentage != nil && *detail.DiscountPercentage > 0 {
		price := detail.Price
		detail.DisplayPrice = derive.DiscountedPrice(price, *detail.DiscountPercentage)
		detail.OriginalPrice = &price
		detail.Badge = derive.DiscountBadge(*detail.DiscountPercentage)
	}

	ratings := make([]int, 0, len(detail.Reviews))
	for _, r := range detail.Reviews {
		ratings = append(ratings, r.Rating)
	}
	detail.AverageRating = derive.AverageRating(ratings, detail.Rating)
}
