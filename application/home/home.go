package home

import (
	"context"
	"strings"
	"sync"

	"github.com/greenbasket/storefront/cmd/config"
	"github.com/greenbasket/storefront/constant"
	"github.com/greenbasket/storefront/model"
	categoryrepo "github.com/greenbasket/storefront/repository/category"
	productrepo "github.com/greenbasket/storefront/repository/product"
	"github.com/greenbasket/storefront/utils/derive"
	"github.com/greenbasket/storefront/utils/errors"
	"github.com/greenbasket/storefront/utils/logger"
	"github.com/greenbasket/storefront/utils/placeholder"
	"go.uber.org/zap"
)

type HomeApp interface {
	GetHomeViewModel(ctx context.Context) (*model.HomeViewModel, error)
}

type homeAppImpl struct {
	config       *config.Config
	productRepo  productrepo.ProductRepository
	categoryRepo categoryrepo.CategoryRepository
}

func NewHomeApp(config *config.Config, productRepo productrepo.ProductRepository, categoryRepo categoryrepo.CategoryRepository) HomeApp {
	return &homeAppImpl{
		config:       config,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// GetHomeViewModel issues the four home queries concurrently and waits for
// the full set. Every branch is inspected; any failure folds into a single
// composite error in the fixed order featured, newest, categories, best
// sellers, and the whole aggregate fails. No partial view-model, no retries.
func (s *homeAppImpl) GetHomeViewModel(ctx context.Context) (*model.HomeViewModel, error) {
	var (
		featured, newest, bestSellers               []model.ProductCard
		categories                                  []model.Category
		errFeatured, errNewest, errCategories, errBest error
	)

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		featured, errFeatured = s.productRepo.ListFeatured(ctx, s.config.Storefront.FeaturedLimit)
	}()
	go func() {
		defer wg.Done()
		newest, errNewest = s.productRepo.ListNewest(ctx, s.config.Storefront.NewestLimit)
	}()
	go func() {
		defer wg.Done()
		categories, errCategories = s.categoryRepo.ListWithProductCounts(ctx)
	}()
	go func() {
		defer wg.Done()
		bestSellers, errBest = s.productRepo.ListBestSellers(ctx, s.config.Storefront.BestSellersLimit)
	}()
	wg.Wait()

	branches := []struct {
		name string
		err  error
	}{
		{"featured products", errFeatured},
		{"newest products", errNewest},
		{"categories", errCategories},
		{"best sellers", errBest},
	}
	var failures []string
	for _, b := range branches {
		if b.err != nil {
			logger.Error("[GetHomeViewModel] branch failed", zap.String("branch", b.name), zap.String("error", b.err.Error()))
			failures = append(failures, b.name+": "+b.err.Error())
		}
	}
	if len(failures) > 0 {
		return nil, errors.SetCustomErrorWithMessage(constant.ErrDataFetch, strings.Join(failures, "; "))
	}

	return &model.HomeViewModel{
		Featured:    decorateCards(featured),
		Newest:      decorateCards(newest),
		Categories:  decorateCategories(categories),
		BestSellers: decorateCards(bestSellers),
	}, nil
}

// decorateCards fills the display-only fields: discounted price, badge, and
// a placeholder image when the stored URL is empty.
func decorateCards(cards []model.ProductCard) []model.ProductCard {
	for i := range cards {
		card := &cards[i]
		card.DisplayPrice = card.Price
		if card.DiscountPercentage != nil && *card.DiscountPercentage > 0 {
			price := card.Price
			card.DisplayPrice = derive.DiscountedPrice(price, *card.DiscountPercentage)
			card.OriginalPrice = &price
			card.Badge = derive.DiscountBadge(*card.DiscountPercentage)
		}
		card.ImageURL = placeholder.CardImage(card.ImageURL, card.Name)
	}
	return cards
}

// decorateCategories fills the initial-letter avatar for categories without
// an image.
func decorateCategories(categories []model.Category) []model.Category {
	for i := range categories {
		c := &categories[i]
		if c.ImageURL == nil || *c.ImageURL == "" {
			c.Initial = derive.Initial(c.Name)
			c.AvatarColor = derive.AvatarColor(c.ID)
		}
	}
	return categories
}
