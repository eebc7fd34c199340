package product

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/greenbasket/storefront/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ProductRepository interface {
	ListFeatured(ctx context.Context, limit int) ([]model.ProductCard, error)
	ListNewest(ctx context.Context, limit int) ([]model.ProductCard, error)
	ListBestSellers(ctx context.Context, limit int) ([]model.ProductCard, error)
	ListRelated(ctx context.Context, categoryID, excludeID uint64, limit int) ([]model.ProductCard, error)
	GetDetail(ctx context.Context, id uint64) (*model.ProductDetail, error)
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

const (
	cardColumns = `p.id, p.name, p.price, p.image_url, p.category_id, p.stock, p.rating, p.discount_percentage, p.sales_count`

	listFeaturedQuery = `SELECT ` + cardColumns + ` FROM product p WHERE p.is_featured = true ORDER BY p.id LIMIT ?`

	listNewestQuery = `SELECT ` + cardColumns + ` FROM product p ORDER BY p.created_at DESC LIMIT ?`

	listBestSellersQuery = `SELECT ` + cardColumns + ` FROM product p ORDER BY p.sales_count DESC LIMIT ?`

	listRelatedQuery = `SELECT ` + cardColumns + ` FROM product p WHERE p.category_id = ? AND p.id != ? ORDER BY p.sales_count DESC LIMIT ?`

	getDetailQuery = `SELECT p.id, p.name, p.price, p.description, p.image_url, p.additional_images, p.category_id, p.stock,
p.is_featured, p.rating, p.discount_percentage, p.harvest_date, p.region, p.is_organic, p.tags, p.sales_count, p.created_at,
c.id as c_id, c.name as c_name
FROM product p
JOIN category c ON p.category_id = c.id
WHERE p.id = ?`
)

func (s *SQL) ListFeatured(ctx context.Context, limit int) ([]model.ProductCard, error) {
	return s.listCards(ctx, listFeaturedQuery, limit)
}

func (s *SQL) ListNewest(ctx context.Context, limit int) ([]model.ProductCard, error) {
	return s.listCards(ctx, listNewestQuery, limit)
}

func (s *SQL) ListBestSellers(ctx context.Context, limit int) ([]model.ProductCard, error) {
	return s.listCards(ctx, listBestSellersQuery, limit)
}

func (s *SQL) ListRelated(ctx context.Context, categoryID, excludeID uint64, limit int) ([]model.ProductCard, error) {
	return s.listCards(ctx, listRelatedQuery, categoryID, excludeID, limit)
}

func (s *SQL) listCards(ctx context.Context, query string, args ...any) ([]model.ProductCard, error) {
	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cards := make([]model.ProductCard, 0)
	for rows.Next() {
		var c model.ProductCard
		if err := rows.StructScan(&c); err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

// detailRow scans the raw detail columns; JSON columns land as nullable
// strings and are decoded into the model with empty defaults.
type detailRow struct {
	ID                 uint64         `db:"id"`
	Name               string         `db:"name"`
	Price              float64        `db:"price"`
	Description        sql.NullString `db:"description"`
	ImageURL           sql.NullString `db:"image_url"`
	AdditionalImages   sql.NullString `db:"additional_images"`
	CategoryID         uint64         `db:"category_id"`
	Stock              int64          `db:"stock"`
	IsFeatured         bool           `db:"is_featured"`
	Rating             *float64       `db:"rating"`
	DiscountPercentage *float64       `db:"discount_percentage"`
	HarvestDate        *time.Time     `db:"harvest_date"`
	Region             *string        `db:"region"`
	IsOrganic          *bool          `db:"is_organic"`
	Tags               sql.NullString `db:"tags"`
	SalesCount         int64          `db:"sales_count"`
	CreatedAt          time.Time      `db:"created_at"`
	CategoryRowID      uint64         `db:"c_id"`
	CategoryName       string         `db:"c_name"`
}

func (s *SQL) GetDetail(ctx context.Context, id uint64) (*model.ProductDetail, error) {
	var row detailRow
	if err := s.conn.QueryRowxContext(ctx, getDetailQuery, id).StructScan(&row); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	detail := &model.ProductDetail{
		ID:                 row.ID,
		Name:               row.Name,
		Price:              row.Price,
		Description:        row.Description.String,
		ImageURL:           row.ImageURL.String,
		AdditionalImages:   decodeStringList(row.AdditionalImages),
		CategoryID:         row.CategoryID,
		Stock:              row.Stock,
		IsFeatured:         row.IsFeatured,
		Rating:             row.Rating,
		DiscountPercentage: row.DiscountPercentage,
		HarvestDate:        row.HarvestDate,
		Region:             row.Region,
		IsOrganic:          row.IsOrganic,
		Tags:               decodeStringList(row.Tags),
		SalesCount:         row.SalesCount,
		CreatedAt:          row.CreatedAt,
		Category: &model.CategorySummary{
			ID:   row.CategoryRowID,
			Name: row.CategoryName,
		},
	}
	return detail, nil
}

// decodeStringList decodes a JSON array column, substituting an empty list
// for NULL or malformed content instead of propagating the error.
func decodeStringList(raw sql.NullString) []string {
	if !raw.Valid || raw.String == "" {
		return []string{}
	}
	var list []string
	if err := json.Unmarshal([]byte(raw.String), &list); err != nil {
		return []string{}
	}
	return list
}
