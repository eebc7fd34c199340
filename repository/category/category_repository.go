package category

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/greenbasket/storefront/model"
)

type SQL struct {
	conn *sqlx.DB
}

type CategoryRepository interface {
	ListWithProductCounts(ctx context.Context) ([]model.Category, error)
}

func NewCategoryRepository(conn *sqlx.DB) CategoryRepository {
	return &SQL{conn: conn}
}

// Product counts come from a real aggregate over the product table rather
// than a stored column, so the home page never shows stale counts.
const listCategoriesQuery = `SELECT c.id, c.name, c.description, c.image_url, COALESCE(COUNT(p.id), 0) as product_count
FROM category c
LEFT JOIN product p ON p.category_id = c.id
GROUP BY c.id, c.name, c.description, c.image_url
ORDER BY c.name`

func (s *SQL) ListWithProductCounts(ctx context.Context) ([]model.Category, error) {
	rows, err := s.conn.QueryxContext(ctx, listCategoriesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]model.Category, 0)
	for rows.Next() {
		var c model.Category
		if err := rows.StructScan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
