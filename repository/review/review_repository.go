package review

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/greenbasket/storefront/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ReviewRepository interface {
	ListByProduct(ctx context.Context, productID uint64) ([]model.Review, error)
	ListTestimonials(ctx context.Context, limit int) ([]model.Review, error)
}

func NewReviewRepository(conn *sqlx.DB) ReviewRepository {
	return &SQL{conn: conn}
}

const (
	reviewColumns = `r.id, r.product_id, r.user_id, r.rating, r.comment, r.created_at,
u.first_name, u.last_name, u.avatar_url`

	listByProductQuery = `SELECT ` + reviewColumns + `
FROM review r
JOIN user u ON r.user_id = u.id
WHERE r.product_id = ?
ORDER BY r.created_at DESC`

	listTestimonialsQuery = `SELECT ` + reviewColumns + `
FROM review r
JOIN user u ON r.user_id = u.id
WHERE r.comment IS NOT NULL AND r.comment != ''
ORDER BY r.rating DESC, r.created_at DESC
LIMIT ?`
)

type reviewRow struct {
	ID        uint64         `db:"id"`
	ProductID uint64         `db:"product_id"`
	UserID    uint64         `db:"user_id"`
	Rating    int            `db:"rating"`
	Comment   sql.NullString `db:"comment"`
	CreatedAt time.Time      `db:"created_at"`
	FirstName string         `db:"first_name"`
	LastName  string         `db:"last_name"`
	AvatarURL sql.NullString `db:"avatar_url"`
}

func (s *SQL) ListByProduct(ctx context.Context, productID uint64) ([]model.Review, error) {
	return s.listReviews(ctx, listByProductQuery, productID)
}

func (s *SQL) ListTestimonials(ctx context.Context, limit int) ([]model.Review, error) {
	return s.listReviews(ctx, listTestimonialsQuery, limit)
}

func (s *SQL) listReviews(ctx context.Context, query string, args ...any) ([]model.Review, error) {
	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]model.Review, 0)
	for rows.Next() {
		var row reviewRow
		if err := rows.StructScan(&row); err != nil {
			return nil, err
		}
		review := model.Review{
			ID:        row.ID,
			ProductID: row.ProductID,
			UserID:    row.UserID,
			Rating:    row.Rating,
			CreatedAt: row.CreatedAt,
			User: &model.ReviewUser{
				FirstName: row.FirstName,
				LastName:  row.LastName,
				AvatarURL: row.AvatarURL.String,
			},
		}
		if row.Comment.Valid {
			comment := row.Comment.String
			review.Comment = &comment
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}
