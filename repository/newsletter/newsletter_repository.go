package newsletter

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/greenbasket/storefront/model"
)

type SQL struct {
	conn *sqlx.DB
}

type NewsletterRepository interface {
	Subscribe(ctx context.Context, email string) (uint64, error)
	GetByID(ctx context.Context, id uint64) (*model.NewsletterSubscriber, error)
	MarkWelcomed(ctx context.Context, id uint64) error
}

func NewNewsletterRepository(conn *sqlx.DB) NewsletterRepository {
	return &SQL{conn: conn}
}

const (
	// Duplicate signups are idempotent; the no-op update keeps LAST_INSERT_ID
	// pointing at the existing row.
	subscribeQuery = `INSERT INTO newsletter_subscriber (email, created_at) VALUES (?, NOW())
ON DUPLICATE KEY UPDATE id = LAST_INSERT_ID(id)`

	getSubscriberQuery = `SELECT id, email, created_at, welcomed_at FROM newsletter_subscriber WHERE id = ?`

	markWelcomedQuery = `UPDATE newsletter_subscriber SET welcomed_at = NOW() WHERE id = ?`
)

func (s *SQL) Subscribe(ctx context.Context, email string) (uint64, error) {
	result, err := s.conn.ExecContext(ctx, subscribeQuery, email)
	if err != nil {
		return 0, err
	}
	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(lastID), nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.NewsletterSubscriber, error) {
	var sub model.NewsletterSubscriber
	if err := s.conn.QueryRowxContext(ctx, getSubscriberQuery, id).StructScan(&sub); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (s *SQL) MarkWelcomed(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, markWelcomedQuery, id)
	return err
}
