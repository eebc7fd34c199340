package profile

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

type ProfileRepository interface {
	Get(ctx context.Context, userID uint64) (*model.Profile, error)
	Upsert(ctx context.Context, p *model.Profile) error
}

func NewProfileRepository(conn *sqlx.DB) ProfileRepository {
	return &SQL{conn: conn}
}

const (
	getProfileQuery = `SELECT user_id, first_name, last_name, phone, avatar_url, bio, birth_date, gender, occupation,
address, website, social_links, privacy_level, updated_at
FROM profile WHERE user_id = ?`

	upsertProfileQuery = `INSERT INTO profile
(user_id, first_name, last_name, phone, avatar_url, bio, birth_date, gender, occupation, address, website, social_links, privacy_level, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())
ON DUPLICATE KEY UPDATE
first_name = VALUES(first_name), last_name = VALUES(last_name), phone = VALUES(phone), avatar_url = VALUES(avatar_url),
bio = VALUES(bio), birth_date = VALUES(birth_date), gender = VALUES(gender), occupation = VALUES(occupation),
address = VALUES(address), website = VALUES(website), social_links = VALUES(social_links),
privacy_level = VALUES(privacy_level), updated_at = NOW()`
)

type profileRow struct {
	UserID       uint64         `db:"user_id"`
	FirstName    sql.NullString `db:"first_name"`
	LastName     sql.NullString `db:"last_name"`
	Phone        sql.NullString `db:"phone"`
	AvatarURL    sql.NullString `db:"avatar_url"`
	Bio          sql.NullString `db:"bio"`
	BirthDate    sql.NullString `db:"birth_date"`
	Gender       sql.NullString `db:"gender"`
	Occupation   sql.NullString `db:"occupation"`
	Address      sql.NullString `db:"address"`
	Website      sql.NullString `db:"website"`
	SocialLinks  sql.NullString `db:"social_links"`
	PrivacyLevel sql.NullString `db:"privacy_level"`
	UpdatedAt    *time.Time     `db:"updated_at"`
}

func (s *SQL) Get(ctx context.Context, userID uint64) (*model.Profile, error) {
	var row profileRow
	if err := s.conn.QueryRowxContext(ctx, getProfileQuery, userID).StructScan(&row); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	p := &model.Profile{
		UserID:       row.UserID,
		FirstName:    row.FirstName.String,
		LastName:     row.LastName.String,
		Phone:        row.Phone.String,
		AvatarURL:    row.AvatarURL.String,
		Bio:          row.Bio.String,
		BirthDate:    row.BirthDate.String,
		Gender:       row.Gender.String,
		Occupation:   row.Occupation.String,
		Website:      row.Website.String,
		PrivacyLevel: row.PrivacyLevel.String,
		UpdatedAt:    row.UpdatedAt,
	}
	decodeJSONColumn(row.Address, &p.Address)
	decodeJSONColumn(row.SocialLinks, &p.SocialLinks)
	return p, nil
}

func (s *SQL) Upsert(ctx context.Context, p *model.Profile) error {
	address, err := json.Marshal(p.Address)
	if err != nil {
		return err
	}
	socialLinks, err := json.Marshal(p.SocialLinks)
	if err != nil {
		return err
	}

	_, err = s.conn.ExecContext(ctx, upsertProfileQuery,
		p.UserID, p.FirstName, p.LastName, p.Phone, p.AvatarURL, p.Bio, p.BirthDate,
		p.Gender, p.Occupation, string(address), p.Website, string(socialLinks), p.PrivacyLevel,
	)
	return err
}

// decodeJSONColumn leaves dst at its zero value when the column is NULL or
// holds malformed JSON.
func decodeJSONColumn(raw sql.NullString, dst any) {
	if !raw.Valid || raw.String == "" {
		return
	}
	_ = json.Unmarshal([]byte(raw.String), dst)
}
