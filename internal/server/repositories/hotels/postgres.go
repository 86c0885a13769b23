// Package hotels persists hotel listings in PostgreSQL. List-valued fields
// are kept in JSONB columns.
package hotels

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/hotelbook/internal/dbx"
	"github.com/dmitrijs2005/hotelbook/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, hotel *models.Hotel) (*models.Hotel, error) {
	facilities, err := encodeList(hotel.Facilities)
	if err != nil {
		return nil, err
	}
	images, err := encodeList(hotel.ImageURLs)
	if err != nil {
		return nil, err
	}

	query :=
		`INSERT INTO hotels (user_id, name, city, country, description, type,
		                     adult_count, child_count, facilities, price_per_night, star_rating, image_urls)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING id, last_updated
		 `

	err = r.db.QueryRowContext(ctx, query,
		hotel.UserID, hotel.Name, hotel.City, hotel.Country, hotel.Description, hotel.Type,
		hotel.AdultCount, hotel.ChildCount, facilities, hotel.PricePerNight, hotel.StarRating, images,
	).Scan(&hotel.ID, &hotel.LastUpdated)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return hotel, nil
}

// ListByUserID returns the user's hotels, most recently updated first. The
// result is empty, never nil, when there are none.
func (r *PostgresRepository) ListByUserID(ctx context.Context, userID string) ([]*models.Hotel, error) {
	query :=
		`SELECT id, user_id, name, city, country, description, type,
		        adult_count, child_count, facilities, price_per_night, star_rating, image_urls, last_updated
		 FROM hotels
		 WHERE user_id = $1
		 ORDER BY last_updated DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Hotel, 0)
	for rows.Next() {
		h := &models.Hotel{}
		var facilities, images []byte
		if err := rows.Scan(&h.ID, &h.UserID, &h.Name, &h.City, &h.Country, &h.Description, &h.Type,
			&h.AdultCount, &h.ChildCount, &facilities, &h.PricePerNight, &h.StarRating, &images, &h.LastUpdated); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if h.Facilities, err = decodeList(facilities); err != nil {
			return nil, err
		}
		if h.ImageURLs, err = decodeList(images); err != nil {
			return nil, err
		}
		result = append(result, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func encodeList(v []string) ([]byte, error) {
	if v == nil {
		v = []string{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode list: %w", err)
	}
	return b, nil
}

func decodeList(b []byte) ([]string, error) {
	out := []string{}
	if len(b) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	return out, nil
}
