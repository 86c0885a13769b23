package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/hotelbook/internal/server/models"
	"github.com/dmitrijs2005/hotelbook/internal/server/repositories/repomanager"
	"golang.org/x/sync/errgroup"
)

// maxParallelUploads bounds concurrent PutObject calls per request.
const maxParallelUploads = 3

type HotelService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	images      ImageStore
}

func NewHotelService(db *sql.DB, m repomanager.RepositoryManager, images ImageStore) *HotelService {
	return &HotelService{db: db, repomanager: m, images: images}
}

// Create uploads images and stores hotel owned by userID. ImageURLs follow
// the order of images. The first failed upload cancels the rest and nothing
// is stored.
func (s *HotelService) Create(ctx context.Context, userID string, hotel *models.Hotel, images []Image) (*models.Hotel, error) {
	urls, err := s.uploadAll(ctx, userID, images)
	if err != nil {
		return nil, err
	}

	hotel.UserID = userID
	hotel.ImageURLs = urls

	created, err := s.repomanager.Hotels(s.db).Create(ctx, hotel)
	if err != nil {
		return nil, fmt.Errorf("error creating hotel: %w", err)
	}
	return created, nil
}

// ListByUser returns the hotels owned by userID.
func (s *HotelService) ListByUser(ctx context.Context, userID string) ([]*models.Hotel, error) {
	hotels, err := s.repomanager.Hotels(s.db).ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing hotels: %w", err)
	}
	return hotels, nil
}

func (s *HotelService) uploadAll(ctx context.Context, userID string, images []Image) ([]string, error) {
	urls := make([]string, len(images))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelUploads)

	for i, img := range images {
		g.Go(func() error {
			url, err := s.images.Upload(gctx, userID, img)
			if err != nil {
				return fmt.Errorf("error uploading image %d: %w", i, err)
			}
			urls[i] = url
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}
