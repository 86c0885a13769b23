package hotels

import (
	"context"

	"github.com/dmitrijs2005/hotelbook/internal/server/models"
)

// Repository stores hotel listings.
type Repository interface {
	Create(ctx context.Context, hotel *models.Hotel) (*models.Hotel, error)
	ListByUserID(ctx context.Context, userID string) ([]*models.Hotel, error)
}
