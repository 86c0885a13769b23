package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/hotelbook/internal/client/client"
	"github.com/dmitrijs2005/hotelbook/internal/client/config"
	"github.com/dmitrijs2005/hotelbook/internal/client/models"
)

// APIService is the subset of the API client the shell uses.
type APIService interface {
	Register(ctx context.Context, r models.Registration) error
	SignIn(ctx context.Context, email, password string) (string, error)
	ValidateToken(ctx context.Context) (string, error)
	SignOut(ctx context.Context) error
	AddMyHotel(ctx context.Context, h models.HotelInput, images []models.ImageFile) (*models.Hotel, error)
	FetchMyHotels(ctx context.Context) ([]models.Hotel, error)
}

type App struct {
	config *config.Config
	api    APIService
	reader *bufio.Reader
	out    io.Writer
	userID string
	email  string
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewAPIClient(c.ServerURL, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	return &App{config: c, api: apiClient, reader: bufio.NewReader(os.Stdin), out: os.Stdout}, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.userID != ""
}

func (a *App) setSession(userID, email string) {
	a.userID = userID
	a.email = email
}
