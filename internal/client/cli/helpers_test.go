package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/dmitrijs2005/hotelbook/internal/client/client"
	"github.com/dmitrijs2005/hotelbook/internal/client/config"
	"github.com/dmitrijs2005/hotelbook/internal/client/models"
)

type fakeAPI struct {
	loggedIn  bool
	signInErr error
	addErr    error

	registered models.Registration
	added      models.HotelInput
	images     []models.ImageFile
	hotels     []models.Hotel
	signOuts   int
}

func (f *fakeAPI) Register(ctx context.Context, r models.Registration) error {
	f.registered = r
	f.loggedIn = true
	return nil
}

func (f *fakeAPI) SignIn(ctx context.Context, email, password string) (string, error) {
	if f.signInErr != nil {
		return "", f.signInErr
	}
	f.loggedIn = true
	return "u1", nil
}

func (f *fakeAPI) ValidateToken(ctx context.Context) (string, error) {
	if !f.loggedIn {
		return "", client.ErrUnauthorized
	}
	return "u1", nil
}

func (f *fakeAPI) SignOut(ctx context.Context) error {
	f.signOuts++
	f.loggedIn = false
	return nil
}

func (f *fakeAPI) AddMyHotel(ctx context.Context, h models.HotelInput, images []models.ImageFile) (*models.Hotel, error) {
	if f.addErr != nil {
		return nil, f.addErr
	}
	f.added = h
	f.images = images
	return &models.Hotel{ID: "h1", Name: h.Name, ImageURLs: make([]string, len(images))}, nil
}

func (f *fakeAPI) FetchMyHotels(ctx context.Context) ([]models.Hotel, error) {
	if !f.loggedIn {
		return nil, client.ErrUnauthorized
	}
	return f.hotels, nil
}

// newTestApp returns an App reading input and the output buffer it writes to.
func newTestApp(api *fakeAPI, input string) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return &App{
		config: &config.Config{ServerURL: "http://test"},
		api:    api,
		reader: bufio.NewReader(strings.NewReader(input)),
		out:    &out,
	}, &out
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	old := readPassword
	readPassword = func(int) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { readPassword = old })
}
