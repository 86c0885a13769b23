package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/hotelbook/internal/client/models"
)

const maxImages = 6

// readFile is a test seam for os.ReadFile.
var readFile = os.ReadFile

// AddHotel prompts for the listing fields and image paths and uploads them.
func (a *App) AddHotel(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errors.New("not logged in")
	}

	var h models.HotelInput
	var err error

	text := []struct {
		prompt string
		dst    *string
	}{
		{"Name", &h.Name},
		{"City", &h.City},
		{"Country", &h.Country},
		{"Type", &h.Type},
	}
	for _, f := range text {
		if *f.dst, err = GetSimpleText(a.reader, f.prompt, a.out); err != nil {
			return err
		}
	}

	if h.Description, err = GetMultiline(a.reader, "Description", a.out); err != nil {
		return err
	}
	if h.PricePerNight, err = GetFloat(a.reader, "Price per night", a.out); err != nil {
		return err
	}
	if h.StarRating, err = GetInt(a.reader, "Star rating (1-5)", a.out); err != nil {
		return err
	}
	if h.AdultCount, err = GetInt(a.reader, "Adult count", a.out); err != nil {
		return err
	}
	if h.ChildCount, err = GetInt(a.reader, "Child count", a.out); err != nil {
		return err
	}
	if h.Facilities, err = GetList(a.reader, "Facilities", a.out); err != nil {
		return err
	}

	paths, err := GetList(a.reader, fmt.Sprintf("Image file paths, up to %d", maxImages), a.out)
	if err != nil {
		return err
	}
	if len(paths) > maxImages {
		return fmt.Errorf("at most %d images are allowed", maxImages)
	}

	images := make([]models.ImageFile, 0, len(paths))
	for _, p := range paths {
		data, err := readFile(p)
		if err != nil {
			return fmt.Errorf("read image: %w", err)
		}
		images = append(images, models.ImageFile{Name: filepath.Base(p), Data: data})
	}

	created, err := a.api.AddMyHotel(ctx, h, images)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Hotel %s created with %d image(s)\n", created.ID, len(created.ImageURLs))
	return nil
}

// ListHotels prints the signed-in user's hotels, newest first.
func (a *App) ListHotels(ctx context.Context) error {
	hotels, err := a.api.FetchMyHotels(ctx)
	if err != nil {
		return err
	}

	if len(hotels) == 0 {
		fmt.Fprintln(a.out, "No hotels yet")
		return nil
	}

	for _, h := range hotels {
		fmt.Fprintf(a.out, "%s  %s, %s, %s  %d*  %.2f/night  [%s]\n",
			h.ID, h.Name, h.City, h.Country, h.StarRating, h.PricePerNight, strings.Join(h.Facilities, ", "))
	}
	return nil
}
