package rest

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/hotelbook/internal/common"
	"github.com/dmitrijs2005/hotelbook/internal/server/models"
	"github.com/dmitrijs2005/hotelbook/internal/server/services"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
)

const (
	maxImages     = 6
	maxImageBytes = 5 << 20
	// room for six full images plus the text fields
	maxHotelBodyBytes = maxImages*maxImageBytes + 1<<20
)

type hotelForm struct {
	Name          string                  `form:"name" binding:"required" msg:"Name is required"`
	City          string                  `form:"city" binding:"required" msg:"City is required"`
	Country       string                  `form:"country" binding:"required" msg:"Country is required"`
	Description   string                  `form:"description" binding:"required" msg:"Description is required"`
	Type          string                  `form:"type" binding:"required" msg:"Type is required"`
	PricePerNight string                  `form:"pricePerNight" binding:"required,numeric" msg:"Price must be a number"`
	StarRating    string                  `form:"starRating" binding:"required,oneof=1 2 3 4 5" msg:"Star rating must be a number from 1 to 5"`
	AdultCount    string                  `form:"adultCount" binding:"required,number" msg:"Adult count must be a number"`
	ChildCount    string                  `form:"childCount" binding:"required,number" msg:"Child count must be a number"`
	Facilities    []string                `form:"facilities" binding:"required,min=1" msg:"Facilities must be an array"`
	ImageFiles    []*multipart.FileHeader `form:"imageFiles" binding:"max=6" msg:"At most 6 images are allowed"`
}

func (s *Server) createHotel(c *gin.Context) {
	if c.ContentType() != gin.MIMEMultipartPOSTForm {
		respondFormErrors(c, fieldErrors("body", "Request must be multipart/form-data"))
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxHotelBodyBytes)

	var form hotelForm
	err := c.ShouldBind(&form)
	if c.Request.MultipartForm != nil {
		defer c.Request.MultipartForm.RemoveAll()
	}
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"errors": fieldErrors("imageFiles", "Upload is too large").Fields})
			return
		}
		ve, ok := bindingErrors(&form, err)
		if !ok {
			ve = fieldErrors("body", "Malformed form data")
		}
		respondFormErrors(c, ve)
		return
	}

	hotel, ve := form.toHotel()
	images, imgErrs := readImages(form.ImageFiles)
	ve.Fields = append(ve.Fields, imgErrs.Fields...)
	if ve.OrNil() != nil {
		respondFormErrors(c, ve)
		return
	}

	created, err := s.hotels.Create(c.Request.Context(), userID(c), hotel, images)
	if err != nil {
		s.respondError(c, err, msgInternal)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (s *Server) listMyHotels(c *gin.Context) {
	hotels, err := s.hotels.ListByUser(c.Request.Context(), userID(c))
	if err != nil {
		s.respondError(c, err, "Error fetching hotels")
		return
	}
	if hotels == nil {
		hotels = []*models.Hotel{}
	}
	c.JSON(http.StatusOK, hotels)
}

func respondFormErrors(c *gin.Context, ve *common.ValidationError) {
	c.JSON(http.StatusBadRequest, gin.H{"errors": ve.Fields})
}

func fieldErrors(path, msg string) *common.ValidationError {
	ve := &common.ValidationError{}
	ve.Add(path, msg)
	return ve
}

// toHotel converts the already validated strings. Range checks the binding
// tags cannot express are reported in ve.
func (f *hotelForm) toHotel() (*models.Hotel, *common.ValidationError) {
	ve := &common.ValidationError{}

	price, err := strconv.ParseFloat(f.PricePerNight, 64)
	if err != nil || price < 0 {
		ve.Add("pricePerNight", "Price must be a number")
	}
	stars, _ := strconv.Atoi(f.StarRating)
	adults, ok := parseCount(f.AdultCount)
	if !ok {
		ve.Add("adultCount", "Adult count must be a number")
	}
	children, ok := parseCount(f.ChildCount)
	if !ok {
		ve.Add("childCount", "Child count must be a number")
	}

	facilities := make([]string, 0, len(f.Facilities))
	for _, v := range f.Facilities {
		if v = strings.TrimSpace(v); v != "" {
			facilities = append(facilities, v)
		}
	}
	if len(facilities) == 0 {
		ve.Add("facilities", "Facilities must be an array")
	}

	return &models.Hotel{
		Name:          strings.TrimSpace(f.Name),
		City:          strings.TrimSpace(f.City),
		Country:       strings.TrimSpace(f.Country),
		Description:   f.Description,
		Type:          strings.TrimSpace(f.Type),
		PricePerNight: price,
		StarRating:    stars,
		AdultCount:    adults,
		ChildCount:    children,
		Facilities:    facilities,
	}, ve
}

// parseCount accepts non-negative values that fit the INTEGER columns.
func parseCount(s string) (int, bool) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil || n < 0 {
		return 0, false
	}
	return int(n), true
}

// readImages loads every file into memory and checks its size and sniffed
// content type.
func readImages(files []*multipart.FileHeader) ([]services.Image, *common.ValidationError) {
	ve := &common.ValidationError{}
	images := make([]services.Image, 0, len(files))

	for _, fh := range files {
		if fh.Size > maxImageBytes {
			ve.Add("imageFiles", fmt.Sprintf("%s is larger than 5MB", fh.Filename))
			continue
		}

		data, err := readFile(fh)
		if err != nil {
			ve.Add("imageFiles", fmt.Sprintf("%s could not be read", fh.Filename))
			continue
		}

		mt := mimetype.Detect(data)
		if !strings.HasPrefix(mt.String(), "image/") {
			ve.Add("imageFiles", fmt.Sprintf("%s is not an image", fh.Filename))
			continue
		}

		images = append(images, services.Image{Name: fh.Filename, ContentType: mt.String(), Data: data})
	}

	return images, ve
}

func readFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, maxImageBytes+1))
}
