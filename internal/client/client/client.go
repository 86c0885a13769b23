package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/hotelbook/internal/client/models"
)

// APIClient is a cookie-keeping HTTP client for the hotelbook API.
type APIClient struct {
	baseURL string
	http    *http.Client
}

// NewAPIClient returns a client for the API rooted at baseURL. timeout
// bounds each request; zero means no limit.
func NewAPIClient(baseURL string, timeout time.Duration) (*APIClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid server url %q", baseURL)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Jar: jar, Timeout: timeout},
	}, nil
}

// do sends the request and decodes a 2xx JSON body into out (if non-nil).
func (c *APIClient) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, body)
	}

	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *APIClient) newJSONRequest(ctx context.Context, method, path string, in any) (*http.Request, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func (c *APIClient) call(ctx context.Context, method, path string, in, out any) error {
	req, err := c.newJSONRequest(ctx, method, path, in)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

// Register creates an account. On success the client is signed in.
func (c *APIClient) Register(ctx context.Context, r models.Registration) error {
	return c.call(ctx, http.MethodPost, "/api/users/register", r, nil)
}

// SignIn authenticates and returns the user id.
func (c *APIClient) SignIn(ctx context.Context, email, password string) (string, error) {
	in := map[string]string{"email": email, "password": password}
	var out struct {
		UserID string `json:"userId"`
	}
	if err := c.call(ctx, http.MethodPost, "/api/auth/login", in, &out); err != nil {
		return "", err
	}
	return out.UserID, nil
}

// ValidateToken returns the user id behind the current session cookie.
func (c *APIClient) ValidateToken(ctx context.Context) (string, error) {
	var out struct {
		UserID string `json:"userId"`
	}
	if err := c.call(ctx, http.MethodGet, "/api/auth/validate-token", nil, &out); err != nil {
		return "", err
	}
	return out.UserID, nil
}

// SignOut asks the server to clear the session cookie.
func (c *APIClient) SignOut(ctx context.Context) error {
	return c.call(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
}

// FetchMyHotels lists hotels owned by the signed-in user.
func (c *APIClient) FetchMyHotels(ctx context.Context) ([]models.Hotel, error) {
	var out []models.Hotel
	if err := c.call(ctx, http.MethodGet, "/api/my-hotels", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddMyHotel creates a hotel with the given images as a multipart upload.
func (c *APIClient) AddMyHotel(ctx context.Context, h models.HotelInput, images []models.ImageFile) (*models.Hotel, error) {
	body, contentType, err := hotelMultipart(h, images)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/my-hotels", body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)

	var out models.Hotel
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func hotelMultipart(h models.HotelInput, images []models.ImageFile) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := [][2]string{
		{"name", h.Name},
		{"city", h.City},
		{"country", h.Country},
		{"description", h.Description},
		{"type", h.Type},
		{"pricePerNight", strconv.FormatFloat(h.PricePerNight, 'f', -1, 64)},
		{"starRating", strconv.Itoa(h.StarRating)},
		{"adultCount", strconv.Itoa(h.AdultCount)},
		{"childCount", strconv.Itoa(h.ChildCount)},
	}
	for _, f := range h.Facilities {
		fields = append(fields, [2]string{"facilities", f})
	}
	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return nil, "", err
		}
	}

	for _, img := range images {
		part, err := w.CreateFormFile("imageFiles", img.Name)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(img.Data); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
