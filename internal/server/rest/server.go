// Package rest exposes the hotelbook API over HTTP using gin.
package rest

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/hotelbook/internal/logging"
	"github.com/dmitrijs2005/hotelbook/internal/server/config"
	"github.com/dmitrijs2005/hotelbook/internal/server/models"
	"github.com/dmitrijs2005/hotelbook/internal/server/services"
	"github.com/gin-gonic/gin"
)

// UserService is the account and token logic the auth handlers call.
type UserService interface {
	Register(ctx context.Context, in services.RegisterInput) (*services.Session, error)
	Login(ctx context.Context, email, password string) (*services.Session, error)
	ValidateToken(token string) (string, error)
	TokenValidity() time.Duration
}

// HotelService is the listing logic behind /api/my-hotels.
type HotelService interface {
	Create(ctx context.Context, userID string, hotel *models.Hotel, images []services.Image) (*models.Hotel, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Hotel, error)
}

type Server struct {
	config *config.Config
	logger logging.Logger
	users  UserService
	hotels HotelService
	engine *gin.Engine
}

func NewServer(c *config.Config, l logging.Logger, us UserService, hs HotelService) *Server {
	s := &Server{
		config: c,
		logger: l.With("module", "http_server"),
		users:  us,
		hotels: hs,
	}
	s.engine = s.routes()
	return s
}

// Handler returns the router, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down within
// config.ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.config.EndpointAddrHTTP)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())
		if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
		close(errs)
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "Stopping HTTP server...")

	timeout := s.config.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errs
}
