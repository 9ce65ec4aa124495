package api

import (
	"context"
	"errors"
	"github.com/skybi/tinsig/internal/api/data"
	"github.com/skybi/tinsig/internal/config"
	"github.com/skybi/tinsig/internal/metrics"
	"github.com/skybi/tinsig/internal/storage"
	"net/http"
)

// Service represents the API service
type Service struct {
	Config  *config.Config
	Storage storage.Driver
	Metrics *metrics.Metrics
	data    *data.Service
}

// Startup builds the data API and serves it in the background; unexpected serving errors are sent to errs.
// The server exists once Startup returns, so a subsequent Shutdown always stops it.
func (service *Service) Startup(errs chan<- error) error {
	dataService := &data.Service{
		Config:  service.Config,
		Storage: service.Storage,
		Metrics: service.Metrics,
	}
	if err := dataService.Init(); err != nil {
		return err
	}
	service.data = dataService
	go func() {
		if err := dataService.Startup(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
	}()
	return nil
}

// Shutdown gracefully shuts down the data API, waiting at most the configured shutdown timeout
func (service *Service) Shutdown() error {
	if service.data == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), service.Config.ShutdownTimeout)
	defer cancel()
	err := service.data.Shutdown(ctx)
	service.data = nil
	return err
}
