// Command healthcheck probes GET /api/health of a locally running server and
// exits non-zero when it does not answer 200. It reads the same configuration
// as the server, which makes it usable as a container HEALTHCHECK.
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/MKhiriev/go-bootstrap/internal/config"
	httphandler "github.com/MKhiriev/go-bootstrap/internal/handler/http"
	"github.com/MKhiriev/go-bootstrap/internal/logger"
	"github.com/MKhiriev/go-bootstrap/internal/utils"
	"github.com/MKhiriev/go-bootstrap/models"
)

const probeTimeout = 5 * time.Second

var errUnhealthy = errors.New("unexpected health response")

func main() {
	log := logger.NewLogger("go-bootstrap-healthcheck")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err := probe(context.Background(), cfg.Server); err != nil {
		log.Error().Err(err).Msg("server is unhealthy")
		os.Exit(1)
	}
}

func probe(ctx context.Context, cfg config.Server) error {
	host := cfg.Host
	if host == "" {
		host = "localhost"
	}
	baseURL := "http://" + net.JoinHostPort(host, strconv.Itoa(cfg.Port))

	var body models.HealthResponse
	resp, err := utils.NewHTTPClient(baseURL, probeTimeout).R().
		SetContext(ctx).
		SetResult(&body).
		Get(httphandler.APIPrefix + "/health")
	if err != nil {
		return err
	}
	if resp.StatusCode() != http.StatusOK || body.Status != "ok" {
		return fmt.Errorf("%w: %d %s", errUnhealthy, resp.StatusCode(), resp.String())
	}
	return nil
}
