package api

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/MKhiriev/go-bootstrap/internal/utils"
	"github.com/MKhiriev/go-bootstrap/models"
)

func (rt *Routes) health(w http.ResponseWriter, r *http.Request) error {
	_, err := utils.WriteJSON(w, models.HealthResponse{Status: "ok"}, http.StatusOK)
	return err
}

func (rt *Routes) version(w http.ResponseWriter, r *http.Request) error {
	info := rt.services.AppInfoService
	resp := models.VersionResponse{
		Version: info.GetAppVersion(r.Context()),
		Env:     info.GetAppEnv(r.Context()),
	}

	_, err := utils.WriteJSON(w, resp, http.StatusOK)
	return err
}

// boom fails on purpose. ?panic=1 panics instead of returning the error.
func boom(w http.ResponseWriter, r *http.Request) error {
	if r.URL.Query().Get("panic") != "" {
		panic("boom")
	}
	return errors.New("boom")
}
