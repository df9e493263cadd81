package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"

	"github.com/MKhiriev/go-bootstrap/internal/service"
	"github.com/MKhiriev/go-bootstrap/internal/utils"
	"github.com/MKhiriev/go-bootstrap/models"
)

func (rt *Routes) listItems(w http.ResponseWriter, r *http.Request) error {
	items, err := rt.services.ItemService.ListItems(r.Context())
	if err != nil {
		return respondError(w, err)
	}
	if items == nil {
		items = []models.Item{}
	}

	_, err = utils.WriteJSON(w, items, http.StatusOK)
	return err
}

func (rt *Routes) getItem(w http.ResponseWriter, r *http.Request) error {
	item, err := rt.services.ItemService.GetItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return respondError(w, err)
	}

	_, err = utils.WriteJSON(w, item, http.StatusOK)
	return err
}

func (rt *Routes) createItem(w http.ResponseWriter, r *http.Request) error {
	var req models.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return respondError(w, errors.Wrapf(service.ErrInvalidDataProvided, "decoding body: %v", err))
	}

	item, err := rt.services.ItemService.CreateItem(r.Context(), req)
	if err != nil {
		return respondError(w, err)
	}

	_, err = utils.WriteJSON(w, item, http.StatusCreated)
	return err
}
