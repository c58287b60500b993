package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"blogview/app/middleware"
	"blogview/app/models"
	"blogview/app/repositories"
	"blogview/app/services"

	"github.com/gorilla/mux"
)

// CatalogController handles superuser management of categories and
// locations.
type CatalogController struct {
	catalogService *services.CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService *services.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// ListCategories handles listing every category, published or not
func (cc *CatalogController) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := cc.catalogService.ListCategories()
	if err != nil {
		sendError(w, "Failed to fetch categories: "+err.Error(), http.StatusInternalServerError)
		return
	}
	sendJSON(w, map[string]interface{}{"categories": categories})
}

// CreateCategory handles creating a category
func (cc *CatalogController) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var category models.Category
	if err := cc.parseCategory(r, &category); err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := cc.catalogService.CreateCategory(middleware.Viewer(r), &category); err != nil {
		cc.mutationError(w, r, err)
		return
	}
	sendJSON(w, category)
}

// UpdateCategory handles updating a category
func (cc *CatalogController) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["category_id"])
	if err != nil {
		sendError(w, "Category not found", http.StatusNotFound)
		return
	}

	var category models.Category
	if err := cc.parseCategory(r, &category); err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	category.ID = id

	if err := cc.catalogService.UpdateCategory(middleware.Viewer(r), &category); err != nil {
		cc.mutationError(w, r, err)
		return
	}
	sendJSON(w, category)
}

// ListLocations handles listing every location
func (cc *CatalogController) ListLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := cc.catalogService.ListLocations()
	if err != nil {
		sendError(w, "Failed to fetch locations: "+err.Error(), http.StatusInternalServerError)
		return
	}
	sendJSON(w, map[string]interface{}{"locations": locations})
}

// CreateLocation handles creating a location
func (cc *CatalogController) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var location models.Location
	if err := cc.parseLocation(r, &location); err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := cc.catalogService.CreateLocation(middleware.Viewer(r), &location); err != nil {
		cc.mutationError(w, r, err)
		return
	}
	sendJSON(w, location)
}

// UpdateLocation handles updating a location
func (cc *CatalogController) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["location_id"])
	if err != nil {
		sendError(w, "Location not found", http.StatusNotFound)
		return
	}

	var location models.Location
	if err := cc.parseLocation(r, &location); err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	location.ID = id

	if err := cc.catalogService.UpdateLocation(middleware.Viewer(r), &location); err != nil {
		cc.mutationError(w, r, err)
		return
	}
	sendJSON(w, location)
}

func (cc *CatalogController) parseCategory(r *http.Request, category *models.Category) error {
	if isJSONRequest(r) {
		if err := json.NewDecoder(r.Body).Decode(category); err != nil {
			return errors.New("invalid JSON: " + err.Error())
		}
		return nil
	}

	if err := r.ParseForm(); err != nil {
		return errors.New("failed to parse form: " + err.Error())
	}
	category.Title = r.FormValue("title")
	category.Description = r.FormValue("description")
	category.Slug = r.FormValue("slug")
	category.IsPublished = parseCheckbox(r.FormValue("is_published"))
	return nil
}

func (cc *CatalogController) parseLocation(r *http.Request, location *models.Location) error {
	if isJSONRequest(r) {
		if err := json.NewDecoder(r.Body).Decode(location); err != nil {
			return errors.New("invalid JSON: " + err.Error())
		}
		return nil
	}

	if err := r.ParseForm(); err != nil {
		return errors.New("failed to parse form: " + err.Error())
	}
	location.Name = r.FormValue("name")
	location.IsPublished = parseCheckbox(r.FormValue("is_published"))
	return nil
}

func (cc *CatalogController) mutationError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrUnauthenticated):
		http.Redirect(w, r, middleware.LoginURL, http.StatusSeeOther)
	case errors.Is(err, services.ErrSuperuserRequired):
		sendError(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, repositories.ErrNotFound):
		sendError(w, "Not found", http.StatusNotFound)
	default:
		sendError(w, err.Error(), http.StatusBadRequest)
	}
}
