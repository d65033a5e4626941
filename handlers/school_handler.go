package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Anamitraroy22/school-management/models"
	"github.com/Anamitraroy22/school-management/store"
)

type SchoolHandler struct {
	store store.SchoolStore
}

func NewSchoolHandler(s store.SchoolStore) *SchoolHandler { return &SchoolHandler{store: s} }

type schoolPayload struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Contact string `json:"contact"`
	EmailID string `json:"email_id"`
	Image   string `json:"image"`
}

var (
	reEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	rePhone = regexp.MustCompile(`^[0-9]{10}$`)
)

func (p *schoolPayload) normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.Address = strings.TrimSpace(p.Address)
	p.City = strings.TrimSpace(p.City)
	p.State = strings.TrimSpace(p.State)
	p.Contact = models.DigitsOnly(p.Contact)
	p.EmailID = strings.TrimSpace(p.EmailID)
	p.Image = strings.TrimSpace(p.Image)
}

func (p *schoolPayload) complete() bool {
	return p.Name != "" && p.Address != "" && p.City != "" &&
		p.State != "" && p.Contact != "" && p.EmailID != ""
}

func (p *schoolPayload) toModel() models.School {
	s := models.School{
		Name:    p.Name,
		Address: p.Address,
		City:    p.City,
		State:   p.State,
		Contact: p.Contact,
		EmailID: p.EmailID,
	}
	if p.Image != "" {
		img := p.Image
		s.Image = &img
	}
	return s
}

// List handles GET /schools, newest-created first. The optional q
// parameter applies the same substring filter the list view uses.
func (h *SchoolHandler) List(c echo.Context) error {
	schools, err := h.store.ListAll()
	if err != nil {
		log.Printf("list schools: %v", err)
		return fail(c, http.StatusInternalServerError, "Failed to fetch schools")
	}
	schools = models.Filter(schools, c.QueryParam("q"))
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"schools": schools,
	})
}

// Get handles GET /schools/:id.
func (h *SchoolHandler) Get(c echo.Context) error {
	id, ok := parseID(c.Param("id"))
	if !ok {
		return fail(c, http.StatusBadRequest, "Valid school ID is required")
	}
	school, err := h.store.GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fail(c, http.StatusNotFound, "School not found")
		}
		log.Printf("get school %d: %v", id, err)
		return fail(c, http.StatusInternalServerError, "Failed to fetch school")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    school,
	})
}

// Create handles POST /schools.
func (h *SchoolHandler) Create(c echo.Context) error {
	var p schoolPayload
	if err := c.Bind(&p); err != nil {
		return fail(c, http.StatusBadRequest, "All required fields must be provided")
	}
	p.normalize()
	if !p.complete() {
		return fail(c, http.StatusBadRequest, "All required fields must be provided")
	}
	if !reEmail.MatchString(p.EmailID) {
		return fail(c, http.StatusBadRequest, "Invalid email address")
	}
	if !rePhone.MatchString(p.Contact) {
		return fail(c, http.StatusBadRequest, "Contact must be a valid 10-digit number")
	}

	school := p.toModel()
	if err := h.store.Insert(&school); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return fail(c, http.StatusConflict, "A school with this email already exists")
		}
		log.Printf("add school: %v", err)
		return fail(c, http.StatusInternalServerError, "Failed to add school")
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"message": "School added successfully",
		"school":  school,
	})
}

// Update handles PUT /schools/:id with full-replace semantics.
func (h *SchoolHandler) Update(c echo.Context) error {
	id, ok := parseID(c.Param("id"))
	if !ok {
		return fail(c, http.StatusBadRequest, "Valid school ID is required")
	}
	var p schoolPayload
	if err := c.Bind(&p); err != nil {
		return fail(c, http.StatusBadRequest, "All fields and ID are required for update")
	}
	p.normalize()
	if !p.complete() {
		return fail(c, http.StatusBadRequest, "All fields and ID are required for update")
	}
	if !reEmail.MatchString(p.EmailID) {
		return fail(c, http.StatusBadRequest, "Invalid email address format")
	}
	if !rePhone.MatchString(p.Contact) {
		return fail(c, http.StatusBadRequest, "Contact number must be a valid 10-digit number")
	}

	in := p.toModel()
	updated, err := h.store.Update(id, &in)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return fail(c, http.StatusNotFound, "School not found")
		case errors.Is(err, store.ErrDuplicateEmail):
			return fail(c, http.StatusConflict, "A school with this email already exists")
		}
		log.Printf("update school %d: %v", id, err)
		return fail(c, http.StatusInternalServerError, "Failed to update school")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "School updated successfully",
		"data":    updated,
	})
}

// Delete handles DELETE /schools/:id. Hard delete; ids are not reused.
func (h *SchoolHandler) Delete(c echo.Context) error {
	id, ok := parseID(c.Param("id"))
	if !ok {
		return fail(c, http.StatusBadRequest, "Valid school ID is required for deletion")
	}
	name, err := h.store.Delete(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fail(c, http.StatusNotFound, "School not found")
		}
		log.Printf("delete school %d: %v", id, err)
		return fail(c, http.StatusInternalServerError, "Failed to delete school")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": fmt.Sprintf(`School "%s" deleted successfully`, name),
	})
}
