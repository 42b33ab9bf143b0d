package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/raghav2811/VendorConnect/internal/apierror"
	"github.com/raghav2811/VendorConnect/internal/dto"
	"github.com/raghav2811/VendorConnect/internal/model"
	"github.com/raghav2811/VendorConnect/internal/repository"
)

// VendorsHandler serves read-only vendor and menu listings. These are plain
// projections with no business rules, so they sit directly on repositories.
type VendorsHandler struct {
	vendors repository.VendorRepository
	menu    repository.MenuRepository
}

func NewVendorsHandler(vendors repository.VendorRepository, menu repository.MenuRepository) *VendorsHandler {
	return &VendorsHandler{vendors: vendors, menu: menu}
}

// List godoc
// @Summary List approved, active vendors
// @Tags vendors
// @Produce json
// @Success 200 {array} dto.VendorResponse
// @Router /v1/vendors [get]
func (h *VendorsHandler) List(c *gin.Context) {
	vendors, err := h.vendors.ListApproved(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list vendors"))
		return
	}

	resp := make([]dto.VendorResponse, 0, len(vendors))
	for i := range vendors {
		resp = append(resp, vendorToResponse(&vendors[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Get returns one vendor's public profile.
func (h *VendorsHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid vendor id"))
		return
	}

	vendor, err := h.vendors.FindByID(c.Request.Context(), id)
	if err != nil || !vendor.IsApproved || !vendor.IsActive {
		c.JSON(http.StatusNotFound, apierror.New("Vendor not found"))
		return
	}
	c.JSON(http.StatusOK, vendorToResponse(vendor))
}

// Menu godoc
// @Summary List a vendor's menu
// @Tags vendors
// @Produce json
// @Param id path string true "Vendor ID"
// @Success 200 {array} dto.MenuItemResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/vendors/{id}/menu [get]
func (h *VendorsHandler) Menu(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid vendor id"))
		return
	}

	vendor, err := h.vendors.FindByID(c.Request.Context(), id)
	if err != nil || !vendor.IsApproved || !vendor.IsActive {
		c.JSON(http.StatusNotFound, apierror.New("Vendor not found"))
		return
	}

	items, err := h.menu.List(c.Request.Context(), &id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list menu"))
		return
	}

	resp := make([]dto.MenuItemResponse, 0, len(items))
	for i := range items {
		resp = append(resp, menuItemToResponse(&items[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func vendorToResponse(v *model.Vendor) dto.VendorResponse {
	return dto.VendorResponse{
		ID:            v.ID.String(),
		Name:          v.Name,
		ContactPerson: v.ContactPerson,
		Phone:         v.Phone,
		Email:         v.Email,
		Address:       v.Address,
		BusinessType:  v.BusinessType,
		Description:   v.Description,
		IsActive:      v.IsActive,
		IsApproved:    v.IsApproved,
	}
}

func menuItemToResponse(m *model.MenuItem) dto.MenuItemResponse {
	return dto.MenuItemResponse{
		ID:              m.ID.String(),
		VendorID:        m.VendorID.String(),
		Name:            m.Name,
		Description:     m.Description,
		Price:           m.Price,
		Category:        m.Category,
		IsAvailable:     m.IsAvailable,
		PreparationTime: m.PreparationTime,
	}
}
