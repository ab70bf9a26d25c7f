package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"estatedesk/internal/services"
)

// PropertyHandler handles property-related requests.
type PropertyHandler struct {
	propertyService services.PropertyServicer
	auditService    services.AuditServicer
}

// NewPropertyHandler creates a new PropertyHandler.
func NewPropertyHandler(propertyService services.PropertyServicer, auditService services.AuditServicer) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService, auditService: auditService}
}

// OwnerRequest names the investor taking over a property.
type OwnerRequest struct {
	InvestorID *string `json:"investorId"`
}

// CreateProperty handles creating a property and its maintenance expense.
// @Summary     Create property
// @Description Create a property; its maintenance expense is area times the configured rate
// @Tags        properties
// @Accept      json
// @Produce     json
// @Param       request body services.PropertyInput true "Property details"
// @Success     201 {object} models.Property "Property created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Investor not found"
// @Router      /property/new [post]
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req services.PropertyInput
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	property, err := h.propertyService.CreateProperty(req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_PROPERTY", "property", property.ID, c.ClientIP(),
		map[string]any{"area": property.Area, "investor_id": property.InvestorID})

	c.JSON(http.StatusCreated, property)
}

// GetProperty handles retrieving a property.
// @Summary     Get property by ID
// @Tags        properties
// @Produce     json
// @Param       id path string true "Property ID"
// @Success     200 {object} models.Property "Property with owner and maintenance expense"
// @Failure     400 {object} ErrorResponse "Invalid property ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Property not found"
// @Router      /property/{id} [get]
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	property, err := h.propertyService.GetProperty(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, property)
}

// UpdateProperty handles a partial property update.
// @Summary     Update property
// @Tags        properties
// @Accept      json
// @Produce     json
// @Param       id      path string                       true "Property ID"
// @Param       request body services.PropertyUpdateInput true "Fields to change"
// @Success     200 {object} models.Property "Updated property"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Property not found"
// @Router      /property/update/{id} [patch]
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req services.PropertyUpdateInput
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	property, err := h.propertyService.UpdateProperty(c.Param("id"), req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_PROPERTY", "property", property.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, property)
}

// BuyProperty handles assigning a property to an investor.
// @Summary     Buy property
// @Tags        properties
// @Accept      json
// @Produce     json
// @Param       id      path string       true "Property ID"
// @Param       request body OwnerRequest true "Buying investor"
// @Success     200 {object} models.Property "Updated property"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Property or investor not found"
// @Router      /property/buy/{id} [patch]
func (h *PropertyHandler) BuyProperty(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req OwnerRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}
	investorID := ""
	if req.InvestorID != nil {
		investorID = *req.InvestorID
	}

	property, err := h.propertyService.BuyProperty(c.Param("id"), investorID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "BUY_PROPERTY", "property", property.ID, c.ClientIP(),
		map[string]any{"investor_id": investorID})

	c.JSON(http.StatusOK, property)
}

// SellProperty handles transferring a property to another investor, or
// releasing it when no investor is given.
// @Summary     Sell property
// @Tags        properties
// @Accept      json
// @Produce     json
// @Param       id      path string       true  "Property ID"
// @Param       request body OwnerRequest false "New owner, omitted to clear"
// @Success     200 {object} models.Property "Updated property"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Property or investor not found"
// @Router      /property/sell/{id} [patch]
func (h *PropertyHandler) SellProperty(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req OwnerRequest
	if c.Request.ContentLength != 0 {
		if err := bindJSON(c, &req); err != nil {
			respondWithError(c, err)
			return
		}
	}

	property, err := h.propertyService.SellProperty(c.Param("id"), req.InvestorID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "SELL_PROPERTY", "property", property.ID, c.ClientIP(),
		map[string]any{"investor_id": req.InvestorID})

	c.JSON(http.StatusOK, property)
}
