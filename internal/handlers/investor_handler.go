package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"estatedesk/internal/pagination"
	"estatedesk/internal/services"
	"estatedesk/internal/softdelete"
)

// InvestorHandler handles investor-related requests.
type InvestorHandler struct {
	investorService services.InvestorServicer
	auditService    services.AuditServicer
}

// NewInvestorHandler creates a new InvestorHandler.
func NewInvestorHandler(investorService services.InvestorServicer, auditService services.AuditServicer) *InvestorHandler {
	return &InvestorHandler{investorService: investorService, auditService: auditService}
}

// ListInvestors handles listing active investors.
// @Summary     List investors
// @Description Get a page of active investors ordered by code, with investment count and mean ROI
// @Tags        investors
// @Produce     json
// @Param       page     query int false "Page number (default 1)"
// @Param       pageSize query int false "Items per page (default 50, max 100)"
// @Success     200 {object} map[string]pagination.PageResponse[services.InvestorSummary] "Investors"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /investor/list [get]
func (h *InvestorHandler) ListInvestors(c *gin.Context) {
	h.list(c, softdelete.Active)
}

// ListDeletedInvestors handles listing soft-deleted investors.
// @Summary     List deleted investors
// @Description Get a page of soft-deleted investors that can be restored
// @Tags        investors
// @Produce     json
// @Param       page     query int false "Page number (default 1)"
// @Param       pageSize query int false "Items per page (default 50, max 100)"
// @Success     200 {object} map[string]pagination.PageResponse[services.InvestorSummary] "Deleted investors"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /investor/recover [get]
func (h *InvestorHandler) ListDeletedInvestors(c *gin.Context) {
	h.list(c, softdelete.Deleted)
}

func (h *InvestorHandler) list(c *gin.Context, mode softdelete.Mode) {
	var page pagination.PageRequest
	if err := bindQuery(c, &page); err != nil {
		respondWithError(c, err)
		return
	}

	investors, err := h.investorService.ListInvestors(page, mode)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"investors": investors})
}

// CreateInvestor handles creating an investor.
// @Summary     Create investor
// @Tags        investors
// @Accept      json
// @Produce     json
// @Param       request body services.InvestorInput true "Investor details"
// @Success     201 {object} map[string]models.Investor "Investor created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /investor/new [post]
func (h *InvestorHandler) CreateInvestor(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req services.InvestorInput
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	investor, err := h.investorService.CreateInvestor(userID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_INVESTOR", "investor", investor.ID, c.ClientIP(),
		map[string]any{"code": investor.Code, "email": investor.Email})

	c.JSON(http.StatusCreated, gin.H{"investor": investor})
}

// GetInvestor handles retrieving an investor, deleted or not.
// @Summary     Get investor by ID
// @Description Get an investor with agents, active investments and relation counts
// @Tags        investors
// @Produce     json
// @Param       id path string true "Investor ID"
// @Success     200 {object} map[string]services.InvestorDetail "Investor details"
// @Failure     400 {object} ErrorResponse "Invalid investor ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Investor not found"
// @Router      /investor/{id} [get]
func (h *InvestorHandler) GetInvestor(c *gin.Context) {
	investor, err := h.investorService.GetInvestorByID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"investor": investor})
}

// UpdateInvestor handles a partial investor update.
// @Summary     Update investor
// @Tags        investors
// @Accept      json
// @Produce     json
// @Param       id      path string                        true "Investor ID"
// @Param       request body services.InvestorUpdateInput  true "Fields to change"
// @Success     200 {object} map[string]models.Investor "Updated investor"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Investor not found"
// @Router      /investor/{id} [patch]
func (h *InvestorHandler) UpdateInvestor(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req services.InvestorUpdateInput
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	investor, err := h.investorService.UpdateInvestor(c.Param("id"), userID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_INVESTOR", "investor", investor.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"investor": investor})
}

// DeleteInvestor handles deleting an investor.
// @Summary     Delete investor
// @Description Soft-delete an investor, or remove it permanently with hard=true
// @Tags        investors
// @Produce     json
// @Param       id   path  string true  "Investor ID"
// @Param       hard query bool   false "Delete permanently"
// @Success     200 {object} MessageResponse "Investor deleted"
// @Failure     400 {object} ErrorResponse "Invalid investor ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Investor not found"
// @Router      /investor/{id} [delete]
func (h *InvestorHandler) DeleteInvestor(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id := c.Param("id")
	hard := queryBool(c, "hard")
	if err := h.investorService.DeleteInvestor(id, hard); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_INVESTOR", "investor", id, c.ClientIP(), map[string]any{"hard": hard})

	c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "Investor deleted successfully"})
}

// RestoreInvestor handles restoring a soft-deleted investor.
// @Summary     Restore investor
// @Tags        investors
// @Produce     json
// @Param       id path string true "Investor ID"
// @Success     200 {object} map[string]models.Investor "Restored investor"
// @Failure     400 {object} ErrorResponse "Invalid investor ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Deleted investor not found"
// @Router      /investor/restore/{id} [patch]
func (h *InvestorHandler) RestoreInvestor(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	investor, err := h.investorService.RestoreInvestor(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "RESTORE_INVESTOR", "investor", investor.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"investor": investor})
}
