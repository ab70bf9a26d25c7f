package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"estatedesk/internal/services"
)

// InvestmentHandler handles investment-related requests.
type InvestmentHandler struct {
	investmentService services.InvestmentServicer
	auditService      services.AuditServicer
}

// NewInvestmentHandler creates a new InvestmentHandler.
func NewInvestmentHandler(investmentService services.InvestmentServicer, auditService services.AuditServicer) *InvestmentHandler {
	return &InvestmentHandler{investmentService: investmentService, auditService: auditService}
}

// ListInvestments handles listing investments.
// @Summary     List investments
// @Description List investments filtered by date range, type and investor. Matured investments are redeemed on read.
// @Tags        investments
// @Produce     json
// @Param       startDate      query string false "Start date (YYYY-MM-DD)"
// @Param       endDate        query string false "End date (YYYY-MM-DD)"
// @Param       dateFilterType query string false "Date column" Enums(createdAt, redemptionDate)
// @Param       type           query string false "Investment type" Enums(BONDS, CERTIFICATES)
// @Param       investorId     query string false "Investor ID"
// @Param       withInvestor   query bool   false "Include the investor"
// @Success     200 {array}  models.Investment "Investments"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /investment/list [get]
func (h *InvestmentHandler) ListInvestments(c *gin.Context) {
	var filter services.InvestmentFilter
	if err := bindQuery(c, &filter); err != nil {
		respondWithError(c, err)
		return
	}

	investments, err := h.investmentService.GetAllInvestments(filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, investments)
}

// AggregateInvestments handles the investment summary.
// @Summary     Aggregate investments
// @Description Totals, averages and ROI over investments, plus the total investor balance
// @Tags        investments
// @Produce     json
// @Param       startDate  query string false "Created on or after (YYYY-MM-DD)"
// @Param       endDate    query string false "Created on or before (YYYY-MM-DD)"
// @Param       investorId query string false "Investor ID"
// @Success     200 {object} services.InvestmentAggregate "Aggregate"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /investment/aggregate [get]
func (h *InvestmentHandler) AggregateInvestments(c *gin.Context) {
	var filter services.AggregateFilter
	if err := bindQuery(c, &filter); err != nil {
		respondWithError(c, err)
		return
	}

	aggregate, err := h.investmentService.AggregateInvestments(filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, aggregate)
}

// CreateInvestment handles creating an investment.
// @Summary     Create investment
// @Description Create an investment; the investor's balance must cover it together with their active investments
// @Tags        investments
// @Accept      json
// @Produce     json
// @Param       request body services.InvestmentInput true "Investment details"
// @Success     201 {object} models.Investment "Investment created"
// @Failure     400 {object} ErrorResponse "Invalid input or insufficient balance"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Investor not found"
// @Router      /investment/new [post]
func (h *InvestmentHandler) CreateInvestment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req services.InvestmentInput
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	investment, err := h.investmentService.CreateInvestment(userID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_INVESTMENT", "investment", investment.ID, c.ClientIP(),
		map[string]any{"investor_id": investment.InvestorID, "amount": investment.Amount, "type": string(investment.Type)})

	c.JSON(http.StatusCreated, investment)
}

// GetInvestment handles retrieving a specific investment.
// @Summary     Get investment by ID
// @Tags        investments
// @Produce     json
// @Param       id path string true "Investment ID"
// @Success     200 {object} models.Investment "Investment details"
// @Failure     400 {object} ErrorResponse "Invalid investment ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Investment not found"
// @Router      /investment/{id} [get]
func (h *InvestmentHandler) GetInvestment(c *gin.Context) {
	investment, err := h.investmentService.GetInvestmentByID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, investment)
}

// UpdateInvestment handles replacing an active investment's terms.
// @Summary     Update investment
// @Tags        investments
// @Accept      json
// @Produce     json
// @Param       id      path string                   true "Investment ID"
// @Param       request body services.InvestmentInput true "Investment details"
// @Success     200 {object} models.Investment "Updated investment"
// @Failure     400 {object} ErrorResponse "Invalid input, insufficient balance or redeemed investment"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Investment not found"
// @Router      /investment/{id} [put]
func (h *InvestmentHandler) UpdateInvestment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req services.InvestmentInput
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	investment, err := h.investmentService.UpdateInvestment(c.Param("id"), req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_INVESTMENT", "investment", investment.ID, c.ClientIP(),
		map[string]any{"investor_id": investment.InvestorID, "amount": investment.Amount, "value_on_maturity": investment.ValueOnMaturity})

	c.JSON(http.StatusOK, investment)
}

// RedeemInvestment handles closing an investment before its redemption date.
// @Summary     Redeem investment early
// @Tags        investments
// @Accept      json
// @Produce     json
// @Param       id      path string               true "Investment ID"
// @Param       request body services.RedeemInput true "Value at redemption"
// @Success     200 {object} models.Investment "Redeemed investment"
// @Failure     400 {object} ErrorResponse "Invalid input or already redeemed"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Investment not found"
// @Router      /investment/redeem/{id} [patch]
func (h *InvestmentHandler) RedeemInvestment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req services.RedeemInput
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	investment, err := h.investmentService.EarlyRedeemInvestment(c.Param("id"), req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "REDEEM_INVESTMENT", "investment", investment.ID, c.ClientIP(),
		map[string]any{"investor_id": investment.InvestorID, "value_on_maturity": investment.ValueOnMaturity})

	c.JSON(http.StatusOK, investment)
}

// DeleteInvestment handles deleting an active investment.
// @Summary     Delete investment
// @Tags        investments
// @Produce     json
// @Param       id   path  string true  "Investment ID"
// @Param       hard query bool   false "Delete permanently"
// @Success     200 {object} MessageResponse "Investment deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID or redeemed investment"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Investment not found"
// @Router      /investment/{id} [delete]
func (h *InvestmentHandler) DeleteInvestment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id := c.Param("id")
	hard := queryBool(c, "hard")
	if err := h.investmentService.DeleteInvestment(id, hard); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_INVESTMENT", "investment", id, c.ClientIP(), map[string]any{"hard": hard})

	c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "Investment deleted successfully"})
}
