package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "estatedesk/internal/errors"
	"estatedesk/internal/services"
	"estatedesk/internal/softdelete"
)

// Expense kinds accepted by the shared expense routes.
const (
	expenseTypeMaintenance = "maintenance"
	expenseTypeCustom      = "custom"
)

var errInvalidExpenseType = apperrors.WithMessage(apperrors.ErrBadRequest, "Invalid type. It must be 'maintenance' or 'custom'")

// ExpenseHandler handles maintenance and custom expense requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
	auditService   services.AuditServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer, auditService services.AuditServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService, auditService: auditService}
}

// GetMaintenanceExpense handles retrieving a maintenance expense.
// @Summary     Get maintenance expense
// @Tags        expenses
// @Produce     json
// @Param       id path string true "Maintenance expense ID"
// @Success     200 {object} models.MaintenanceExpense "Maintenance expense"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Maintenance expense not found"
// @Router      /expense/maintenance/{id} [get]
func (h *ExpenseHandler) GetMaintenanceExpense(c *gin.Context) {
	expense, err := h.expenseService.GetMaintenanceExpenseByID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, expense)
}

// PayMaintenanceExpense handles a payment towards a maintenance expense.
// @Summary     Pay maintenance expense
// @Description Add a payment; the total paid can never exceed the amount
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Param       request body services.MaintenancePaymentInput true "Payment"
// @Success     200 {object} models.MaintenanceExpense "Updated maintenance expense"
// @Failure     400 {object} ErrorResponse "Invalid input or overpayment"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Maintenance expense not found"
// @Router      /expense/maintenance/pay [post]
func (h *ExpenseHandler) PayMaintenanceExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req services.MaintenancePaymentInput
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.PayMaintenanceExpense(req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "PAY_MAINTENANCE_EXPENSE", "maintenance_expense", expense.ID, c.ClientIP(),
		map[string]any{"paid": req.Paid, "investor_id": req.InvestorID})

	c.JSON(http.StatusOK, expense)
}

// CreateExpense handles creating a custom expense.
// @Summary     Create custom expense
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Param       request body services.ExpenseInput true "Expense details"
// @Success     201 {object} models.Expense "Expense created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Investor not found"
// @Router      /expense/new [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req services.ExpenseInput
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.CreateExpense(req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_EXPENSE", "expense", expense.ID, c.ClientIP(),
		map[string]any{"amount": expense.Amount, "investor_id": expense.ForInvestorID})

	c.JSON(http.StatusCreated, expense)
}

// GetExpense handles retrieving a custom expense.
// @Summary     Get custom expense
// @Tags        expenses
// @Produce     json
// @Param       id path string true "Expense ID"
// @Success     200 {object} models.Expense "Expense"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Router      /expense/custom/{id} [get]
func (h *ExpenseHandler) GetExpense(c *gin.Context) {
	expense, err := h.expenseService.GetExpenseByID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, expense)
}

// UpdateExpense handles a partial custom expense update.
// @Summary     Update custom expense
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Param       id      path string                      true "Expense ID"
// @Param       request body services.ExpenseUpdateInput true "Fields to change"
// @Success     200 {object} models.Expense "Updated expense"
// @Failure     400 {object} ErrorResponse "Invalid input or amount below paid"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Router      /expense/custom/{id} [patch]
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req services.ExpenseUpdateInput
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Param("id"), req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_EXPENSE", "expense", expense.ID, c.ClientIP(),
		map[string]any{"investor_id": expense.ForInvestorID})

	c.JSON(http.StatusOK, expense)
}

// DeleteExpense handles deleting a custom expense.
// @Summary     Delete custom expense
// @Tags        expenses
// @Produce     json
// @Param       id   path  string true  "Expense ID"
// @Param       hard query bool   false "Delete permanently"
// @Success     200 {object} MessageResponse "Expense deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Router      /expense/custom/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id := c.Param("id")
	hard := queryBool(c, "hard")
	if err := h.expenseService.DeleteExpense(id, hard); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_EXPENSE", "expense", id, c.ClientIP(), map[string]any{"hard": hard})

	c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "Expense deleted successfully"})
}

// PayCustomExpense handles a payment towards a custom expense.
// @Summary     Pay custom expense
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Param       request body services.CustomPaymentInput true "Payment"
// @Success     200 {object} models.Expense "Updated expense"
// @Failure     400 {object} ErrorResponse "Invalid input or overpayment"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Router      /expense/custom/pay [post]
func (h *ExpenseHandler) PayCustomExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req services.CustomPaymentInput
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.PayCustomExpense(req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "PAY_EXPENSE", "expense", expense.ID, c.ClientIP(),
		map[string]any{"paid": req.PaidAmount, "investor_id": expense.ForInvestorID})

	c.JSON(http.StatusOK, expense)
}

// ListExpenses handles listing either kind of expense.
// @Summary     List expenses
// @Description List maintenance or custom expenses matching any of the given filters
// @Tags        expenses
// @Produce     json
// @Param       type        query string true  "Expense kind" Enums(maintenance, custom)
// @Param       investorId  query string false "Investor ID"
// @Param       expenseId   query string false "Expense ID"
// @Param       propertyId  query string false "Property ID (maintenance only)"
// @Param       showDeleted query bool   false "Include deleted custom expenses"
// @Success     200 {array}  models.Expense "Expenses"
// @Failure     400 {object} ErrorResponse "Invalid type or filter"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /expense/list [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	var filter services.ExpenseFilter
	if err := bindQuery(c, &filter); err != nil {
		respondWithError(c, err)
		return
	}

	switch c.Query("type") {
	case expenseTypeMaintenance:
		expenses, err := h.expenseService.ListMaintenanceExpenses(filter)
		if err != nil {
			respondWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, expenses)
	case expenseTypeCustom:
		mode := softdelete.ModeFor(queryBool(c, "showDeleted"))
		expenses, err := h.expenseService.ListExpenses(filter, mode)
		if err != nil {
			respondWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, expenses)
	default:
		respondWithError(c, errInvalidExpenseType)
	}
}

// GetExpenseByType handles retrieving either kind of expense by ID.
// @Summary     Get expense
// @Tags        expenses
// @Produce     json
// @Param       id   path  string true "Expense ID"
// @Param       type query string true "Expense kind" Enums(maintenance, custom)
// @Success     200 {object} models.Expense "Expense"
// @Failure     400 {object} ErrorResponse "Invalid type or ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Router      /expense/{id} [get]
func (h *ExpenseHandler) GetExpenseByType(c *gin.Context) {
	switch c.Query("type") {
	case expenseTypeMaintenance:
		h.GetMaintenanceExpense(c)
	case expenseTypeCustom:
		h.GetExpense(c)
	default:
		respondWithError(c, errInvalidExpenseType)
	}
}
