package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"estatedesk/internal/services"
)

// AgentHandler handles agent-related requests.
type AgentHandler struct {
	agentService services.AgentServicer
	auditService services.AuditServicer
}

// NewAgentHandler creates a new AgentHandler.
func NewAgentHandler(agentService services.AgentServicer, auditService services.AuditServicer) *AgentHandler {
	return &AgentHandler{agentService: agentService, auditService: auditService}
}

// LinkRequest names the investor an agent should represent.
type LinkRequest struct {
	InvestorID string `json:"investorId"`
}

// CreateAgent handles creating an agent. Existing agents of the investor are
// replaced.
// @Summary     Create agent
// @Tags        agents
// @Accept      json
// @Produce     json
// @Param       request body services.AgentInput true "Agent details"
// @Success     201 {object} models.Agent "Agent created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Investor not found"
// @Router      /agent/new [post]
func (h *AgentHandler) CreateAgent(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req services.AgentInput
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	agent, err := h.agentService.CreateAgent(req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_AGENT", "agent", agent.ID, c.ClientIP(),
		map[string]any{"investor_id": agent.InvestorID})

	c.JSON(http.StatusCreated, agent)
}

// GetAgent handles retrieving an agent, replaced or not.
// @Summary     Get agent by ID
// @Tags        agents
// @Produce     json
// @Param       id path string true "Agent ID"
// @Success     200 {object} models.Agent "Agent"
// @Failure     400 {object} ErrorResponse "Invalid agent ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Agent not found"
// @Router      /agent/{id} [get]
func (h *AgentHandler) GetAgent(c *gin.Context) {
	agent, err := h.agentService.GetAgentByID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, agent)
}

// GetInvestorAgents handles listing every agent an investor has had.
// @Summary     List investor agents
// @Description Active agent first, then replaced agents
// @Tags        agents
// @Produce     json
// @Param       id path string true "Investor ID"
// @Success     200 {array}  models.Agent "Agents"
// @Failure     400 {object} ErrorResponse "Invalid investor ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /agent/investor/{id} [get]
func (h *AgentHandler) GetInvestorAgents(c *gin.Context) {
	agents, err := h.agentService.GetAgentsByInvestorID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, agents)
}

// LinkAgent handles moving an agent to another investor.
// @Summary     Link agent
// @Tags        agents
// @Accept      json
// @Produce     json
// @Param       id      path string      true "Agent ID"
// @Param       request body LinkRequest true "Investor"
// @Success     200 {object} models.Agent "Updated agent"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Agent or investor not found"
// @Router      /agent/link/{id} [patch]
func (h *AgentHandler) LinkAgent(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req LinkRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	agent, err := h.agentService.LinkAgentToInvestor(c.Param("id"), req.InvestorID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "LINK_AGENT", "agent", agent.ID, c.ClientIP(),
		map[string]any{"investor_id": req.InvestorID})

	c.JSON(http.StatusOK, agent)
}

// UnlinkAgent handles retiring an agent.
// @Summary     Unlink agent
// @Tags        agents
// @Produce     json
// @Param       id path string true "Agent ID"
// @Success     200 {object} MessageResponse "Agent unlinked"
// @Failure     400 {object} ErrorResponse "Invalid agent ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Agent not found"
// @Router      /agent/unlink/{id} [patch]
func (h *AgentHandler) UnlinkAgent(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id := c.Param("id")
	if err := h.agentService.UnlinkAgent(id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UNLINK_AGENT", "agent", id, c.ClientIP(), nil)

	c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "Agent unlinked successfully"})
}
