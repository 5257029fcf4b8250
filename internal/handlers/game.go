package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sportsmatch/backend/internal/middleware"
	"github.com/sportsmatch/backend/internal/services"
	"github.com/sportsmatch/backend/pkg/response"
)

type GameHandler struct {
	gameService *services.GameService
}

func NewGameHandler(gameService *services.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

// Create opens a new game
// POST /api/games
func (h *GameHandler) Create(c *gin.Context) {
	var req services.CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	view, appErr := h.gameService.Create(middleware.GetUserID(c), &req)
	if appErr != nil {
		response.Error(c, appErr)
		return
	}
	response.Created(c, view)
}

// Get returns one game annotated with the viewer's role
// GET /api/games/:id
func (h *GameHandler) Get(c *gin.Context) {
	view, appErr := h.gameService.GetByRef(c.Param("id"), middleware.GetUserID(c), middleware.GetEmail(c))
	if appErr != nil {
		response.Error(c, appErr)
		return
	}
	response.Success(c, view)
}

// Mine lists games the user is involved in
// GET /api/games/mine
func (h *GameHandler) Mine(c *gin.Context) {
	views, appErr := h.gameService.Mine(middleware.GetUserID(c), middleware.GetEmail(c))
	if appErr != nil {
		response.Error(c, appErr)
		return
	}
	response.Success(c, views)
}

// Search filters games by sport, name, location and status
// GET /api/games/search
func (h *GameHandler) Search(c *gin.Context) {
	var req services.SearchGamesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	views, appErr := h.gameService.Search(&req, middleware.GetUserID(c), middleware.GetEmail(c))
	if appErr != nil {
		response.Error(c, appErr)
		return
	}
	response.Success(c, views)
}

// Recent lists the most recently created games
// GET /api/games/recent
func (h *GameHandler) Recent(c *gin.Context) {
	views, appErr := h.gameService.Recent(middleware.GetUserID(c), middleware.GetEmail(c))
	if appErr != nil {
		response.Error(c, appErr)
		return
	}
	response.Success(c, views)
}

// Upcoming lists the user's games starting within 24 hours
// GET /api/games/upcoming
func (h *GameHandler) Upcoming(c *gin.Context) {
	views, appErr := h.gameService.Upcoming(middleware.GetUserID(c), middleware.GetEmail(c))
	if appErr != nil {
		response.Error(c, appErr)
		return
	}
	response.Success(c, views)
}

// BySport lists open future games for one sport
// GET /api/games/sport/:sport
func (h *GameHandler) BySport(c *gin.Context) {
	views, appErr := h.gameService.BySport(c.Param("sport"), middleware.GetUserID(c), middleware.GetEmail(c))
	if appErr != nil {
		response.Error(c, appErr)
		return
	}
	response.Success(c, views)
}

// Invite records a pending invitation for an email
// POST /api/games/:id/invite
func (h *GameHandler) Invite(c *gin.Context) {
	var req services.InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	view, appErr := h.gameService.Invite(middleware.GetUserID(c), c.Param("id"), &req)
	if appErr != nil {
		response.Error(c, appErr)
		return
	}
	response.Success(c, view)
}

// AcceptInvite joins the game from the caller's pending invitation
// POST /api/games/:id/invitation/accept
func (h *GameHandler) AcceptInvite(c *gin.Context) {
	view, appErr := h.gameService.AcceptInvite(middleware.GetUserID(c), middleware.GetEmail(c), c.Param("id"))
	if appErr != nil {
		response.Error(c, appErr)
		return
	}
	response.Success(c, view)
}

// DeclineInvite declines the caller's pending invitation
// POST /api/games/:id/invitation/decline
func (h *GameHandler) DeclineInvite(c *gin.Context) {
	view, appErr := h.gameService.DeclineInvite(middleware.GetUserID(c), middleware.GetEmail(c), c.Param("id"))
	if appErr != nil {
		response.Error(c, appErr)
		return
	}
	response.Success(c, view)
}

// Request asks to join the game
// POST /api/games/:id/request
func (h *GameHandler) Request(c *gin.Context) {
	view, appErr := h.gameService.SendJoinRequest(middleware.GetUserID(c), middleware.GetEmail(c), c.Param("id"))
	if appErr != nil {
		response.Error(c, appErr)
		return
	}
	response.Success(c, view)
}

// AcceptRequest accepts a pending join request. Creator only
// POST /api/games/:id/request/accept
func (h *GameHandler) AcceptRequest(c *gin.Context) {
	var req services.RequestDecision
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	view, appErr := h.gameService.AcceptRequest(middleware.GetUserID(c), c.Param("id"), &req)
	if appErr != nil {
		response.Error(c, appErr)
		return
	}
	response.Success(c, view)
}

// RejectRequest rejects a pending join request. Creator only
// POST /api/games/:id/request/reject
func (h *GameHandler) RejectRequest(c *gin.Context) {
	var req services.RequestDecision
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	view, appErr := h.gameService.RejectRequest(middleware.GetUserID(c), c.Param("id"), &req)
	if appErr != nil {
		response.Error(c, appErr)
		return
	}
	response.Success(c, view)
}

// Leave removes the caller from the roster
// POST /api/games/:id/leave
func (h *GameHandler) Leave(c *gin.Context) {
	if appErr := h.gameService.Leave(middleware.GetUserID(c), c.Param("id")); appErr != nil {
		response.Error(c, appErr)
		return
	}
	response.Success(c, gin.H{"message": "left game"})
}

// RemovePlayer removes a roster member. Creator only
// POST /api/games/:id/remove-player
func (h *GameHandler) RemovePlayer(c *gin.Context) {
	var req services.RemovePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	view, appErr := h.gameService.RemovePlayer(middleware.GetUserID(c), c.Param("id"), &req)
	if appErr != nil {
		response.Error(c, appErr)
		return
	}
	response.Success(c, view)
}
