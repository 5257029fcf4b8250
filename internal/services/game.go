package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sportsmatch/backend/internal/models"
	"github.com/sportsmatch/backend/pkg/logger"
	"github.com/sportsmatch/backend/pkg/response"
	"gorm.io/gorm"
)

const searchLimit = 100

type GameService struct {
	db            *gorm.DB
	notifications *NotificationService
	email         *EmailService
}

func NewGameService(db *gorm.DB, notifications *NotificationService, email *EmailService) *GameService {
	return &GameService{db: db, notifications: notifications, email: email}
}

type CreateGameRequest struct {
	Name         string    `json:"name" binding:"required,max=200"`
	SportType    string    `json:"sport_type" binding:"required"`
	MaxPlayers   int       `json:"max_players" binding:"omitempty,min=2,max=100"`
	Location     string    `json:"location" binding:"required,max=255"`
	StartAt      time.Time `json:"start_at" binding:"required"`
	InviteEmails []string  `json:"invite_emails" binding:"omitempty,dive,email"`
}

type InviteRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type RequestDecision struct {
	Email string `json:"email" binding:"required,email"`
}

type RemovePlayerRequest struct {
	PlayerID uint `json:"player_id" binding:"required"`
}

type SearchGamesRequest struct {
	Sport    string `form:"sport"`
	Name     string `form:"name"`
	Location string `form:"location"`
	Status   string `form:"status"`
}

// GameView is the serialized form of a game for a particular viewer. The
// viewer's membership role is annotated; pending invitations and requests are
// visible to the creator only.
type GameView struct {
	ID          uint                `json:"id"`
	PublicID    string              `json:"public_id"`
	Name        string              `json:"name"`
	SportType   string              `json:"sport_type"`
	Creator     models.PlayerView   `json:"creator"`
	Players     []models.PlayerView `json:"players"`
	MaxPlayers  int                 `json:"max_players"`
	Status      string              `json:"status"`
	Location    string              `json:"location"`
	StartAt     time.Time           `json:"start_at"`
	CreatedAt   time.Time           `json:"created_at"`
	UserRole    models.Role         `json:"user_role,omitempty"`
	Invitations []InvitationView    `json:"invitations,omitempty"`
	Requests    []RequestView       `json:"requests,omitempty"`
}

type InvitationView struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	InvitedAt time.Time `json:"invited_at"`
}

// RequestView is a pending join request enriched with the requester's profile
// when the email belongs to a registered user.
type RequestView struct {
	ID          uint               `json:"id"`
	Email       string             `json:"email"`
	RequestedAt time.Time          `json:"requested_at"`
	Player      *models.PlayerView `json:"player,omitempty"`
}

// Create opens a new game with the creator already on the roster. Supplied
// invite emails each become a pending invitation.
func (s *GameService) Create(userID uint, req *CreateGameRequest) (*GameView, *response.AppError) {
	if !models.ValidSport(req.SportType) {
		return nil, response.NewValidation("unknown sport type")
	}
	// The grace window keeps a present-instant start valid.
	if req.StartAt.Before(time.Now().Add(-time.Minute)) {
		return nil, response.NewValidation("start time cannot be in the past")
	}
	maxPlayers := req.MaxPlayers
	if maxPlayers == 0 {
		maxPlayers = 10
	}

	var creator models.User
	if err := s.db.First(&creator, userID).Error; err != nil {
		return nil, response.NewNotFound("user not found")
	}

	invites := make([]string, 0, len(req.InviteEmails))
	seen := make(map[string]struct{})
	for _, raw := range req.InviteEmails {
		email := normalizeEmail(raw)
		if email == "" || email == normalizeEmail(creator.Email) {
			continue
		}
		if _, dup := seen[email]; dup {
			continue
		}
		seen[email] = struct{}{}
		invites = append(invites, email)
	}

	game := models.Game{
		PublicID:   uuid.NewString(),
		Name:       req.Name,
		SportType:  req.SportType,
		CreatorID:  userID,
		MaxPlayers: maxPlayers,
		Status:     models.GameStatusOpen,
		Location:   req.Location,
		StartAt:    req.StartAt,
	}

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&game).Error; err != nil {
			return err
		}
		for _, email := range invites {
			invitation := models.GameInvitation{
				GameID: game.ID,
				Email:  email,
				Status: models.StatusPending,
			}
			if err := tx.Create(&invitation).Error; err != nil {
				return err
			}
		}
		return tx.Model(&game).Association("Players").Append(&creator)
	}); err != nil {
		return nil, response.NewServerError("failed to create game")
	}

	for _, email := range invites {
		var invitee models.User
		if err := s.db.Where("email = ?", email).First(&invitee).Error; err == nil {
			s.notifyAfterCommit(invitee.ID, game.ID,
				models.NotificationCategoryInvitation, models.NotificationTypeJoin,
				fmt.Sprintf("%s invited you to %s", creator.Name, game.Name))
		}
		if err := s.email.SendGameInvite(email, creator.Name, &game); err != nil {
			logger.Warnf("failed to queue invite mail for %s: %v", email, err)
		}
	}

	return s.GetByRef(strconv.FormatUint(uint64(game.ID), 10), userID, creator.Email)
}

// Invite records a pending invitation for an email address. Creator only.
// The invitee does not need an account yet.
func (s *GameService) Invite(actorID uint, gameRef string, req *InviteRequest) (*GameView, *response.AppError) {
	email := normalizeEmail(req.Email)

	var game *models.Game
	var invitee models.User
	inviteeFound := false

	appErr := s.inTx(func(tx *gorm.DB) *response.AppError {
		var err *response.AppError
		game, err = s.loadGame(tx, gameRef)
		if err != nil {
			return err
		}
		if game.CreatorID != actorID {
			return response.NewForbidden("only the creator can invite players")
		}

		if uerr := tx.Where("email = ?", email).First(&invitee).Error; uerr == nil {
			inviteeFound = true
			if invitee.ID == game.CreatorID || game.HasPlayer(invitee.ID) {
				return response.NewConflict("user is already a player")
			}
		}

		if game.PendingInvitation(email) != nil {
			return response.NewConflict("invitation already pending")
		}

		invitation := models.GameInvitation{
			GameID: game.ID,
			Email:  email,
			Status: models.StatusPending,
		}
		if cerr := tx.Create(&invitation).Error; cerr != nil {
			return response.NewServerError("failed to create invitation")
		}
		return nil
	})
	if appErr != nil {
		return nil, appErr
	}

	creatorName := ""
	if game.Creator != nil {
		creatorName = game.Creator.Name
	}
	if inviteeFound {
		s.notifyAfterCommit(invitee.ID, game.ID,
			models.NotificationCategoryInvitation, models.NotificationTypeJoin,
			fmt.Sprintf("%s invited you to %s", creatorName, game.Name))
	}
	if err := s.email.SendGameInvite(email, creatorName, game); err != nil {
		logger.Warnf("failed to queue invite mail for %s: %v", email, err)
	}

	return s.GetByRef(gameRef, actorID, "")
}

// AcceptInvite consumes the caller's pending invitation and adds them to the
// roster. The pending-status predicate is folded into the UPDATE so two
// concurrent accepts cannot both win.
func (s *GameService) AcceptInvite(userID uint, userEmail, gameRef string) (*GameView, *response.AppError) {
	email := normalizeEmail(userEmail)

	var game *models.Game
	alreadyPlayer := false

	appErr := s.inTx(func(tx *gorm.DB) *response.AppError {
		var err *response.AppError
		game, err = s.loadGame(tx, gameRef)
		if err != nil {
			return err
		}

		res := tx.Model(&models.GameInvitation{}).
			Where("game_id = ? AND email = ? AND status = ?", game.ID, email, models.StatusPending).
			Update("status", models.StatusAccepted)
		if res.Error != nil {
			return response.NewServerError("failed to update invitation")
		}
		if res.RowsAffected == 0 {
			return response.NewConflict("no pending invitation for this game")
		}

		if userID == game.CreatorID || game.HasPlayer(userID) {
			// Consume the entry rather than leaving it pending forever.
			alreadyPlayer = true
			return s.consumeEntry(tx, &models.GameInvitation{}, game.ID, email)
		}

		var user models.User
		if uerr := tx.First(&user, userID).Error; uerr != nil {
			return response.NewNotFound("user not found")
		}
		if aerr := tx.Model(game).Association("Players").Append(&user); aerr != nil {
			return response.NewServerError("failed to join game")
		}
		s.warnOverCapacity(game, len(game.Players)+1)
		return nil
	})
	if appErr != nil {
		return nil, appErr
	}
	if alreadyPlayer {
		return nil, response.NewConflict("already a player")
	}

	s.notifyAfterCommit(game.CreatorID, game.ID,
		models.NotificationCategoryInvitation, models.NotificationTypeAccept,
		fmt.Sprintf("%s accepted your invitation to %s", s.userName(userID), game.Name))

	return s.GetByRef(gameRef, userID, email)
}

// DeclineInvite consumes the caller's pending invitation without joining.
func (s *GameService) DeclineInvite(userID uint, userEmail, gameRef string) (*GameView, *response.AppError) {
	email := normalizeEmail(userEmail)

	var game *models.Game
	appErr := s.inTx(func(tx *gorm.DB) *response.AppError {
		var err *response.AppError
		game, err = s.loadGame(tx, gameRef)
		if err != nil {
			return err
		}

		res := tx.Model(&models.GameInvitation{}).
			Where("game_id = ? AND email = ? AND status = ?", game.ID, email, models.StatusPending).
			Update("status", models.StatusDeclined)
		if res.Error != nil {
			return response.NewServerError("failed to update invitation")
		}
		if res.RowsAffected == 0 {
			return response.NewConflict("no pending invitation for this game")
		}
		return nil
	})
	if appErr != nil {
		return nil, appErr
	}

	s.notifyAfterCommit(game.CreatorID, game.ID,
		models.NotificationCategoryInvitation, models.NotificationTypeReject,
		fmt.Sprintf("%s declined your invitation to %s", s.userName(userID), game.Name))

	return s.GetByRef(gameRef, userID, email)
}

// SendJoinRequest records a pending join request from the caller.
func (s *GameService) SendJoinRequest(userID uint, userEmail, gameRef string) (*GameView, *response.AppError) {
	email := normalizeEmail(userEmail)

	var game *models.Game
	appErr := s.inTx(func(tx *gorm.DB) *response.AppError {
		var err *response.AppError
		game, err = s.loadGame(tx, gameRef)
		if err != nil {
			return err
		}
		if game.CreatorID == userID {
			return response.NewConflict("you created this game")
		}
		if game.HasPlayer(userID) {
			return response.NewConflict("already a player")
		}
		if game.PendingRequest(email) != nil {
			return response.NewConflict("request already pending")
		}

		request := models.GameRequest{
			GameID: game.ID,
			Email:  email,
			Status: models.StatusPending,
		}
		if cerr := tx.Create(&request).Error; cerr != nil {
			return response.NewServerError("failed to create request")
		}
		return nil
	})
	if appErr != nil {
		return nil, appErr
	}

	requesterName := s.userName(userID)
	s.notifyAfterCommit(game.CreatorID, game.ID,
		models.NotificationCategoryRequest, models.NotificationTypeJoin,
		fmt.Sprintf("%s wants to join %s", requesterName, game.Name))
	if game.Creator != nil {
		if err := s.email.SendJoinRequest(game.Creator.Email, requesterName, game); err != nil {
			logger.Warnf("failed to queue join-request mail: %v", err)
		}
	}

	return s.GetByRef(gameRef, userID, email)
}

// AcceptRequest consumes a pending join request and adds the requester to the
// roster. Creator only.
func (s *GameService) AcceptRequest(actorID uint, gameRef string, req *RequestDecision) (*GameView, *response.AppError) {
	email := normalizeEmail(req.Email)

	var game *models.Game
	var requester models.User
	alreadyPlayer := false

	appErr := s.inTx(func(tx *gorm.DB) *response.AppError {
		var err *response.AppError
		game, err = s.loadGame(tx, gameRef)
		if err != nil {
			return err
		}
		if game.CreatorID != actorID {
			return response.NewForbidden("only the creator can accept requests")
		}

		res := tx.Model(&models.GameRequest{}).
			Where("game_id = ? AND email = ? AND status = ?", game.ID, email, models.StatusPending).
			Update("status", models.StatusAccepted)
		if res.Error != nil {
			return response.NewServerError("failed to update request")
		}
		if res.RowsAffected == 0 {
			return response.NewConflict("no pending request for this email")
		}

		if uerr := tx.Where("email = ?", email).First(&requester).Error; uerr != nil {
			return response.NewNotFound("requester not found")
		}
		if requester.ID == game.CreatorID || game.HasPlayer(requester.ID) {
			alreadyPlayer = true
			return s.consumeEntry(tx, &models.GameRequest{}, game.ID, email)
		}

		if aerr := tx.Model(game).Association("Players").Append(&requester); aerr != nil {
			return response.NewServerError("failed to add player")
		}
		s.warnOverCapacity(game, len(game.Players)+1)
		return nil
	})
	if appErr != nil {
		return nil, appErr
	}
	if alreadyPlayer {
		return nil, response.NewConflict("already a player")
	}

	s.notifyAfterCommit(requester.ID, game.ID,
		models.NotificationCategoryRequest, models.NotificationTypeAccept,
		fmt.Sprintf("Your request to join %s was accepted", game.Name))

	return s.GetByRef(gameRef, actorID, "")
}

// RejectRequest consumes a pending join request without adding the requester.
// Creator only.
func (s *GameService) RejectRequest(actorID uint, gameRef string, req *RequestDecision) (*GameView, *response.AppError) {
	email := normalizeEmail(req.Email)

	var game *models.Game
	appErr := s.inTx(func(tx *gorm.DB) *response.AppError {
		var err *response.AppError
		game, err = s.loadGame(tx, gameRef)
		if err != nil {
			return err
		}
		if game.CreatorID != actorID {
			return response.NewForbidden("only the creator can reject requests")
		}

		res := tx.Model(&models.GameRequest{}).
			Where("game_id = ? AND email = ? AND status = ?", game.ID, email, models.StatusPending).
			Update("status", models.StatusDeclined)
		if res.Error != nil {
			return response.NewServerError("failed to update request")
		}
		if res.RowsAffected == 0 {
			return response.NewConflict("no pending request for this email")
		}
		return nil
	})
	if appErr != nil {
		return nil, appErr
	}

	var requester models.User
	if err := s.db.Where("email = ?", email).First(&requester).Error; err == nil {
		s.notifyAfterCommit(requester.ID, game.ID,
			models.NotificationCategoryRequest, models.NotificationTypeReject,
			fmt.Sprintf("Your request to join %s was rejected", game.Name))
	}

	return s.GetByRef(gameRef, actorID, "")
}

// Leave removes the caller from the roster. The creator cannot leave their
// own game.
func (s *GameService) Leave(userID uint, gameRef string) *response.AppError {
	return s.inTx(func(tx *gorm.DB) *response.AppError {
		game, err := s.loadGame(tx, gameRef)
		if err != nil {
			return err
		}
		if game.CreatorID == userID {
			return response.NewConflict("the creator cannot leave their own game")
		}

		res := tx.Exec("DELETE FROM game_players WHERE game_id = ? AND user_id = ?", game.ID, userID)
		if res.Error != nil {
			return response.NewServerError("failed to leave game")
		}
		if res.RowsAffected == 0 {
			return response.NewConflict("not a player in this game")
		}
		return nil
	})
}

// RemovePlayer removes a roster member. Creator only; the creator cannot be
// removed.
func (s *GameService) RemovePlayer(actorID uint, gameRef string, req *RemovePlayerRequest) (*GameView, *response.AppError) {
	var game *models.Game
	appErr := s.inTx(func(tx *gorm.DB) *response.AppError {
		var err *response.AppError
		game, err = s.loadGame(tx, gameRef)
		if err != nil {
			return err
		}
		if game.CreatorID != actorID {
			return response.NewForbidden("only the creator can remove players")
		}
		if req.PlayerID == game.CreatorID {
			return response.NewConflict("the creator cannot be removed")
		}

		res := tx.Exec("DELETE FROM game_players WHERE game_id = ? AND user_id = ?", game.ID, req.PlayerID)
		if res.Error != nil {
			return response.NewServerError("failed to remove player")
		}
		if res.RowsAffected == 0 {
			return response.NewConflict("not a player in this game")
		}
		return nil
	})
	if appErr != nil {
		return nil, appErr
	}

	s.notifyAfterCommit(req.PlayerID, game.ID,
		models.NotificationCategoryGame, models.NotificationTypeReject,
		fmt.Sprintf("You were removed from %s", game.Name))

	return s.GetByRef(gameRef, actorID, "")
}

// GetByRef returns a single game annotated for the viewer. ref is a numeric
// id or a public UUID.
func (s *GameService) GetByRef(ref string, viewerID uint, viewerEmail string) (*GameView, *response.AppError) {
	game, appErr := s.loadGame(s.db, ref)
	if appErr != nil {
		return nil, appErr
	}
	return s.view(game, viewerID, normalizeEmail(viewerEmail)), nil
}

// Mine lists games the user is involved in: creator, player, invited or
// requester.
func (s *GameService) Mine(userID uint, userEmail string) ([]GameView, *response.AppError) {
	email := normalizeEmail(userEmail)

	var games []models.Game
	err := s.gameQuery().
		Where(`creator_id = ?
			OR id IN (SELECT game_id FROM game_players WHERE user_id = ?)
			OR id IN (SELECT game_id FROM game_invitations WHERE email = ? AND status = ?)
			OR id IN (SELECT game_id FROM game_requests WHERE email = ? AND status = ?)`,
			userID, userID, email, models.StatusPending, email, models.StatusPending).
		Order("start_at ASC").
		Find(&games).Error
	if err != nil {
		return nil, response.NewServerError("failed to list games")
	}

	return s.views(games, userID, email), nil
}

// Search filters games. Without an explicit status filter only open, future
// games are returned.
func (s *GameService) Search(req *SearchGamesRequest, viewerID uint, viewerEmail string) ([]GameView, *response.AppError) {
	query := s.gameQuery()

	if req.Status != "" {
		query = query.Where("status = ?", req.Status)
	} else {
		query = query.Where("status = ? AND start_at >= ?", models.GameStatusOpen, time.Now())
	}
	if req.Sport != "" {
		query = query.Where("sport_type = ?", req.Sport)
	}
	if req.Name != "" {
		query = query.Where("name LIKE ?", "%"+req.Name+"%")
	}
	if req.Location != "" {
		query = query.Where("location LIKE ?", "%"+req.Location+"%")
	}

	var games []models.Game
	if err := query.
		Order("start_at ASC").
		Order("created_at DESC").
		Limit(searchLimit).
		Find(&games).Error; err != nil {
		return nil, response.NewServerError("failed to search games")
	}

	return s.views(games, viewerID, normalizeEmail(viewerEmail)), nil
}

// Recent returns the ten most recently created games.
func (s *GameService) Recent(viewerID uint, viewerEmail string) ([]GameView, *response.AppError) {
	var games []models.Game
	if err := s.gameQuery().
		Order("created_at DESC").
		Limit(10).
		Find(&games).Error; err != nil {
		return nil, response.NewServerError("failed to list games")
	}
	return s.views(games, viewerID, normalizeEmail(viewerEmail)), nil
}

// Upcoming returns the viewer's games starting within the next 24 hours.
func (s *GameService) Upcoming(userID uint, userEmail string) ([]GameView, *response.AppError) {
	email := normalizeEmail(userEmail)
	now := time.Now()

	var games []models.Game
	err := s.gameQuery().
		Where("start_at BETWEEN ? AND ?", now, now.Add(24*time.Hour)).
		Where("status <> ?", models.GameStatusCancelled).
		Where(`creator_id = ? OR id IN (SELECT game_id FROM game_players WHERE user_id = ?)`,
			userID, userID).
		Order("start_at ASC").
		Find(&games).Error
	if err != nil {
		return nil, response.NewServerError("failed to list games")
	}
	return s.views(games, userID, email), nil
}

// BySport lists open future games for one sport.
func (s *GameService) BySport(sport string, viewerID uint, viewerEmail string) ([]GameView, *response.AppError) {
	if !models.ValidSport(sport) {
		return nil, response.NewValidation("unknown sport type")
	}

	var games []models.Game
	if err := s.gameQuery().
		Where("sport_type = ? AND status = ? AND start_at >= ?", sport, models.GameStatusOpen, time.Now()).
		Order("start_at ASC").
		Limit(searchLimit).
		Find(&games).Error; err != nil {
		return nil, response.NewServerError("failed to list games")
	}
	return s.views(games, viewerID, normalizeEmail(viewerEmail)), nil
}

// --- helpers ---

func (s *GameService) gameQuery() *gorm.DB {
	return s.db.
		Preload("Creator").
		Preload("Players").
		Preload("Invitations").
		Preload("Requests")
}

// loadGame fetches a game by numeric id or public UUID with all associations.
func (s *GameService) loadGame(tx *gorm.DB, ref string) (*models.Game, *response.AppError) {
	query := tx.
		Preload("Creator").
		Preload("Players").
		Preload("Invitations").
		Preload("Requests")

	var game models.Game
	var err error
	if id, perr := strconv.ParseUint(ref, 10, 64); perr == nil {
		err = query.First(&game, uint(id)).Error
	} else {
		err = query.Where("public_id = ?", ref).First(&game).Error
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("game not found")
		}
		return nil, response.NewServerError("database error")
	}
	return &game, nil
}

// inTx runs fn in a transaction, translating AppError returns into rollbacks.
func (s *GameService) inTx(fn func(tx *gorm.DB) *response.AppError) *response.AppError {
	var appErr *response.AppError
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if appErr = fn(tx); appErr != nil {
			return appErr
		}
		return nil
	})
	if appErr != nil {
		return appErr
	}
	if err != nil {
		return response.NewServerError("transaction failed")
	}
	return nil
}

// consumeEntry marks the entry just flipped to accepted back to declined, so
// an already-player acceptance commits as a consumed (declined) log entry.
func (s *GameService) consumeEntry(tx *gorm.DB, model interface{}, gameID uint, email string) *response.AppError {
	if err := tx.Model(model).
		Where("game_id = ? AND email = ? AND status = ?", gameID, email, models.StatusAccepted).
		Update("status", models.StatusDeclined).Error; err != nil {
		return response.NewServerError("failed to update entry")
	}
	return nil
}

// userName resolves a display name for notification text. A failed load falls
// back to a neutral label rather than an empty string.
func (s *GameService) userName(userID uint) string {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		logger.Warnf("failed to load user %d for notification text: %v", userID, err)
		return "A player"
	}
	return user.Name
}

func (s *GameService) warnOverCapacity(game *models.Game, rosterSize int) {
	if rosterSize > game.MaxPlayers {
		logger.Warnf("game %d roster size %d exceeds max players %d", game.ID, rosterSize, game.MaxPlayers)
	}
}

// notifyAfterCommit writes an inbox entry for an already-committed mutation.
// Failures are logged, never propagated.
func (s *GameService) notifyAfterCommit(userID, gameID uint, category, ntype, title string) {
	if err := s.notifications.Notify(userID, gameID, category, ntype, title); err != nil {
		logger.Errorf("failed to write notification for user %d: %v", userID, err)
	}
}

func (s *GameService) views(games []models.Game, viewerID uint, viewerEmail string) []GameView {
	out := make([]GameView, 0, len(games))
	for i := range games {
		out = append(out, *s.view(&games[i], viewerID, viewerEmail))
	}
	return out
}

func (s *GameService) view(g *models.Game, viewerID uint, viewerEmail string) *GameView {
	v := &GameView{
		ID:         g.ID,
		PublicID:   g.PublicID,
		Name:       g.Name,
		SportType:  g.SportType,
		MaxPlayers: g.MaxPlayers,
		Status:     g.Status,
		Location:   g.Location,
		StartAt:    g.StartAt,
		CreatedAt:  g.CreatedAt,
		UserRole:   g.ResolveRole(viewerID, viewerEmail),
	}
	if g.Creator != nil {
		v.Creator = g.Creator.View()
	}
	v.Players = make([]models.PlayerView, 0, len(g.Players))
	for i := range g.Players {
		v.Players = append(v.Players, g.Players[i].View())
	}

	if v.UserRole == models.RoleCreator {
		v.Invitations, v.Requests = s.creatorViews(g)
	}
	return v
}

// creatorViews lists the pending invitation and request entries, with
// requester profiles resolved in one query.
func (s *GameService) creatorViews(g *models.Game) ([]InvitationView, []RequestView) {
	var invitations []InvitationView
	for i := range g.Invitations {
		if g.Invitations[i].Status != models.StatusPending {
			continue
		}
		invitations = append(invitations, InvitationView{
			ID:        g.Invitations[i].ID,
			Email:     g.Invitations[i].Email,
			InvitedAt: g.Invitations[i].InvitedAt,
		})
	}

	var pendingEmails []string
	for i := range g.Requests {
		if g.Requests[i].Status == models.StatusPending {
			pendingEmails = append(pendingEmails, g.Requests[i].Email)
		}
	}

	profiles := make(map[string]models.PlayerView)
	if len(pendingEmails) > 0 {
		var users []models.User
		if err := s.db.Where("email IN ?", pendingEmails).Find(&users).Error; err == nil {
			for i := range users {
				profiles[users[i].Email] = users[i].View()
			}
		}
	}

	var requests []RequestView
	for i := range g.Requests {
		if g.Requests[i].Status != models.StatusPending {
			continue
		}
		rv := RequestView{
			ID:          g.Requests[i].ID,
			Email:       g.Requests[i].Email,
			RequestedAt: g.Requests[i].RequestedAt,
		}
		if pv, ok := profiles[g.Requests[i].Email]; ok {
			rv.Player = &pv
		}
		requests = append(requests, rv)
	}

	return invitations, requests
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
