package models

// Role is the derived relationship between a user and a game. It is computed
// fresh on every read and never stored.
type Role string

const (
	RoleCreator   Role = "creator"
	RolePlayer    Role = "player"
	RoleInvited   Role = "invited"
	RoleRequester Role = "requester"
	RoleNone      Role = "" // serialized as an absent field
)

// ResolveRole derives the requesting user's role from the game record.
// Precedence is creator > player > invited > requester: a user satisfying
// several predicates (stale list entries, an invitation and a request both
// pending) gets exactly the highest-priority role. The game must be loaded
// with its roster, invitations and requests.
func (g *Game) ResolveRole(userID uint, email string) Role {
	if g.CreatorID == userID {
		return RoleCreator
	}
	if g.HasPlayer(userID) {
		return RolePlayer
	}
	if g.PendingInvitation(email) != nil {
		return RoleInvited
	}
	if g.PendingRequest(email) != nil {
		return RoleRequester
	}
	return RoleNone
}
