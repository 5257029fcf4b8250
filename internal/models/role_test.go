package models

import "testing"

func testGame() *Game {
	return &Game{
		ID:        1,
		CreatorID: 1,
		Players: []User{
			{ID: 1, Email: "creator@x.com"},
			{ID: 2, Email: "player@x.com"},
		},
		Invitations: []GameInvitation{
			{GameID: 1, Email: "invited@x.com", Status: StatusPending},
			{GameID: 1, Email: "declined@x.com", Status: StatusDeclined},
		},
		Requests: []GameRequest{
			{GameID: 1, Email: "requester@x.com", Status: StatusPending},
			{GameID: 1, Email: "rejected@x.com", Status: StatusDeclined},
		},
	}
}

func TestResolveRole(t *testing.T) {
	g := testGame()

	tests := []struct {
		name   string
		userID uint
		email  string
		want   Role
	}{
		{"creator", 1, "creator@x.com", RoleCreator},
		{"player", 2, "player@x.com", RolePlayer},
		{"pending invitation", 10, "invited@x.com", RoleInvited},
		{"declined invitation is not a role", 11, "declined@x.com", RoleNone},
		{"pending request", 12, "requester@x.com", RoleRequester},
		{"declined request is not a role", 13, "rejected@x.com", RoleNone},
		{"stranger", 99, "stranger@x.com", RoleNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.ResolveRole(tt.userID, tt.email); got != tt.want {
				t.Errorf("ResolveRole(%d, %q) = %q, expected %q", tt.userID, tt.email, got, tt.want)
			}
		})
	}
}

func TestResolveRole_CreatorWinsOverListEntries(t *testing.T) {
	g := testGame()
	// Stale entries referencing the creator must not demote the role.
	g.Invitations = append(g.Invitations, GameInvitation{GameID: 1, Email: "creator@x.com", Status: StatusPending})
	g.Requests = append(g.Requests, GameRequest{GameID: 1, Email: "creator@x.com", Status: StatusPending})

	if got := g.ResolveRole(1, "creator@x.com"); got != RoleCreator {
		t.Errorf("ResolveRole = %q, expected creator", got)
	}
}

func TestResolveRole_InvitedWinsOverRequester(t *testing.T) {
	g := testGame()
	g.Requests = append(g.Requests, GameRequest{GameID: 1, Email: "invited@x.com", Status: StatusPending})

	if got := g.ResolveRole(10, "invited@x.com"); got != RoleInvited {
		t.Errorf("ResolveRole = %q, expected invited when both lists hold pending entries", got)
	}
}

func TestResolveRole_Deterministic(t *testing.T) {
	g := testGame()
	first := g.ResolveRole(2, "player@x.com")
	for i := 0; i < 10; i++ {
		if got := g.ResolveRole(2, "player@x.com"); got != first {
			t.Fatalf("ResolveRole changed between calls: %q then %q", first, got)
		}
	}
}

func TestValidSport(t *testing.T) {
	valid := []string{"Soccer", "Table Tennis", "Ultimate Frisbee", "Other"}
	for _, s := range valid {
		if !ValidSport(s) {
			t.Errorf("ValidSport(%q) = false, expected true", s)
		}
	}

	invalid := []string{"", "soccer", "Quidditch", "SOCCER"}
	for _, s := range invalid {
		if ValidSport(s) {
			t.Errorf("ValidSport(%q) = true, expected false", s)
		}
	}
}

func TestUserInterests_RoundTrip(t *testing.T) {
	u := &User{}
	if err := u.SetInterests(map[string]int{"Soccer": 3, "Tennis": 1}); err != nil {
		t.Fatalf("SetInterests() error = %v", err)
	}

	got := u.Interests()
	if got["Soccer"] != 3 || got["Tennis"] != 1 {
		t.Errorf("Interests() = %v", got)
	}
}

func TestUserInterests_EmptyColumn(t *testing.T) {
	u := &User{}
	got := u.Interests()
	if got == nil {
		t.Fatal("Interests() should never return nil")
	}
	if len(got) != 0 {
		t.Errorf("Interests() = %v, expected empty map", got)
	}
}

func TestUserHasProfile(t *testing.T) {
	u := &User{}
	if u.HasProfile() {
		t.Error("fresh user should have no profile")
	}

	age := 21
	u.Age = &age
	if !u.HasProfile() {
		t.Error("user with age should have a profile")
	}

	u2 := &User{}
	_ = u2.SetInterests(map[string]int{"Soccer": 2})
	if !u2.HasProfile() {
		t.Error("user with interests should have a profile")
	}
}
