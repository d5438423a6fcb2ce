package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionDefaults(t *testing.T) {
	session := NewSession()

	assert.Equal(t, ScopeShared, session.Scope())
	assert.Equal(t, Guest, session.User())
	assert.True(t, session.User().IsGuest())
}

func TestSessionInvalidScopeFallsBackToShared(t *testing.T) {
	session := NewSession()
	session.SetScope(ScopePersonal)
	session.SetScope(Scope("bogus"))

	assert.Equal(t, ScopeShared, session.Scope())
}

func TestSessionSubscribeReceivesChanges(t *testing.T) {
	session := NewSession()
	events := session.Subscribe()

	session.SetScope(ScopePersonal)

	select {
	case ev := <-events:
		assert.Equal(t, ScopePersonal, ev.Scope)
	default:
		t.Fatal("expected a scope change event")
	}

	session.SetUser(Identity{UserID: "user-1", Name: "Ada"})
	select {
	case ev := <-events:
		assert.Equal(t, "user-1", ev.User.UserID)
		assert.Equal(t, ScopePersonal, ev.Scope)
	default:
		t.Fatal("expected a user change event")
	}
}

func TestSessionSettingSameScopeEmitsNothing(t *testing.T) {
	session := NewSession()
	events := session.Subscribe()

	session.SetScope(ScopeShared)

	select {
	case <-events:
		t.Fatal("no event expected for a no-op scope change")
	default:
	}
}

func TestSessionClearResetsToGuest(t *testing.T) {
	session := NewSession()
	session.SetUser(Identity{UserID: "user-1", Token: "tok"})
	session.SetScope(ScopePersonal)

	session.Clear()

	assert.Equal(t, ScopeShared, session.Scope())
	assert.Equal(t, Guest, session.User())
}

func TestSessionEmptyUserBecomesGuest(t *testing.T) {
	session := NewSession()
	session.SetUser(Identity{})

	require.True(t, session.User().IsGuest())
	assert.Equal(t, GuestUserID, session.User().UserID)
}
