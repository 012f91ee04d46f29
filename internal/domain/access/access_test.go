package access_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"charity_token/internal/domain/access"
)

func TestIsAdministrator(t *testing.T) {
	rq := require.New(t)

	control := access.NewControl("admin")

	rq.True(control.IsAdministrator("admin"))
	rq.False(control.IsAdministrator("alice"))
	rq.False(control.IsAdministrator(""))
}

func TestIsAdministratorEmptyAdmin(t *testing.T) {
	rq := require.New(t)

	// A zero admin identity matches nobody, not even an empty caller.
	control := access.NewControl("")

	rq.False(control.IsAdministrator(""))
	rq.False(control.IsAdministrator("alice"))
}
