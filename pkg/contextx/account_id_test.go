package contextx_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"charity_token/pkg/contextx"
)

func TestAccountID(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	var testAccountIDEmpty contextx.AccountID

	testAccountIDNotEmpty := contextx.AccountID("test-account-id")

	accountID, err := contextx.AccountIDFromContext(ctx)
	rq.Equal(testAccountIDEmpty, accountID)
	rq.ErrorIs(err, contextx.ErrNoValue)
	rq.ErrorContains(err, "account id: no value in context")

	ctx = contextx.WithAccountID(ctx, testAccountIDNotEmpty)

	accountID, err = contextx.AccountIDFromContext(ctx)
	rq.Equal(testAccountIDNotEmpty, accountID)
	rq.NoError(err)
}
