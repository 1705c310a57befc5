package status

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReporterStartsReady(t *testing.T) {
	t.Parallel()

	r := NewReporter()
	require.Equal(t, "status.ready", r.Current().Key)
	require.Nil(t, r.Current().Params)
}

func TestLastWriteWins(t *testing.T) {
	t.Parallel()

	r := NewReporter()
	r.Set("status.signingIn", nil)
	r.Set("status.loginFailed", Params{"reason": "nope"})
	r.Set("status.signedIn", Params{"roles": "admin"})

	cur := r.Current()
	require.Equal(t, "status.signedIn", cur.Key)
	require.Equal(t, Params{"roles": "admin"}, cur.Params)
}
