package views

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultOrderAndInitialView(t *testing.T) {
	t.Parallel()

	n := New()
	require.Equal(t, []ID{Assistant, Identity, Admin, System}, n.Order())
	require.Equal(t, Assistant, n.Active())
}

func TestNextPrevClampWithoutWraparound(t *testing.T) {
	t.Parallel()

	n := New()
	n.Prev()
	require.Equal(t, Assistant, n.Active(), "prev at the first view holds")

	for i := 0; i < 10; i++ {
		n.Next()
	}
	require.Equal(t, System, n.Active(), "next past the last view holds")

	n.Prev()
	require.Equal(t, Admin, n.Active())
}

func TestHomeEndFromAnyStartingPosition(t *testing.T) {
	t.Parallel()

	for _, start := range Default() {
		n := New()
		require.True(t, n.Select(start))

		n.End()
		require.Equal(t, System, n.Active())

		n.Home()
		require.Equal(t, Assistant, n.Active())
	}
}

func TestSelectUnknownIDIsIgnored(t *testing.T) {
	t.Parallel()

	n := New()
	n.End()
	require.False(t, n.Select(ID("dashboard")))
	require.Equal(t, System, n.Active())
}

func TestSelectByName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		query string
		want  ID
		ok    bool
	}{
		{"assistant", Assistant, true},
		{"adm", Admin, true},
		{"IDENT", Identity, true},
		{"systm", System, true},  // one deletion away
		{"asistant", Assistant, true},
		{"dashboard", "", false},
		{"   ", "", false},
	}
	for _, tc := range cases {
		n := New()
		ok := n.SelectByName(tc.query)
		require.Equal(t, tc.ok, ok, "query %q", tc.query)
		if tc.ok {
			require.Equal(t, tc.want, n.Active(), "query %q", tc.query)
		}
	}
}
