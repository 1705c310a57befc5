package i18n

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupAndSubstitution(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Signed out.", T(LocaleEN, "status.signedOut", nil))
	require.Equal(t, "已退出登录。", T(LocaleZH, "status.signedOut", nil))

	got := T(LocaleEN, "status.loginFailed", Params{"reason": "bad credentials"})
	require.Equal(t, "Login failed: bad credentials", got)

	got = T(LocaleZH, "status.usersLoaded", Params{"count": 7})
	require.Equal(t, "已加载 7 个用户。", got)
}

func TestCustomStatusPassthrough(t *testing.T) {
	t.Parallel()

	require.Equal(t, "anything", T(LocaleEN, "status.custom", Params{"text": "anything"}))
}

func TestFallbackChain(t *testing.T) {
	t.Parallel()

	// unknown locale falls back to english
	require.Equal(t, "Signed out.", T(Locale("fr"), "status.signedOut", nil))
	// unknown key falls back to the raw key
	require.Equal(t, "status.doesNotExist", T(LocaleEN, "status.doesNotExist", nil))
	require.Equal(t, "status.doesNotExist", T(LocaleZH, "status.doesNotExist", nil))
}

func TestDictionariesCoverSameKeys(t *testing.T) {
	t.Parallel()

	for key := range messages[LocaleEN] {
		_, ok := messages[LocaleZH][key]
		require.True(t, ok, "zh missing key %s", key)
	}
	for key := range messages[LocaleZH] {
		_, ok := messages[LocaleEN][key]
		require.True(t, ok, "en missing key %s", key)
	}
}

func TestDetect(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")

	t.Setenv("LANG", "zh_CN.UTF-8")
	require.Equal(t, LocaleZH, Detect())

	t.Setenv("LANG", "en_AU.UTF-8")
	require.Equal(t, LocaleEN, Detect())

	// LC_ALL wins over LANG
	t.Setenv("LC_ALL", "zh_TW.UTF-8")
	require.Equal(t, LocaleZH, Detect())
}

func TestParseAndToggle(t *testing.T) {
	t.Setenv("LC_ALL", "en_US.UTF-8")

	require.Equal(t, LocaleZH, Parse("zh"))
	require.Equal(t, LocaleEN, Parse("EN"))
	require.Equal(t, LocaleEN, Parse("auto"))
	require.Equal(t, LocaleZH, Toggle(LocaleEN))
	require.Equal(t, LocaleEN, Toggle(LocaleZH))
}
