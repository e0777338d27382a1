package enumset_test

import (
	"testing"

	"github.com/acortes/studytrack/internal/domain/enumset"
	"github.com/stretchr/testify/require"
)

func TestSet_RegisterAndContains(t *testing.T) {
	s := enumset.New("math", "science")

	require.True(t, s.Contains("math"))
	require.True(t, s.Contains("  MATH "))
	require.False(t, s.Contains("history"))

	require.True(t, s.Register("History"))
	require.True(t, s.Contains("history"))
	require.False(t, s.Register("history"), "already registered")
	require.False(t, s.Register("   "), "blank values are not registrable")

	require.Equal(t, []string{"math", "science", "history"}, s.Values())
}
