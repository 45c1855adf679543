package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGravatarURL(t *testing.T) {
	url := GravatarURL("a@b.co")

	require.Contains(t, url, "https://www.gravatar.com/avatar/")
	require.Contains(t, url, "s=40")

	// Gravatar hashes the lowercased address, so case must not matter.
	require.Equal(t, url, GravatarURL("A@B.Co"))
}
