package mdrender_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/mdrender"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotSupportedError(t *testing.T) {
	t.Parallel()
	err := fmt.Errorf("post.md: %w", mdrender.NotSupported(mdrender.TargetWML, mdrender.MediaYouTube))

	assert.ErrorIs(t, err, mdrender.ErrNotSupported)
	var ns *mdrender.NotSupportedError
	require.True(t, errors.As(err, &ns))
	assert.Equal(t, mdrender.TargetWML, ns.Target)
	assert.Equal(t, mdrender.MediaYouTube, ns.Media)
	assert.Equal(t, "post.md: wml target cannot render YouTube video: render not supported", err.Error())
}

func TestMalformedInputError(t *testing.T) {
	t.Parallel()

	err := &mdrender.MalformedInputError{Path: []int{0, 2}, Kind: mdrender.KindList, Reason: "bad"}
	assert.ErrorIs(t, err, mdrender.ErrMalformedInput)
	assert.Equal(t, "malformed input at /0/2 (list): bad", err.Error())

	root := &mdrender.MalformedInputError{Reason: "nil tree"}
	assert.Equal(t, "malformed input at / (document): nil tree", root.Error())
}

func TestParseTargetID(t *testing.T) {
	t.Parallel()
	for _, id := range mdrender.AllTargets() {
		got, err := mdrender.ParseTargetID(string(id))
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}

	_, err := mdrender.ParseTargetID("HTML5")
	assert.ErrorIs(t, err, mdrender.ErrUnknownTarget)
	_, err = mdrender.ParseTargetID("")
	assert.ErrorIs(t, err, mdrender.ErrUnknownTarget)
}
