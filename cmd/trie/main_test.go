package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TrevorS/exercises/trie"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDefaults(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, `Search("apple"): true
Search("app"): true
Search("appl"): false
StartsWith("app"): true
StartsWith("ap"): true
`, out)
}

func TestCustomWordsAndList(t *testing.T) {
	out, err := execute(t, "tea", "ten", "to", "--search", "te,ten", "--prefix", "te,x", "--list")
	require.NoError(t, err)
	assert.Equal(t, `Search("te"): false
Search("ten"): true
StartsWith("te"): true
  tea ten
StartsWith("x"): false
  (none)
`, out)
}

func TestInvalidWord(t *testing.T) {
	_, err := execute(t, "ok", "Bad")
	require.Error(t, err)
	assert.True(t, errors.Is(err, trie.ErrInvalidCharacter))
}
