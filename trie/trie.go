// Package trie implements a prefix tree over lowercase ASCII words.
//
// Each node holds one child slot per letter 'a' through 'z', so lookups
// cost one array index per character of the query.
//
//	t := trie.New()
//	_ = t.Insert("apple")
//	t.Search("apple")   // true
//	t.StartsWith("app") // true
package trie

import (
	"errors"
	"fmt"
)

// AlphabetSize is the number of child slots per node.
const AlphabetSize = 26

// ErrInvalidCharacter is returned when a word contains a byte outside a-z.
var ErrInvalidCharacter = errors.New("trie: invalid character")

type node struct {
	children [AlphabetSize]*node
	terminal bool
}

// Trie stores a set of lowercase words. The zero value is not usable; call [New].
type Trie struct {
	root  *node
	words int
}

// New returns an empty trie.
func New() *Trie {
	return &Trie{root: &node{}}
}

// index maps c to its child slot, or -1 if c is not a lowercase letter.
func index(c byte) int {
	if c < 'a' || c > 'z' {
		return -1
	}
	return int(c - 'a')
}

// validate returns an error naming the first byte of word outside a-z.
func validate(word string) error {
	for i := 0; i < len(word); i++ {
		if index(word[i]) < 0 {
			return fmt.Errorf("%w %q at position %d", ErrInvalidCharacter, word[i], i)
		}
	}
	return nil
}

// Insert adds word to the trie. Inserting a word twice is a no-op. The empty
// word is stored at the root. A word containing anything other than a-z is
// rejected and the trie is left unchanged.
func (t *Trie) Insert(word string) error {
	if err := validate(word); err != nil {
		return err
	}
	n := t.root
	for i := 0; i < len(word); i++ {
		idx := index(word[i])
		if n.children[idx] == nil {
			n.children[idx] = &node{}
		}
		n = n.children[idx]
	}
	if !n.terminal {
		n.terminal = true
		t.words++
	}
	return nil
}

// find returns the node reached by following s from the root, or nil.
func (t *Trie) find(s string) *node {
	n := t.root
	for i := 0; i < len(s); i++ {
		idx := index(s[i])
		if idx < 0 {
			return nil
		}
		n = n.children[idx]
		if n == nil {
			return nil
		}
	}
	return n
}

// Search reports whether word was inserted.
func (t *Trie) Search(word string) bool {
	n := t.find(word)
	return n != nil && n.terminal
}

// StartsWith reports whether any inserted word begins with prefix.
// Every trie starts with the empty prefix.
func (t *Trie) StartsWith(prefix string) bool {
	return t.find(prefix) != nil
}

// Len returns the number of distinct words stored.
func (t *Trie) Len() int { return t.words }

// WithPrefix returns every stored word that begins with prefix, in
// lexicographic order. It returns nil when there are none.
func (t *Trie) WithPrefix(prefix string) []string {
	n := t.find(prefix)
	if n == nil {
		return nil
	}
	var out []string
	collect(n, []byte(prefix), &out)
	return out
}

// collect appends the words below n in depth-first, a-to-z order. Visiting
// children in slot order yields lexicographic output.
func collect(n *node, path []byte, out *[]string) {
	if n.terminal {
		*out = append(*out, string(path))
	}
	for i, c := range n.children {
		if c == nil {
			continue
		}
		collect(c, append(path, byte('a'+i)), out)
	}
}
