// Package trie provides the prefix tree used for autocomplete lookups.
package trie

import (
	"sort"
	"unicode/utf8"
)

// Trie stores words as rune paths from a shared root.
// A Trie is not safe for concurrent mutation; see Index for a guarded wrapper.
type Trie struct {
	root  *node
	words int
}

// node holds its children sorted by rune so traversal order is deterministic
type node struct {
	children []edge
	terminal bool
}

type edge struct {
	r    rune
	next *node
}

// New creates an empty trie
func New() *Trie {
	return &Trie{root: new(node)}
}

// child returns the child reached by r, or nil
func (n *node) child(r rune) *node {
	i := sort.Search(len(n.children), func(i int) bool { return n.children[i].r >= r })
	if i < len(n.children) && n.children[i].r == r {
		return n.children[i].next
	}
	return nil
}

// childOrCreate returns the child reached by r, inserting it in order when absent
func (n *node) childOrCreate(r rune) *node {
	i := sort.Search(len(n.children), func(i int) bool { return n.children[i].r >= r })
	if i < len(n.children) && n.children[i].r == r {
		return n.children[i].next
	}
	next := new(node)
	n.children = append(n.children, edge{})
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = edge{r: r, next: next}
	return next
}

// Insert adds word. Inserting a word twice has no further effect.
func (t *Trie) Insert(word string) {
	current := t.root
	for _, r := range word {
		current = current.childOrCreate(r)
	}
	if !current.terminal {
		current.terminal = true
		t.words++
	}
}

// Len returns the number of distinct words stored
func (t *Trie) Len() int {
	return t.words
}

// Contains reports whether word was inserted
func (t *Trie) Contains(word string) bool {
	n := t.walk(word)
	return n != nil && n.terminal
}

// StartsWith returns every stored word that has prefix as a literal prefix,
// in ascending rune order. It returns an empty slice when nothing matches.
func (t *Trie) StartsWith(prefix string) []string {
	n := t.walk(prefix)
	if n == nil {
		return []string{}
	}
	return collect(n, prefix)
}

func (t *Trie) walk(prefix string) *node {
	current := t.root
	for _, r := range prefix {
		if current = current.child(r); current == nil {
			return nil
		}
	}
	return current
}

// collect gathers the words below start depth-first with an explicit stack.
// Children are pushed in reverse so the smallest rune is visited first.
func collect(start *node, prefix string) []string {
	type frame struct {
		n    *node
		word []byte
	}

	words := []string{}
	stack := []frame{{n: start, word: []byte(prefix)}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.n.terminal {
			words = append(words, string(top.word))
		}
		for i := len(top.n.children) - 1; i >= 0; i-- {
			e := top.n.children[i]
			word := make([]byte, len(top.word), len(top.word)+utf8.UTFMax)
			copy(word, top.word)
			stack = append(stack, frame{n: e.next, word: utf8.AppendRune(word, e.r)})
		}
	}
	return words
}
