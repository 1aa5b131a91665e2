package suggest

import (
	"sort"
	"strings"
)

// trieNode is one node of the prefix tree.
type trieNode struct {
	children map[rune]*trieNode
	terminal bool
	word     string
}

// Trie is a prefix tree for case-insensitive prefix search. Words are folded
// to lower case on insert and lookup.
type Trie struct {
	root *trieNode
}

// NewTrie creates an empty trie.
func NewTrie() *Trie {
	return &Trie{root: &trieNode{children: make(map[rune]*trieNode)}}
}

// Insert adds a word to the trie.
func (t *Trie) Insert(word string) {
	word = strings.ToLower(word)
	current := t.root
	for _, char := range word {
		if current.children[char] == nil {
			current.children[char] = &trieNode{children: make(map[rune]*trieNode)}
		}
		current = current.children[char]
	}
	current.terminal = true
	current.word = word
}

// Find returns all stored words starting with the given prefix, sorted.
func (t *Trie) Find(prefix string) []string {
	current := t.root
	for _, char := range strings.ToLower(prefix) {
		if current.children[char] == nil {
			return []string{}
		}
		current = current.children[char]
	}

	var results []string
	collectWords(current, &results)
	sort.Strings(results)
	return results
}

// collectWords walks the subtree and gathers every terminal word.
func collectWords(node *trieNode, results *[]string) {
	if node.terminal {
		*results = append(*results, node.word)
	}
	for _, child := range node.children {
		collectWords(child, results)
	}
}
