package lexicon

// trie maps literal words and wildcard prefixes to entries. A node holds
// at most one exact terminal and one wildcard terminal.
type trie struct {
	root *trieNode
}

type trieNode struct {
	exact    *Entry
	wild     *Entry
	children map[byte]*trieNode
}

func newTrie() *trie {
	return &trie{root: &trieNode{children: map[byte]*trieNode{}}}
}

// insert registers e under its literal prefix. When two wildcard words
// share a prefix (e.g. "ab*" and "ab*c") the first one inserted keeps
// the node.
func (t *trie) insert(e *Entry) {
	cur := t.root
	for i := 0; i < len(e.Prefix); i++ {
		next, ok := cur.children[e.Prefix[i]]
		if !ok {
			next = &trieNode{children: map[byte]*trieNode{}}
			cur.children[e.Prefix[i]] = next
		}
		cur = next
	}

	if e.Wildcard {
		if cur.wild == nil {
			cur.wild = e
		}
		return
	}
	cur.exact = e
}

// find returns the exact entry for key if there is one, otherwise the
// wildcard entry with the longest prefix of key.
func (t *trie) find(key string) *Entry {
	cur := t.root
	var best *Entry
	for i := 0; i < len(key); i++ {
		if cur.wild != nil {
			best = cur.wild
		}
		next, ok := cur.children[key[i]]
		if !ok {
			return best
		}
		cur = next
	}
	if cur.exact != nil {
		return cur.exact
	}
	if cur.wild != nil {
		return cur.wild
	}
	return best
}
