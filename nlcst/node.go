// Package nlcst models natural language syntax trees: sentences made of
// words, white space, and punctuation.
package nlcst

import "strings"

// Kind discriminates the node types found in a syntax tree.
type Kind string

const (
	KindRoot        Kind = "RootNode"
	KindParagraph   Kind = "ParagraphNode"
	KindSentence    Kind = "SentenceNode"
	KindWord        Kind = "WordNode"
	KindText        Kind = "TextNode"
	KindWhiteSpace  Kind = "WhiteSpaceNode"
	KindPunctuation Kind = "PunctuationNode"
	KindSymbol      Kind = "SymbolNode"
	KindSource      Kind = "SourceNode"
)

// Node is a single syntax tree node. Parent kinds (root, paragraph, sentence,
// word) carry Children; literal kinds carry Value.
type Node struct {
	Kind     Kind    `json:"type"`
	Value    string  `json:"value,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

// IsParent reports whether the node kind holds children.
func (n *Node) IsParent() bool {
	switch n.Kind {
	case KindRoot, KindParagraph, KindSentence, KindWord:
		return true
	}
	return false
}

// Root constructs a root node.
func Root(children ...*Node) *Node { return &Node{Kind: KindRoot, Children: children} }

// Paragraph constructs a paragraph node.
func Paragraph(children ...*Node) *Node { return &Node{Kind: KindParagraph, Children: children} }

// Sentence constructs a sentence node.
func Sentence(children ...*Node) *Node { return &Node{Kind: KindSentence, Children: children} }

// Word constructs a word from its text, punctuation, and symbol parts.
func Word(parts ...*Node) *Node { return &Node{Kind: KindWord, Children: parts} }

// WordOf constructs a word holding a single text node.
func WordOf(text string) *Node { return Word(Text(text)) }

func Text(value string) *Node        { return &Node{Kind: KindText, Value: value} }
func WhiteSpace(value string) *Node  { return &Node{Kind: KindWhiteSpace, Value: value} }
func Punctuation(value string) *Node { return &Node{Kind: KindPunctuation, Value: value} }
func Symbol(value string) *Node      { return &Node{Kind: KindSymbol, Value: value} }
func Source(value string) *Node      { return &Node{Kind: KindSource, Value: value} }

// ToString returns the text content of a node: its own value for literal
// nodes, or the concatenated values of its descendants.
func ToString(n *Node) string {
	if n == nil {
		return ""
	}
	if len(n.Children) == 0 {
		return n.Value
	}
	var b strings.Builder
	writeString(&b, n)
	return b.String()
}

func writeString(b *strings.Builder, n *Node) {
	if len(n.Children) == 0 {
		b.WriteString(n.Value)
		return
	}
	for _, child := range n.Children {
		writeString(b, child)
	}
}
