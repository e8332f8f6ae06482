package ast

// OutlineNode is a plain summary of a tree, suitable for YAML or JSON
// marshalling.
type OutlineNode struct {
	Kind     string         `json:"kind" yaml:"kind"`
	Text     string         `json:"text,omitempty" yaml:"text,omitempty"`
	Children []*OutlineNode `json:"children,omitempty" yaml:"children,omitempty"`
}

// Outline returns the outline of n.  Text holds what distinguishes n from
// other nodes of its kind apart from its children.
func Outline(n Node) *OutlineNode {
	res := &OutlineNode{Kind: n.Kind().String(), Text: n.label()}
	switch x := n.(type) {
	case *DefinedPlainTerm:
		res.Text = x.Functor.String()
	case *SystemTerm:
		res.Text = x.Functor.String()
	}
	for _, k := range n.children() {
		res.Children = append(res.Children, Outline(k))
	}
	return res
}
