package tree

import "github.com/boazy/ybb/internal/geometry"

// SerialNode is the nested view of a tree handed to structured output:
// splits carry an axis and two children, stacks carry ordered members,
// windows carry their identity.
type SerialNode struct {
	Type     string         `json:"type"`
	ID       int            `json:"id,omitempty"`
	App      string         `json:"app,omitempty"`
	Title    string         `json:"title,omitempty"`
	Axis     geometry.Axis  `json:"axis,omitempty"`
	Frame    geometry.Frame `json:"frame"`
	Children []*SerialNode  `json:"children,omitempty"`
	Members  []*SerialNode  `json:"members,omitempty"`
}

// Serialize converts a tree into its serializable view. Single-window
// stacks collapse into the window itself.
func Serialize(n Node) *SerialNode {
	switch v := n.(type) {
	case *Window:
		return &SerialNode{Type: "window", ID: v.ID, App: v.App, Title: v.Title, Frame: v.Frame}
	case *Stack:
		if len(v.Windows) == 1 {
			return Serialize(v.Windows[0])
		}
		members := make([]*SerialNode, len(v.Windows))
		for i, w := range v.Windows {
			members[i] = Serialize(w)
		}
		return &SerialNode{Type: "stack", Frame: v.Frame, Members: members}
	case *Split:
		return &SerialNode{
			Type:     "split",
			Axis:     v.Axis,
			Frame:    v.Frame,
			Children: []*SerialNode{Serialize(v.First), Serialize(v.Second)},
		}
	}
	return nil
}
