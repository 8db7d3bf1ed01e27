package tree

import (
	"testing"

	"github.com/boazy/ybb/internal/geometry"
)

func TestSerializeSplit(t *testing.T) {
	root := &Split{
		Axis:   geometry.Vertical,
		First:  win(1, 0, 0, 450, 600),
		Second: win(2, 450, 0, 450, 600),
		Frame:  geometry.Frame{X: 0, Y: 0, W: 900, H: 600},
	}

	s := Serialize(root)
	if s.Type != "split" || s.Axis != geometry.Vertical || len(s.Children) != 2 {
		t.Fatalf("unexpected serialization: %+v", s)
	}
	if s.Children[0].Type != "window" || s.Children[0].ID != 1 {
		t.Fatalf("unexpected first child: %+v", s.Children[0])
	}
}

func TestSerializeStackMembersInOrder(t *testing.T) {
	stack := &Stack{
		Windows: []*Window{win(4, 0, 0, 450, 600), win(5, 0, 0, 450, 600)},
		Frame:   geometry.Frame{X: 0, Y: 0, W: 450, H: 600},
	}

	s := Serialize(stack)
	if s.Type != "stack" || len(s.Members) != 2 {
		t.Fatalf("unexpected serialization: %+v", s)
	}
	if s.Members[0].ID != 4 || s.Members[1].ID != 5 {
		t.Fatalf("member order lost: %+v", s.Members)
	}
}

func TestSerializeCollapsesSingleWindowStack(t *testing.T) {
	stack := &Stack{
		Windows: []*Window{win(7, 0, 0, 900, 600)},
		Frame:   geometry.Frame{X: 0, Y: 0, W: 900, H: 600},
	}

	s := Serialize(stack)
	if s.Type != "window" || s.ID != 7 {
		t.Fatalf("expected the lone member itself, got %+v", s)
	}
}
