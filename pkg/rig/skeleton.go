package rig

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/daexport/pkg/collada"
)

// NoParent is the parent index of the root joint.
const NoParent = -1

// JointType is the value of a scene node's type attribute for joints.
const JointType = "JOINT"

// Joint is one node of the skeleton.
type Joint struct {
	Name   string
	Parent string // empty for the root
	Local  mgl64.Mat4
}

// Skeleton is a joint hierarchy in breadth-first order: every joint's
// parent appears before it.
type Skeleton struct {
	Joints []Joint
	index  map[string]int
}

// NewSkeleton indexes joints by name. Names must be unique and every
// parent must name an earlier joint.
func NewSkeleton(joints []Joint) (*Skeleton, error) {
	s := &Skeleton{
		Joints: joints,
		index:  make(map[string]int, len(joints)),
	}
	for i, j := range joints {
		if _, dup := s.index[j.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateJointName, j.Name)
		}
		s.index[j.Name] = i
	}
	for i, j := range joints {
		if j.Parent == "" {
			if i != 0 {
				return nil, fmt.Errorf("%w: joint %q has no parent but is not the root", ErrUnresolvedJointName, j.Name)
			}
			continue
		}
		p, ok := s.index[j.Parent]
		if !ok || p >= i {
			return nil, fmt.Errorf("%w: parent %q of joint %q", ErrUnresolvedJointName, j.Parent, j.Name)
		}
	}
	return s, nil
}

// ExtractSkeleton builds the skeleton from the first visual scene. The root
// is the first top-level node typed JOINT, or the first node if none is.
// A document without a visual scene yields an empty skeleton.
func ExtractSkeleton(doc *collada.Document) (*Skeleton, error) {
	scenes := doc.Library("library_visual_scenes", "visual_scene")
	if len(scenes) == 0 {
		return NewSkeleton(nil)
	}
	nodes := scenes[0].Children("node")
	if len(nodes) == 0 {
		return NewSkeleton(nil)
	}

	root := nodes[0]
	for _, n := range nodes {
		if n.Attr("type") == JointType {
			root = n
			break
		}
	}
	return BuildSkeleton(root)
}

// BuildSkeleton walks the node tree under root breadth-first.
func BuildSkeleton(root *collada.Node) (*Skeleton, error) {
	type pending struct {
		node   *collada.Node
		parent string
	}

	var joints []Joint
	seen := make(map[string]bool)
	queue := []pending{{node: root}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		name := jointName(cur.node)
		if name == "" {
			return nil, fmt.Errorf("%w: child of %q", ErrUnnamedJoint, cur.parent)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateJointName, name)
		}
		seen[name] = true

		local, _, err := parseMatrix(cur.node.Child("matrix"))
		if err != nil {
			return nil, fmt.Errorf("joint %q: %w", name, err)
		}
		joints = append(joints, Joint{Name: name, Parent: cur.parent, Local: local})

		for _, child := range cur.node.Children("node") {
			queue = append(queue, pending{node: child, parent: name})
		}
	}

	return NewSkeleton(joints)
}

// jointName prefers the name attribute, falling back to sid then id.
func jointName(n *collada.Node) string {
	if name := n.Name(); name != "" {
		return name
	}
	if sid := n.Attr("sid"); sid != "" {
		return sid
	}
	return n.ID()
}

// Len returns the number of joints.
func (s *Skeleton) Len() int {
	return len(s.Joints)
}

// Index returns the index of the named joint.
func (s *Skeleton) Index(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// Resolve is Index for callers that must not continue with a missing joint.
func (s *Skeleton) Resolve(name string) (int, error) {
	i, ok := s.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnresolvedJointName, name)
	}
	return i, nil
}

// ParentIndex returns the index of joint i's parent, or NoParent.
func (s *Skeleton) ParentIndex(i int) int {
	if s.Joints[i].Parent == "" {
		return NoParent
	}
	return s.index[s.Joints[i].Parent]
}

// ParentIndices returns ParentIndex for every joint.
func (s *Skeleton) ParentIndices() []int {
	out := make([]int, len(s.Joints))
	for i := range s.Joints {
		out[i] = s.ParentIndex(i)
	}
	return out
}

// Children returns the indices of joint i's direct children.
func (s *Skeleton) Children(i int) []int {
	var out []int
	name := s.Joints[i].Name
	for k, j := range s.Joints {
		if k != i && j.Parent == name {
			out = append(out, k)
		}
	}
	return out
}

// GlobalMatrices composes local transforms from the root down, giving each
// joint's bind pose in model space.
func (s *Skeleton) GlobalMatrices() []mgl64.Mat4 {
	global := make([]mgl64.Mat4, len(s.Joints))
	for i, j := range s.Joints {
		p := s.ParentIndex(i)
		if p == NoParent {
			global[i] = j.Local
			continue
		}
		global[i] = global[p].Mul4(j.Local)
	}
	return global
}
