package convert

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Faultbox/daexport/pkg/rig"
)

// Describe prints a human-readable summary of s: mesh sizes, the joint tree
// with bind positions, each joint indented under its parent, skin controllers and animation channels.
func Describe(w io.Writer, s *rig.Scene) {
	fmt.Fprintf(w, "Meshes: %d\n", len(s.Meshes))
	for _, m := range s.Meshes {
		fmt.Fprintf(w, "  %s [%d vertex] [%d normal] [%d uv] [%d face]\n",
			m.Name, len(m.Positions), len(m.Normals), len(m.UVs), len(m.Faces))
	}

	skel := s.Skeleton
	fmt.Fprintf(w, "Joints: %d\n", skel.Len())
	globals := skel.GlobalMatrices()
	var walk func(i, depth int)
	walk = func(i, depth int) {
		j := skel.Joints[i]
		pos := globals[i].Col(3).Vec3()
		at := formatVec(pos[:])
		indent := strings.Repeat("  ", depth+1)
		if p := skel.ParentIndex(i); p == rig.NoParent {
			fmt.Fprintf(w, "%sJoint %q (%d) is root at %s\n", indent, j.Name, i, at)
		} else {
			fmt.Fprintf(w, "%sJoint %q (%d) is child of %q (%d) at %s\n", indent, j.Name, i, j.Parent, p, at)
		}
		for _, c := range skel.Children(i) {
			walk(c, depth+1)
		}
	}
	for i := range skel.Joints {
		if skel.ParentIndex(i) == rig.NoParent {
			walk(i, 0)
		}
	}

	fmt.Fprintf(w, "Skins: %d\n", len(s.Skins))
	for _, e := range s.Skins {
		fmt.Fprintf(w, "  %s -> %s [%d joint] [%d vertex]\n",
			e.Controller, e.Geometry, len(e.JointNames), len(e.Influences))
	}

	fmt.Fprintf(w, "Animations: %d\n", len(s.Animations))
	for _, a := range s.Animations {
		fmt.Fprintf(w, "  Joint %q (%d) [%d key] %s\n",
			skel.Joints[a.Joint].Name, a.Joint, len(a.Times), formatVec(a.Times))
	}
}

func formatVec(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
