package rig

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/daexport/pkg/collada"
)

// Skin sources are told apart by the suffix of their id.
const (
	SuffixJoints   = "-Joints"
	SuffixWeights  = "-Weights"
	SuffixMatrices = "-Matrices"
)

// influenceStride is the width of one (joint slot, weight index) pair in
// the <v> stream.
const influenceStride = 2

// Influence binds a vertex to one controller joint slot.
type Influence struct {
	Joint  int // index into SkinningEntry.JointNames
	Weight float64
}

// SkinningEntry is the skin binding of one mesh. Weights are kept exactly as
// authored; they are not renormalized per vertex.
type SkinningEntry struct {
	Controller      string
	Geometry        string // target geometry id, without the leading '#'
	BindShape       mgl64.Mat4
	JointNames      []string
	JointToSkeleton []int
	InverseBind     []mgl64.Mat4 // aligned with JointNames
	Influences      [][]Influence

	BindShapeText   []string // empty when the document has no bind shape
	InverseBindText Text
}

// ExtractSkins extracts every <controller> carrying a <skin>. Other
// controller kinds are skipped. A geometry takes at most one skin.
func ExtractSkins(doc *collada.Document, skel *Skeleton) ([]*SkinningEntry, error) {
	var skins []*SkinningEntry
	skinned := make(map[string]string)
	for _, c := range doc.Library("library_controllers", "controller") {
		if c.Child("skin") == nil {
			continue
		}
		entry, err := ExtractSkin(c, skel)
		if err != nil {
			return nil, err
		}
		if prev, dup := skinned[entry.Geometry]; dup {
			return nil, fmt.Errorf("%w: %q skinned by %q and %q", ErrDuplicateSkin, entry.Geometry, prev, entry.Controller)
		}
		skinned[entry.Geometry] = entry.Controller
		skins = append(skins, entry)
	}
	return skins, nil
}

// ExtractSkin reads one skin controller and resolves its joints against skel.
func ExtractSkin(controller *collada.Node, skel *Skeleton) (*SkinningEntry, error) {
	id := controller.ID()
	skin := controller.Child("skin")
	if skin == nil {
		return nil, fmt.Errorf("%w: controller %q has no <skin>", ErrMissingSkinData, id)
	}

	entry := &SkinningEntry{
		Controller: id,
		Geometry:   strings.TrimPrefix(skin.Attr("source"), "#"),
	}

	bind, bindText, err := parseMatrix(skin.Child("bind_shape_matrix"))
	if err != nil {
		return nil, fmt.Errorf("controller %q: bind shape: %w", id, err)
	}
	entry.BindShape, entry.BindShapeText = bind, bindText

	var (
		weights                          []float64
		hasJoints, hasWeights, hasMatrix bool
	)
	for _, src := range skin.Children("source") {
		sid := src.ID()
		switch {
		case strings.HasSuffix(sid, SuffixJoints):
			names := src.Child("Name_array")
			if names == nil {
				names = src.Child("IDREF_array")
			}
			entry.JointNames = names.Tokens()
			hasJoints = true
		case strings.HasSuffix(sid, SuffixWeights):
			weights, err = src.Child("float_array").Floats()
			if err != nil {
				return nil, fmt.Errorf("controller %q: weights: %w", id, err)
			}
			hasWeights = true
		case strings.HasSuffix(sid, SuffixMatrices):
			entry.InverseBind, entry.InverseBindText, err = readMatrices(src.Child("float_array"))
			if err != nil {
				return nil, fmt.Errorf("controller %q: inverse bind matrices: %w", id, err)
			}
			hasMatrix = true
		}
	}

	switch {
	case !hasJoints:
		return nil, fmt.Errorf("%w: controller %q has no %s source", ErrMissingSkinData, id, SuffixJoints)
	case !hasWeights:
		return nil, fmt.Errorf("%w: controller %q has no %s source", ErrMissingSkinData, id, SuffixWeights)
	case !hasMatrix:
		return nil, fmt.Errorf("%w: controller %q has no %s source", ErrMissingSkinData, id, SuffixMatrices)
	}
	if len(entry.InverseBind) != len(entry.JointNames) {
		return nil, fmt.Errorf("%w: controller %q has %d joints but %d inverse bind matrices",
			collada.ErrMalformedArray, id, len(entry.JointNames), len(entry.InverseBind))
	}

	entry.JointToSkeleton = make([]int, len(entry.JointNames))
	for i, name := range entry.JointNames {
		idx, err := skel.Resolve(name)
		if err != nil {
			return nil, fmt.Errorf("controller %q: %w", id, err)
		}
		entry.JointToSkeleton[i] = idx
	}

	vw := skin.Child("vertex_weights")
	if vw == nil {
		return nil, fmt.Errorf("%w: controller %q has no <vertex_weights>", ErrMissingSkinData, id)
	}
	counts, err := vw.Child("vcount").Ints()
	if err != nil {
		return nil, fmt.Errorf("controller %q: vcount: %w", id, err)
	}
	stream, err := vw.Child("v").Ints()
	if err != nil {
		return nil, fmt.Errorf("controller %q: v: %w", id, err)
	}

	entry.Influences, err = decodeInfluences(counts, stream, weights, len(entry.JointNames))
	if err != nil {
		return nil, fmt.Errorf("controller %q: %w", id, err)
	}
	return entry, nil
}

// decodeInfluences walks the <v> stream, consuming counts[i] pairs for
// vertex i. The second element of each pair indexes the weight pool.
func decodeInfluences(counts, stream []int, weights []float64, joints int) ([][]Influence, error) {
	need := 0
	for i, c := range counts {
		if c < 0 {
			return nil, fmt.Errorf("%w: vertex %d has negative influence count %d", collada.ErrMalformedArray, i, c)
		}
		need += c
	}
	if len(stream) < need*influenceStride {
		return nil, fmt.Errorf("%w: %d influences need %d values, stream has %d",
			ErrTruncatedInfluenceStream, need, need*influenceStride, len(stream))
	}

	out := make([][]Influence, len(counts))
	cursor := 0
	for v, c := range counts {
		list := make([]Influence, c)
		for k := range list {
			slot, wi := stream[cursor], stream[cursor+1]
			cursor += influenceStride

			if slot < 0 || slot >= joints {
				return nil, fmt.Errorf("%w: vertex %d joint slot %d of %d", ErrIndexOutOfRange, v, slot, joints)
			}
			if wi < 0 || wi >= len(weights) {
				return nil, fmt.Errorf("%w: vertex %d weight index %d of %d", ErrIndexOutOfRange, v, wi, len(weights))
			}
			if weights[wi] < 0 {
				return nil, fmt.Errorf("%w: vertex %d has negative weight %v", collada.ErrMalformedArray, v, weights[wi])
			}
			list[k] = Influence{Joint: slot, Weight: weights[wi]}
		}
		out[v] = list
	}
	return out, nil
}
