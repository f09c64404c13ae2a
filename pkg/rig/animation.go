package rig

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/daexport/pkg/collada"
)

// Animation sources are told apart by the suffix of their id. Only baked
// matrix outputs are supported.
const (
	SuffixInput           = "-input"
	SuffixOutputTransform = "-output-transform"
)

// AnimationEntry is the keyframed transform of one joint.
type AnimationEntry struct {
	Joint    int // skeleton index
	Times    []float64
	Matrices []mgl64.Mat4 // one per entry in Times

	TimesText    []string
	MatricesText Text
}

// ExtractAnimations extracts one entry per animated joint, in document
// order. Grouping <animation> elements that only hold other animations are
// flattened.
func ExtractAnimations(doc *collada.Document, skel *Skeleton) ([]*AnimationEntry, error) {
	var channels []*collada.Node
	for _, a := range doc.Library("library_animations", "animation") {
		channels = appendChannels(channels, a)
	}

	entries := make([]*AnimationEntry, 0, len(channels))
	animated := make(map[int]string, len(channels))
	for _, ch := range channels {
		entry, err := ExtractAnimation(ch, skel)
		if err != nil {
			return nil, err
		}
		if prev, dup := animated[entry.Joint]; dup {
			return nil, fmt.Errorf("%w: %q already animated by %q", ErrDuplicateChannel, skel.Joints[entry.Joint].Name, prev)
		}
		animated[entry.Joint] = ch.ID()
		entries = append(entries, entry)
	}
	return entries, nil
}

func appendChannels(dst []*collada.Node, a *collada.Node) []*collada.Node {
	nested := a.Children("animation")
	if len(nested) > 0 && a.Child("source") == nil {
		for _, n := range nested {
			dst = appendChannels(dst, n)
		}
		return dst
	}
	return append(dst, a)
}

// ExtractAnimation reads one joint's channel. The joint is named by the
// animation's name attribute, or failing that by the target of its
// <channel>. A joint missing from skel is an error.
func ExtractAnimation(anim *collada.Node, skel *Skeleton) (*AnimationEntry, error) {
	name := channelJoint(anim)
	joint, err := skel.Resolve(name)
	if err != nil {
		return nil, fmt.Errorf("animation %q: %w", anim.ID(), err)
	}

	var (
		entry      = &AnimationEntry{Joint: joint}
		hasTimes   bool
		hasOutputs bool
	)
	for _, src := range anim.Children("source") {
		sid := src.ID()
		switch {
		case strings.HasSuffix(sid, SuffixInput):
			values := src.Child("float_array")
			entry.Times, err = values.Floats()
			if err != nil {
				return nil, fmt.Errorf("animation %q: times: %w", name, err)
			}
			entry.TimesText = values.Tokens()
			hasTimes = true
		case strings.HasSuffix(sid, SuffixOutputTransform):
			entry.Matrices, entry.MatricesText, err = readMatrices(src.Child("float_array"))
			if err != nil {
				return nil, fmt.Errorf("animation %q: transforms: %w", name, err)
			}
			hasOutputs = true
		}
	}

	if !hasTimes {
		return nil, fmt.Errorf("%w: animation %q has no %s source", ErrMissingAnimationData, name, SuffixInput)
	}
	if !hasOutputs {
		return nil, fmt.Errorf("%w: animation %q has no %s source", ErrMissingAnimationData, name, SuffixOutputTransform)
	}
	if len(entry.Times) != len(entry.Matrices) {
		return nil, fmt.Errorf("%w: animation %q has %d times but %d transforms",
			collada.ErrMalformedArray, name, len(entry.Times), len(entry.Matrices))
	}
	return entry, nil
}

func channelJoint(anim *collada.Node) string {
	if name := anim.Name(); name != "" {
		return name
	}
	target := anim.Child("channel").Attr("target")
	if i := strings.IndexByte(target, '/'); i >= 0 {
		target = target[:i]
	}
	return target
}
