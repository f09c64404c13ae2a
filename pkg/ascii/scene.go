package ascii

import (
	"fmt"
	"path/filepath"

	"github.com/Faultbox/daexport/pkg/rig"
)

// Parts selects which models WriteScene exports.
type Parts struct {
	Meshes    bool
	Skeleton  bool
	Skinning  bool
	Animation bool
}

// AllParts exports everything.
var AllParts = Parts{Meshes: true, Skeleton: true, Skinning: true, Animation: true}

// WriteScene writes the selected models of s under dir. Meshes and skins go
// to their mesh directory, the skeleton to dir itself and animation to
// dir/animation. An empty skeleton or animation list writes nothing.
func WriteScene(dir string, s *rig.Scene, parts Parts) error {
	if parts.Meshes {
		for _, m := range s.Meshes {
			if err := WriteMesh(filepath.Join(dir, MeshDirName(m.Name)), m); err != nil {
				return fmt.Errorf("mesh %q: %w", m.Name, err)
			}
		}
	}

	if parts.Skeleton && s.Skeleton != nil && s.Skeleton.Len() > 0 {
		if err := WriteSkeleton(dir, s.Skeleton); err != nil {
			return fmt.Errorf("skeleton: %w", err)
		}
	}

	if parts.Skinning {
		for _, e := range s.Skins {
			if err := WriteSkinning(filepath.Join(dir, MeshDirName(e.Geometry)), e); err != nil {
				return fmt.Errorf("controller %q: %w", e.Controller, err)
			}
		}
	}

	if parts.Animation && len(s.Animations) > 0 {
		if err := WriteAnimation(dir, s.Animations); err != nil {
			return fmt.Errorf("animation: %w", err)
		}
	}
	return nil
}
