package ascii

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Faultbox/daexport/pkg/rig"
)

// WriteSkinning writes the skin binding of one mesh into dir, normally the
// mesh's own directory.
func WriteSkinning(dir string, e *rig.SkinningEntry) error {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputPath, err)
	}

	files := []struct {
		name string
		fill func(w *bufio.Writer)
	}{
		{SkinningBindMatrixFile, func(w *bufio.Writer) {
			m := rig.RowMajor(e.BindShape)
			writeTokens(w, tokens(e.BindShapeText, m[:]...))
		}},
		{SkinningJointNameFile, func(w *bufio.Writer) {
			for _, name := range e.JointNames {
				w.WriteString(name)
				w.WriteString("\n")
			}
		}},
		{SkinningRigToSkeletonFile, func(w *bufio.Writer) {
			writeInts(w, e.JointToSkeleton)
		}},
		{SkinningInverseBindMatrixFile, func(w *bufio.Writer) {
			for i, inv := range e.InverseBind {
				m := rig.RowMajor(inv)
				writeTokens(w, tokens(e.InverseBindText.Row(i), m[:]...))
				w.WriteString("\n")
			}
		}},
		{SkinningJointFile, func(w *bufio.Writer) {
			for _, list := range e.Influences {
				for _, inf := range list {
					fmt.Fprintf(w, "%d ", inf.Joint)
				}
				w.WriteString("\n")
			}
		}},
		{SkinningWeightFile, func(w *bufio.Writer) {
			for _, list := range e.Influences {
				for _, inf := range list {
					w.WriteString(formatFloat(inf.Weight))
					w.WriteString(" ")
				}
				w.WriteString("\n")
			}
		}},
	}

	for _, f := range files {
		if err := writeFile(filepath.Join(dir, f.name), f.fill); err != nil {
			return err
		}
	}
	return nil
}
