package ascii

import (
	"bufio"
	"path/filepath"

	"github.com/Faultbox/daexport/pkg/rig"
)

// WriteSkeleton writes the joint names, parent indices and local matrices
// of s into dir.
func WriteSkeleton(dir string, s *rig.Skeleton) error {
	err := writeFile(filepath.Join(dir, SkeletonJointNameFile), func(w *bufio.Writer) {
		for _, j := range s.Joints {
			w.WriteString(j.Name)
			w.WriteString("\n")
		}
	})
	if err != nil {
		return err
	}

	err = writeFile(filepath.Join(dir, SkeletonParentIndexFile), func(w *bufio.Writer) {
		writeInts(w, s.ParentIndices())
	})
	if err != nil {
		return err
	}

	return writeFile(filepath.Join(dir, SkeletonJointMatrixFile), func(w *bufio.Writer) {
		for _, j := range s.Joints {
			m := rig.RowMajor(j.Local)
			writeFloats(w, m[:])
			w.WriteString("\n")
		}
	})
}
