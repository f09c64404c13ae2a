package ascii

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Faultbox/daexport/pkg/rig"
)

// WriteAnimation writes the animation entries into dir/animation. Line k of
// the timing and matrix files belongs to the k-th joint index listed.
func WriteAnimation(dir string, entries []*rig.AnimationEntry) error {
	animDir := filepath.Join(dir, AnimationDir)
	if err := os.MkdirAll(animDir, dirPerm); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputPath, err)
	}

	err := writeFile(filepath.Join(animDir, AnimationJointIndexFile), func(w *bufio.Writer) {
		for _, e := range entries {
			fmt.Fprintf(w, "%d ", e.Joint)
		}
	})
	if err != nil {
		return err
	}

	err = writeFile(filepath.Join(animDir, AnimationTimingFile), func(w *bufio.Writer) {
		for _, e := range entries {
			writeTokens(w, tokens(e.TimesText, e.Times...))
			w.WriteString("\n")
		}
	})
	if err != nil {
		return err
	}

	return writeFile(filepath.Join(animDir, AnimationMatrixFile), func(w *bufio.Writer) {
		for _, e := range entries {
			for i, key := range e.Matrices {
				m := rig.RowMajor(key)
				writeTokens(w, tokens(e.MatricesText.Row(i), m[:]...))
			}
			w.WriteString("\n")
		}
	})
}
