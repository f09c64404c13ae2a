// Package ascii writes extracted rig models as flat text files and reads
// the skeleton and animation files back.
//
// Line position is meaningful in every file: line k of
// skeleton_joint_name.txt is joint k, line v of skinning_weight.txt is
// vertex v. Writers preserve model order exactly.
package ascii

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Export errors.
var (
	ErrOutputPath    = errors.New("cannot write output")
	ErrMalformedFile = errors.New("malformed ascii file")
)

// File and directory names of the export layout.
const (
	MeshFile = "mesh.obj"

	SkeletonJointNameFile   = "skeleton_joint_name.txt"
	SkeletonParentIndexFile = "skeleton_parent_index.txt"
	SkeletonJointMatrixFile = "skeleton_joint_matrix.txt"

	SkinningBindMatrixFile        = "skinning_global_bind_matrix.txt"
	SkinningJointNameFile         = "skinning_joint_name_dependence.txt"
	SkinningRigToSkeletonFile     = "skinning_joint_rig_index_to_skeleton_index.txt"
	SkinningInverseBindMatrixFile = "skinning_inverse_bind_matrix.txt"
	SkinningJointFile             = "skinning_joint.txt"
	SkinningWeightFile            = "skinning_weight.txt"

	AnimationDir            = "animation"
	AnimationJointIndexFile = "skeleton_animation_joint_index.txt"
	AnimationTimingFile     = "skeleton_animation_timing.txt"
	AnimationMatrixFile     = "skeleton_animation_matrix.txt"
)

// MeshDirPrefix starts the name of every mesh directory.
const MeshDirPrefix = "mesh-"

const (
	meshNameSuffix = "-lib"

	dirPerm os.FileMode = 0755
)

// MeshDirName maps a geometry id to its output directory name:
// "Body-lib" becomes "mesh-body".
func MeshDirName(geometryID string) string {
	return MeshDirPrefix + strings.ToLower(strings.ReplaceAll(geometryID, meshNameSuffix, ""))
}

// PrepareOutputDir creates dir if needed and checks that it is a directory.
func PrepareOutputDir(dir string) error {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputPath, err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOutputPath, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrOutputPath, dir)
	}
	return nil
}

// writeFile creates path and hands fill a buffered writer. The file is
// closed on every path; a close error is reported if nothing failed first.
func writeFile(path string, fill func(w *bufio.Writer)) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOutputPath, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %v", ErrOutputPath, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	fill(w)
	if err := w.Flush(); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrOutputPath, filepath.Base(path), err)
	}
	return nil
}

// formatFloat returns the shortest text that parses back to v, always
// marked as a float: "1.0", "0.25", "1e-07", "1e+16". Values read from the
// document are written from their source tokens instead.
func formatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	sci := strconv.FormatFloat(v, 'e', -1, 64)
	exp, _ := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if exp < -4 || exp >= 16 {
		return sci
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// tokens returns text when it carries one token per value, and the
// formatted values otherwise.
func tokens(text []string, values ...float64) []string {
	if len(text) == len(values) {
		return text
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = formatFloat(v)
	}
	return out
}

// writeTokens writes each token followed by a space.
func writeTokens(w io.StringWriter, toks []string) {
	for _, t := range toks {
		w.WriteString(t)
		w.WriteString(" ")
	}
}

// writeFloats writes each value followed by a space.
func writeFloats(w io.StringWriter, values []float64) {
	writeTokens(w, tokens(nil, values...))
}

// writeInts writes each value followed by a space.
func writeInts(w io.StringWriter, values []int) {
	for _, v := range values {
		w.WriteString(strconv.Itoa(v))
		w.WriteString(" ")
	}
}
