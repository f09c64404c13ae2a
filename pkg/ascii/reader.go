package ascii

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Faultbox/daexport/pkg/collada"
	"github.com/Faultbox/daexport/pkg/rig"
)

// ReadSkeleton loads the skeleton files written by WriteSkeleton.
func ReadSkeleton(dir string) (*rig.Skeleton, error) {
	names, err := readLines(filepath.Join(dir, SkeletonJointNameFile))
	if err != nil {
		return nil, err
	}
	parentText, err := os.ReadFile(filepath.Join(dir, SkeletonParentIndexFile))
	if err != nil {
		return nil, err
	}
	parents, err := collada.ParseInts(string(parentText))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedFile, SkeletonParentIndexFile, err)
	}
	matrixLines, err := readLines(filepath.Join(dir, SkeletonJointMatrixFile))
	if err != nil {
		return nil, err
	}

	if len(parents) != len(names) || len(matrixLines) != len(names) {
		return nil, fmt.Errorf("%w: %d joint names, %d parent indices, %d matrices",
			ErrMalformedFile, len(names), len(parents), len(matrixLines))
	}

	joints := make([]rig.Joint, len(names))
	for i, name := range names {
		joints[i].Name = name
		if p := parents[i]; p != rig.NoParent {
			if p < 0 || p >= i {
				return nil, fmt.Errorf("%w: joint %d (%s) has parent %d", ErrMalformedFile, i, name, p)
			}
			joints[i].Parent = names[p]
		}

		values, err := collada.ParseFloats(matrixLines[i])
		if err != nil || len(values) != rig.MatrixSize {
			return nil, fmt.Errorf("%w: %s line %d", ErrMalformedFile, SkeletonJointMatrixFile, i+1)
		}
		joints[i].Local = rig.FromRowMajor(values)
	}

	return rig.NewSkeleton(joints)
}

// ReadAnimation loads the files written by WriteAnimation from dir/animation.
func ReadAnimation(dir string) ([]*rig.AnimationEntry, error) {
	animDir := filepath.Join(dir, AnimationDir)

	indexText, err := os.ReadFile(filepath.Join(animDir, AnimationJointIndexFile))
	if err != nil {
		return nil, err
	}
	joints, err := collada.ParseInts(string(indexText))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedFile, AnimationJointIndexFile, err)
	}
	timing, err := readLines(filepath.Join(animDir, AnimationTimingFile))
	if err != nil {
		return nil, err
	}
	matrices, err := readLines(filepath.Join(animDir, AnimationMatrixFile))
	if err != nil {
		return nil, err
	}

	if len(timing) != len(joints) || len(matrices) != len(joints) {
		return nil, fmt.Errorf("%w: %d joint indices, %d timing lines, %d matrix lines",
			ErrMalformedFile, len(joints), len(timing), len(matrices))
	}

	entries := make([]*rig.AnimationEntry, len(joints))
	for k, joint := range joints {
		times, err := collada.ParseFloats(timing[k])
		if err != nil {
			return nil, fmt.Errorf("%w: %s line %d: %v", ErrMalformedFile, AnimationTimingFile, k+1, err)
		}
		values, err := collada.ParseFloats(matrices[k])
		if err != nil {
			return nil, fmt.Errorf("%w: %s line %d: %v", ErrMalformedFile, AnimationMatrixFile, k+1, err)
		}
		if len(values) != len(times)*rig.MatrixSize {
			return nil, fmt.Errorf("%w: joint %d has %d keyframes but %d matrix values",
				ErrMalformedFile, joint, len(times), len(values))
		}

		entry := &rig.AnimationEntry{Joint: joint, Times: times}
		for i := 0; i < len(times); i++ {
			entry.Matrices = append(entry.Matrices, rig.FromRowMajor(values[i*rig.MatrixSize:]))
		}
		entries[k] = entry
	}
	return entries, nil
}

// ReadJointMap loads the controller-slot to skeleton-index map written by
// WriteSkinning into meshDir.
func ReadJointMap(meshDir string) ([]int, error) {
	text, err := os.ReadFile(filepath.Join(meshDir, SkinningRigToSkeletonFile))
	if err != nil {
		return nil, err
	}
	joints, err := collada.ParseInts(string(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedFile, SkinningRigToSkeletonFile, err)
	}
	return joints, nil
}

// readLines splits a file into lines, dropping the final newline.
func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text := strings.TrimSuffix(string(data), "\n")
	if text == "" {
		return nil, nil
	}
	return strings.Split(text, "\n"), nil
}
