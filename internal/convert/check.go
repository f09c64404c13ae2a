package convert

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/daexport/internal/logger"
	"github.com/Faultbox/daexport/pkg/ascii"
)

// Report summarizes a checked export directory.
type Report struct {
	Joints     int
	Animations int
	Skins      int
}

// Check reads an export directory back and verifies that the files agree
// with each other: parents precede children, and every skeleton index used
// by skinning or animation is in range.
func Check(dir string) (*Report, error) {
	skel, err := ascii.ReadSkeleton(dir)
	if err != nil {
		return nil, fmt.Errorf("skeleton: %w", err)
	}
	report := &Report{Joints: skel.Len()}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if !e.IsDir() || !strings.HasPrefix(e.Name(), ascii.MeshDirPrefix) {
			continue
		}
		joints, err := ascii.ReadJointMap(filepath.Join(dir, e.Name()))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}
		for slot, j := range joints {
			if j < 0 || j >= skel.Len() {
				return nil, fmt.Errorf("%w: %s: joint slot %d maps to skeleton index %d of %d",
					ascii.ErrMalformedFile, e.Name(), slot, j, skel.Len())
			}
		}
		report.Skins++
	}

	anims, err := ascii.ReadAnimation(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("animation: %w", err)
	default:
		for _, a := range anims {
			if a.Joint < 0 || a.Joint >= skel.Len() {
				return nil, fmt.Errorf("%w: animation joint index %d of %d",
					ascii.ErrMalformedFile, a.Joint, skel.Len())
			}
		}
		report.Animations = len(anims)
	}

	logger.Info("check passed",
		zap.String("dir", dir),
		zap.Int("joints", report.Joints),
		zap.Int("skins", report.Skins),
		zap.Int("animations", report.Animations))
	return report, nil
}
