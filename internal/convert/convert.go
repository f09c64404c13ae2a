// Package convert runs the export pipeline: input and output checks, load,
// extraction and ASCII export, with progress logged through the logger.
package convert

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/daexport/internal/config"
	"github.com/Faultbox/daexport/internal/logger"
	"github.com/Faultbox/daexport/pkg/ascii"
	"github.com/Faultbox/daexport/pkg/collada"
	"github.com/Faultbox/daexport/pkg/rig"
)

// Run exports input into cfg.Export.OutputDir. The input file and the
// output directory are checked before anything is parsed.
func Run(input string, cfg *config.Config) (*rig.Scene, error) {
	start := time.Now()
	outDir := cfg.Export.OutputDir

	if err := collada.CheckInput(input); err != nil {
		return nil, err
	}
	if err := ascii.PrepareOutputDir(outDir); err != nil {
		return nil, err
	}

	scene, err := Inspect(input)
	if err != nil {
		return nil, err
	}

	if err := ascii.WriteScene(outDir, scene, cfg.Parts()); err != nil {
		return nil, err
	}

	logger.Info("export complete",
		zap.String("input", input),
		zap.String("output", outDir),
		zap.Int("meshes", len(scene.Meshes)),
		zap.Int("joints", scene.Skeleton.Len()),
		zap.Int("skins", len(scene.Skins)),
		zap.Int("animations", len(scene.Animations)),
		zap.Duration("elapsed", time.Since(start)))
	return scene, nil
}

// Inspect loads input and extracts every model without writing anything.
func Inspect(input string) (*rig.Scene, error) {
	logger.Debug("loading document", zap.String("input", input))

	doc, err := collada.Open(input)
	if err != nil {
		return nil, err
	}
	scene, err := rig.Extract(doc)
	if err != nil {
		return nil, err
	}

	logScene(scene)
	return scene, nil
}

func logScene(s *rig.Scene) {
	for _, m := range s.Meshes {
		logger.Debug("mesh",
			zap.String("geometry", m.Name),
			zap.String("dir", ascii.MeshDirName(m.Name)),
			zap.Int("vertices", len(m.Positions)),
			zap.Int("normals", len(m.Normals)),
			zap.Int("uvs", len(m.UVs)),
			zap.Int("faces", len(m.Faces)))
	}
	for i, j := range s.Skeleton.Joints {
		logger.Debug("joint",
			zap.Int("index", i),
			zap.String("name", j.Name),
			zap.Int("parent", s.Skeleton.ParentIndex(i)))
	}
	for _, e := range s.Skins {
		if s.Mesh(e.Geometry) == nil {
			logger.Warn("skin target has no mesh",
				zap.String("controller", e.Controller),
				zap.String("geometry", e.Geometry))
		}
		logger.Debug("skin",
			zap.String("controller", e.Controller),
			zap.String("geometry", e.Geometry),
			zap.Int("joints", len(e.JointNames)),
			zap.Int("vertices", len(e.Influences)))
	}
	for _, a := range s.Animations {
		logger.Debug("animation",
			zap.String("joint", s.Skeleton.Joints[a.Joint].Name),
			zap.Int("keys", len(a.Times)))
	}
}
