package rig

import (
	"fmt"

	"github.com/Faultbox/daexport/pkg/collada"
)

// Scene holds every model extracted from one document.
type Scene struct {
	Meshes     []*Mesh
	Skeleton   *Skeleton
	Skins      []*SkinningEntry
	Animations []*AnimationEntry
}

// Extract runs all extractors over doc. The skeleton is built before skins
// and animations so their joint names can be resolved.
func Extract(doc *collada.Document) (*Scene, error) {
	meshes, err := ExtractMeshes(doc)
	if err != nil {
		return nil, err
	}
	skel, err := ExtractSkeleton(doc)
	if err != nil {
		return nil, err
	}
	skins, err := ExtractSkins(doc, skel)
	if err != nil {
		return nil, err
	}
	anims, err := ExtractAnimations(doc, skel)
	if err != nil {
		return nil, err
	}

	s := &Scene{
		Meshes:     meshes,
		Skeleton:   skel,
		Skins:      skins,
		Animations: anims,
	}
	if err := s.validateSkins(); err != nil {
		return nil, err
	}
	return s, nil
}

// Mesh returns the mesh extracted from the geometry with the given id.
func (s *Scene) Mesh(name string) *Mesh {
	for _, m := range s.Meshes {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// validateSkins checks that each skin has one influence list per vertex of
// the mesh it deforms.
func (s *Scene) validateSkins() error {
	for _, skin := range s.Skins {
		m := s.Mesh(skin.Geometry)
		if m == nil {
			continue
		}
		if len(skin.Influences) != len(m.Positions) {
			return fmt.Errorf("%w: controller %q has %d influence lists, mesh %q has %d positions",
				ErrVertexCountMismatch, skin.Controller, len(skin.Influences), m.Name, len(m.Positions))
		}
	}
	return nil
}
