// Package rig extracts engine-ready models from a COLLADA document: meshes,
// the joint hierarchy, skin bindings and keyframed joint transforms.
//
// All models are index-correlated. A skin references skeleton joints by
// index, animations are keyed by skeleton index, and per-vertex data is
// addressed by position index, so extraction either succeeds for the whole
// document or fails with one of the errors below.
package rig

import "errors"

// Extraction errors.
var (
	ErrMissingMeshData          = errors.New("missing mesh data")
	ErrNonTriangulated          = errors.New("polygon list is not triangulated")
	ErrIndexOutOfRange          = errors.New("index out of range")
	ErrUnnamedJoint             = errors.New("joint has no name")
	ErrDuplicateJointName       = errors.New("duplicate joint name")
	ErrUnresolvedJointName      = errors.New("joint name not in skeleton")
	ErrTruncatedInfluenceStream = errors.New("truncated influence stream")
	ErrMissingSkinData          = errors.New("missing skin data")
	ErrVertexCountMismatch      = errors.New("influence count does not match vertex count")
	ErrMissingAnimationData     = errors.New("missing animation data")
	ErrDuplicateChannel         = errors.New("joint animated by more than one channel")
	ErrDuplicateSkin            = errors.New("geometry skinned by more than one controller")
)
