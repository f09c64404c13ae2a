package rig

import (
	"errors"
	"testing"
)

func animationXML(name, times, matrices string) string {
	return `<animation id="` + name + `-anim" name="` + name + `">` +
		`<source id="` + name + `-anim-input"><float_array>` + times + `</float_array></source>` +
		`<source id="` + name + `-anim-output-transform"><float_array>` + matrices + `</float_array></source>` +
		`</animation>`
}

func TestExtractAnimations_Fixture(t *testing.T) {
	doc := loadFixture(t)
	skel, err := ExtractSkeleton(doc)
	if err != nil {
		t.Fatalf("ExtractSkeleton failed: %v", err)
	}

	anims, err := ExtractAnimations(doc, skel)
	if err != nil {
		t.Fatalf("ExtractAnimations failed: %v", err)
	}
	if len(anims) != 2 {
		t.Fatalf("expected 2 channels, got %d", len(anims))
	}

	root, head := anims[0], anims[1]
	if root.Joint != 0 {
		t.Errorf("expected root channel on joint 0, got %d", root.Joint)
	}
	// The head channel has no name attribute and is resolved from its target.
	if head.Joint != 2 {
		t.Errorf("expected head channel on joint 2, got %d", head.Joint)
	}

	for _, a := range anims {
		if len(a.Times) != len(a.Matrices) {
			t.Errorf("joint %d: %d times, %d matrices", a.Joint, len(a.Times), len(a.Matrices))
		}
	}
	if len(head.Times) != 3 || head.Times[1] != 0.5 {
		t.Errorf("unexpected head times: %v", head.Times)
	}
	if head.Matrices[1].At(1, 3) != 0.75 {
		t.Errorf("expected head key 1 Y translation 0.75, got %v", head.Matrices[1].At(1, 3))
	}
	if root.Matrices[1].At(0, 3) != 1 {
		t.Errorf("expected root key 1 X translation 1, got %v", root.Matrices[1].At(0, 3))
	}
	if len(head.TimesText) != 3 || head.TimesText[1] != "0.5" {
		t.Errorf("unexpected head time tokens: %v", head.TimesText)
	}
	if len(head.MatricesText) != 3 || head.MatricesText[1][7] != "0.75" {
		t.Errorf("unexpected head matrix tokens: %v", head.MatricesText)
	}
}

func TestExtractAnimations_UnknownJoint(t *testing.T) {
	doc := parseDoc(t, `<library_animations>`+animationXML("tail", "0", identity16)+`</library_animations>`)

	_, err := ExtractAnimations(doc, chainSkeleton(t))
	if !errors.Is(err, ErrUnresolvedJointName) {
		t.Errorf("expected ErrUnresolvedJointName, got %v", err)
	}
}

func TestExtractAnimations_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{
			name:    "time and matrix counts differ",
			body:    animationXML("spine", "0 1", identity16),
			wantErr: nil,
		},
		{
			name:    "partial matrix",
			body:    animationXML("spine", "0", "1 0 0"),
			wantErr: nil,
		},
		{
			name:    "missing output",
			body:    `<animation name="spine"><source id="spine-input"><float_array>0</float_array></source></animation>`,
			wantErr: ErrMissingAnimationData,
		},
		{
			name:    "missing input",
			body:    `<animation name="spine"><source id="spine-output-transform"><float_array>` + identity16 + `</float_array></source></animation>`,
			wantErr: ErrMissingAnimationData,
		},
		{
			name:    "two channels on one joint",
			body:    animationXML("spine", "0", identity16) + animationXML("spine", "1", identity16),
			wantErr: ErrDuplicateChannel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := parseDoc(t, `<library_animations>`+tt.body+`</library_animations>`)
			_, err := ExtractAnimations(doc, chainSkeleton(t))
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestExtractAnimations_Sparse(t *testing.T) {
	doc := parseDoc(t, `<library_animations>`+animationXML("head", "0 1", identity16+" "+identity16)+`</library_animations>`)

	anims, err := ExtractAnimations(doc, chainSkeleton(t))
	if err != nil {
		t.Fatalf("ExtractAnimations failed: %v", err)
	}
	if len(anims) != 1 || anims[0].Joint != 2 {
		t.Errorf("expected a single entry for head, got %+v", anims)
	}
}

func TestExtractAnimations_NoLibrary(t *testing.T) {
	anims, err := ExtractAnimations(parseDoc(t, ``), chainSkeleton(t))
	if err != nil {
		t.Fatalf("ExtractAnimations failed: %v", err)
	}
	if len(anims) != 0 {
		t.Errorf("expected no entries, got %d", len(anims))
	}
}
