package ascii

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/daexport/pkg/rig"
)

// readFile returns the content of dir/name.
func readFile(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("failed to read %s: %v", name, err)
	}
	return string(data)
}

func translation(x, y, z float64) mgl64.Mat4 {
	return mgl64.Translate3D(x, y, z)
}

// chain returns the root -> spine -> head skeleton.
func chain(t *testing.T) *rig.Skeleton {
	t.Helper()
	skel, err := rig.NewSkeleton([]rig.Joint{
		{Name: "root", Local: translation(0, 2, 0)},
		{Name: "spine", Parent: "root", Local: translation(0, 1, 0)},
		{Name: "head", Parent: "spine", Local: translation(0, 0.5, 0)},
	})
	if err != nil {
		t.Fatalf("NewSkeleton failed: %v", err)
	}
	return skel
}

func TestMeshDirName(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"Body-lib", "mesh-body"},
		{"ch38_Shirt-lib", "mesh-ch38_shirt"},
		{"Sword", "mesh-sword"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := MeshDirName(tt.id); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestPrepareOutputDir(t *testing.T) {
	base := t.TempDir()

	dir := filepath.Join(base, "out", "nested")
	if err := PrepareOutputDir(dir); err != nil {
		t.Fatalf("PrepareOutputDir failed: %v", err)
	}
	// Idempotent.
	if err := PrepareOutputDir(dir); err != nil {
		t.Fatalf("second PrepareOutputDir failed: %v", err)
	}

	file := filepath.Join(base, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	if err := PrepareOutputDir(file); !errors.Is(err, ErrOutputPath) {
		t.Errorf("expected ErrOutputPath for a regular file, got %v", err)
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{1, "1.0"},
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{-0.5, "-0.5"},
		{0.1, "0.1"},
		{0.0001, "0.0001"},
		{1e-7, "1e-07"},
		{123456.75, "123456.75"},
		{1500000, "1500000.0"},
		{1e16, "1e+16"},
		{math.Inf(-1), "-inf"},
	}

	for _, tt := range tests {
		if got := formatFloat(tt.v); got != tt.want {
			t.Errorf("formatFloat(%v): expected %s, got %s", tt.v, tt.want, got)
		}
	}
}

func TestTokens(t *testing.T) {
	authored := []string{"1.000000", "-0.000000"}
	if got := tokens(authored, 1, 0); strings.Join(got, " ") != "1.000000 -0.000000" {
		t.Errorf("expected authored tokens, got %v", got)
	}
	// A token count that does not match the values falls back to formatting.
	if got := tokens(authored[:1], 1, 0); strings.Join(got, " ") != "1.0 0.0" {
		t.Errorf("expected formatted values, got %v", got)
	}
	if got := tokens(nil, 2.5); strings.Join(got, " ") != "2.5" {
		t.Errorf("expected formatted values, got %v", got)
	}
}
