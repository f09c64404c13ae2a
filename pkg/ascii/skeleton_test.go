package ascii

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteSkeleton(t *testing.T) {
	dir := t.TempDir()
	if err := WriteSkeleton(dir, chain(t)); err != nil {
		t.Fatalf("WriteSkeleton failed: %v", err)
	}

	if got := readFile(t, dir, SkeletonJointNameFile); got != "root\nspine\nhead\n" {
		t.Errorf("unexpected joint names: %q", got)
	}
	if got := readFile(t, dir, SkeletonParentIndexFile); got != "-1 0 1 " {
		t.Errorf("unexpected parent indices: %q", got)
	}

	wantMatrices := "1.0 0.0 0.0 0.0 0.0 1.0 0.0 2.0 0.0 0.0 1.0 0.0 0.0 0.0 0.0 1.0 \n" +
		"1.0 0.0 0.0 0.0 0.0 1.0 0.0 1.0 0.0 0.0 1.0 0.0 0.0 0.0 0.0 1.0 \n" +
		"1.0 0.0 0.0 0.0 0.0 1.0 0.0 0.5 0.0 0.0 1.0 0.0 0.0 0.0 0.0 1.0 \n"
	if got := readFile(t, dir, SkeletonJointMatrixFile); got != wantMatrices {
		t.Errorf("unexpected joint matrices:\n%s", got)
	}
}

func TestReadSkeleton_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	want := chain(t)
	if err := WriteSkeleton(dir, want); err != nil {
		t.Fatalf("WriteSkeleton failed: %v", err)
	}

	got, err := ReadSkeleton(dir)
	if err != nil {
		t.Fatalf("ReadSkeleton failed: %v", err)
	}
	if got.Len() != want.Len() {
		t.Fatalf("expected %d joints, got %d", want.Len(), got.Len())
	}
	for i := range want.Joints {
		if got.Joints[i] != want.Joints[i] {
			t.Errorf("joint %d: expected %+v, got %+v", i, want.Joints[i], got.Joints[i])
		}
	}
}

func TestReadSkeleton_Malformed(t *testing.T) {
	tests := []struct {
		name     string
		names    string
		parents  string
		matrices string
	}{
		{
			name:     "parent count",
			names:    "root\nspine\n",
			parents:  "-1 ",
			matrices: "1 0 0 0 0 1 0 0 0 0 1 0 0 0 0 1 \n1 0 0 0 0 1 0 0 0 0 1 0 0 0 0 1 \n",
		},
		{
			name:     "forward parent",
			names:    "root\nspine\n",
			parents:  "-1 1 ",
			matrices: "1 0 0 0 0 1 0 0 0 0 1 0 0 0 0 1 \n1 0 0 0 0 1 0 0 0 0 1 0 0 0 0 1 \n",
		},
		{
			name:     "short matrix",
			names:    "root\n",
			parents:  "-1 ",
			matrices: "1 0 0 \n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			files := map[string]string{
				SkeletonJointNameFile:   tt.names,
				SkeletonParentIndexFile: tt.parents,
				SkeletonJointMatrixFile: tt.matrices,
			}
			for name, content := range files {
				if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
					t.Fatalf("failed to write %s: %v", name, err)
				}
			}

			if _, err := ReadSkeleton(dir); !errors.Is(err, ErrMalformedFile) {
				t.Errorf("expected ErrMalformedFile, got %v", err)
			}
		})
	}
}
