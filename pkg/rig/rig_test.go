package rig

import (
	"testing"

	"github.com/Faultbox/daexport/pkg/collada"
)

// loadFixture opens the rigged quad used across the package tests.
func loadFixture(t *testing.T) *collada.Document {
	t.Helper()
	doc, err := collada.Open("testdata/rig.dae")
	if err != nil {
		t.Fatalf("failed to open fixture: %v", err)
	}
	return doc
}

// parseDoc wraps body in a COLLADA root element.
func parseDoc(t *testing.T, body string) *collada.Document {
	t.Helper()
	doc, err := collada.ParseString("<COLLADA>" + body + "</COLLADA>")
	if err != nil {
		t.Fatalf("failed to parse document: %v", err)
	}
	return doc
}
