package refresh

import (
	"strings"
	"testing"
)

func TestNewFamily_UniqueIDs(t *testing.T) {
	a := NewFamily("Button")
	b := NewFamily("Button")

	if a == b {
		t.Error("Expected distinct family tokens")
	}
	if a.ID() == b.ID() {
		t.Errorf("Expected distinct ids, both were '%s'", a.ID())
	}
	if strings.Contains(a.ID(), "-") {
		t.Errorf("Expected a dashless id, got '%s'", a.ID())
	}
	if a.Name() != "Button" {
		t.Errorf("Expected Name 'Button', got '%s'", a.Name())
	}
}

func TestFamily_NilToken(t *testing.T) {
	var f *Family

	if f.ID() != "" {
		t.Errorf("Expected empty id for the nil token, got '%s'", f.ID())
	}
	if f.Name() != "" {
		t.Errorf("Expected empty name for the nil token, got '%s'", f.Name())
	}
	if f.String() != "<no family>" {
		t.Errorf("Expected '<no family>', got '%s'", f.String())
	}
}

func TestFamily_String(t *testing.T) {
	named := NewFamily("App")
	if !strings.HasPrefix(named.String(), "App#") {
		t.Errorf("Expected 'App#<id>', got '%s'", named.String())
	}

	anon := NewFamily("")
	if !strings.HasPrefix(anon.String(), "#") {
		t.Errorf("Expected '#<id>', got '%s'", anon.String())
	}
}
