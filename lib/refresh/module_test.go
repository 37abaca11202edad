package refresh

import (
	"testing"

	"github.com/snowmerak/refresh.go/lib/exports"
)

func TestModuleExports_PrefersOwnExports(t *testing.T) {
	own := exports.New().Set("A", 1)
	legacy := exports.New().Set("B", 2)
	m := &Module{ID: "1", Exports: own, Proto: &Module{ID: "1", Exports: legacy}}

	if got := ModuleExports(m); got != own {
		t.Errorf("Expected the record's own exports, got %v", got)
	}
}

func TestModuleExports_FallsBackToPrototype(t *testing.T) {
	legacy := exports.New().Set("B", 2)
	m := &Module{ID: "1", Proto: &Module{ID: "1", Exports: legacy}}

	if got := ModuleExports(m); got != legacy {
		t.Errorf("Expected the prototype exports, got %v", got)
	}
}

func TestModuleExports_NilCases(t *testing.T) {
	if got := ModuleExports(nil); got != nil {
		t.Errorf("Expected nil for a nil module, got %v", got)
	}
	if got := ModuleExports(&Module{ID: "1"}); got != nil {
		t.Errorf("Expected nil when no exports exist anywhere, got %v", got)
	}
	if got := ModuleExports(&Module{ID: "1", Proto: &Module{ID: "1"}}); got != nil {
		t.Errorf("Expected nil when the prototype has no exports, got %v", got)
	}
}
