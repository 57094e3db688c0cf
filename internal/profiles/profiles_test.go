// internal/profiles/profiles_test.go
package profiles

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestBuiltinResolve(t *testing.T) {
	t.Parallel()

	reg := Builtin()

	prof, ok := reg.Resolve("classification")
	if !ok {
		t.Fatalf("classification should be a builtin profile")
	}
	if prof.Name != "classification" {
		t.Fatalf("resolved profile has name %q", prof.Name)
	}
	hint, ok := prof.Hint("accuracy")
	if !ok || !hint.Primary || !hint.HigherIsBetter {
		t.Fatalf("unexpected accuracy hint: %+v ok=%v", hint, ok)
	}
}

func TestResolveUnknownProblemType(t *testing.T) {
	t.Parallel()

	prof, ok := Builtin().Resolve("weather-forecasting")
	if ok {
		t.Fatalf("unknown problem type must not resolve")
	}
	if !reflect.DeepEqual(prof, Default()) {
		t.Fatalf("unknown problem type should fall back to the default profile, got %+v", prof)
	}
}

func TestResolveIsCaseSensitive(t *testing.T) {
	t.Parallel()

	if _, ok := Builtin().Resolve("Classification"); ok {
		t.Fatalf("problem-type lookup must be case-sensitive")
	}
}

func TestHintIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	prof, _ := Builtin().Resolve("classification")
	hint, ok := prof.Hint("Accuracy")
	if !ok || hint.Label != "Accuracy" {
		t.Fatalf("hint lookup should ignore case, got %+v ok=%v", hint, ok)
	}
	if _, ok := prof.Hint("bleu"); ok {
		t.Fatalf("unregistered metric key must not resolve to a hint")
	}
}

func TestLoadMergesExternalRegistry(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "profiles.json")
	external := `{
  "regression": {
    "display_hints": {"mse": {"primary": true, "label": "MSE"}}
  },
  "classification": {
    "display_hints": {"accuracy": {"label": "Top-1"}}
  }
}`
	if err := os.WriteFile(path, []byte(external), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	reg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	// New entry is added with its registry key as name.
	prof, ok := reg.Resolve("regression")
	if !ok || prof.Name != "regression" {
		t.Fatalf("external profile not registered: %+v ok=%v", prof, ok)
	}
	if hint, ok := prof.Hint("mse"); !ok || !hint.Primary {
		t.Fatalf("external hints not loaded: %+v ok=%v", hint, ok)
	}

	// File entries replace builtins of the same name wholesale.
	prof, _ = reg.Resolve("classification")
	if hint, _ := prof.Hint("accuracy"); hint.Label != "Top-1" {
		t.Fatalf("external classification profile should win, got %+v", hint)
	}
	if _, ok := prof.Hint("f1"); ok {
		t.Fatalf("builtin hints must not leak into a replaced profile")
	}

	// Untouched builtins survive the merge.
	if _, ok := reg.Resolve("detection"); !ok {
		t.Fatalf("builtin detection profile lost during merge")
	}
}

func TestLoadMissingFileKeepsBuiltins(t *testing.T) {
	t.Parallel()

	reg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatalf("expected an error for the missing registry file")
	}
	if reg == nil {
		t.Fatalf("Load must still return the builtin registry")
	}
	if _, ok := reg.Resolve("classification"); !ok {
		t.Fatalf("builtin profiles should survive a failed load")
	}
}

func TestLoadMalformedFileKeepsBuiltins(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte(`{"regression": [`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	reg, err := Load(path)
	if err == nil {
		t.Fatalf("expected a parse error")
	}
	if _, ok := reg.Resolve("segmentation"); !ok {
		t.Fatalf("builtin profiles should survive a malformed registry file")
	}
}

func TestLoadEmptyPathReturnsBuiltins(t *testing.T) {
	t.Parallel()

	reg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") returned error: %v", err)
	}
	want := Builtin().Names()
	if !reflect.DeepEqual(reg.Names(), want) {
		t.Fatalf("expected builtin names %v, got %v", want, reg.Names())
	}
}

func TestNamesAreSorted(t *testing.T) {
	t.Parallel()

	want := []string{"classification", "detection", "segmentation"}
	if got := Builtin().Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
}
