// internal/engine/classify_test.go
package engine

import "testing"

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		metric   string
		category Category
		clean    bool
		baseKey  string
	}{
		{name: "plain user metric", metric: "Accuracy", category: CategoryUser, clean: false, baseKey: "Accuracy"},
		{name: "framework metric", metric: "Loss_", category: CategoryFramework, clean: false, baseKey: "Loss"},
		{name: "clean reference", metric: "Clean_Accuracy", category: CategoryUser, clean: true, baseKey: "Accuracy"},
		{name: "clean prefix is case-insensitive", metric: "CLEAN_Accuracy", category: CategoryUser, clean: true, baseKey: "Accuracy"},
		{name: "lowercase clean", metric: "clean_acc", category: CategoryUser, clean: true, baseKey: "acc"},
		{name: "clean framework metric", metric: "Clean_Loss_", category: CategoryFramework, clean: true, baseKey: "Loss"},
		{name: "prefix must be the full token", metric: "cleanliness", category: CategoryUser, clean: false, baseKey: "cleanliness"},
		{name: "suffix-only name stays user", metric: "_", category: CategoryUser, clean: false, baseKey: "_"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Classify(tt.metric)
			if got.Category != tt.category {
				t.Fatalf("Classify(%q).Category = %v, want %v", tt.metric, got.Category, tt.category)
			}
			if got.CleanReference != tt.clean {
				t.Fatalf("Classify(%q).CleanReference = %v, want %v", tt.metric, got.CleanReference, tt.clean)
			}
			if got.BaseKey != tt.baseKey {
				t.Fatalf("Classify(%q).BaseKey = %q, want %q", tt.metric, got.BaseKey, tt.baseKey)
			}
		})
	}
}

func TestClassifyIsPure(t *testing.T) {
	t.Parallel()

	first := Classify("Clean_Accuracy_")
	second := Classify("Clean_Accuracy_")
	if first != second {
		t.Fatalf("Classify is not deterministic: %+v vs %+v", first, second)
	}
}

func TestGroupKeyKeepsFrameworkSuffix(t *testing.T) {
	t.Parallel()

	if groupKey("Accuracy") == groupKey("Accuracy_") {
		t.Fatalf("user and framework metrics must not share a grouping key")
	}
	if groupKey("Clean_Accuracy") != groupKey("Accuracy") {
		t.Fatalf("clean reference must share its counterpart's grouping key")
	}
	if groupKey("Clean_Loss_") != groupKey("Loss_") {
		t.Fatalf("clean framework reference must share the framework metric's grouping key")
	}
}
