package validation

import "testing"

func TestNotNull(t *testing.T) {
	v := Violations{}
	NotNull("nbUsagers", false, v)
	NotNull("rue", true, v)
	if v.Empty() {
		t.Fatalf("expected a violation")
	}
	if len(v) != 1 || v["nbUsagers"] != "required" {
		t.Fatalf("unexpected violations: %v", v)
	}
}

func TestEmpty(t *testing.T) {
	if !(Violations{}).Empty() {
		t.Fatal("fresh violations should be empty")
	}
	if (Violations{"libelle": "required"}).Empty() {
		t.Fatal("non-empty violations reported empty")
	}
}
