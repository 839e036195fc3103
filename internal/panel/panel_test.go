package panel

import "testing"

func TestAll_OrderAndLabels(t *testing.T) {
	want := []string{
		"Global Dashboard",
		"Isotope Production",
		"Sector Applications",
		"Economic Analysis",
		"Interactive Quiz",
		"References",
	}

	all := All()
	if len(all) != len(want) {
		t.Fatalf("expected %d panels, got %d", len(want), len(all))
	}
	for i, id := range all {
		if id.Label() != want[i] {
			t.Errorf("All()[%d].Label() = %q, want %q", i, id.Label(), want[i])
		}
		if !id.Valid() {
			t.Errorf("%v should be valid", id)
		}
		if id.Icon() == " " {
			t.Errorf("%v has no icon", id)
		}
	}
}

func TestInvalidID(t *testing.T) {
	for _, id := range []ID{-1, 6, 42} {
		if id.Valid() {
			t.Errorf("ID(%d) should be invalid", int(id))
		}
	}
	if got := ID(42).Label(); got != "Panel(42)" {
		t.Errorf("Label = %q, want %q", got, "Panel(42)")
	}
}
