package systems

import "testing"

func TestRegistryScheduleOrder(t *testing.T) {
	reg := NewSystemRegistry()
	want := []string{SystemInput, SystemMovement, SystemFoodSpawn, SystemScale, SystemTranslate}

	ids := reg.IDs()
	if len(ids) != len(want) {
		t.Fatalf("expected %d systems, got %d", len(want), len(ids))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], ids[i])
		}
	}
}

func TestRegistryLookup(t *testing.T) {
	reg := NewSystemRegistry()

	info, ok := reg.Get(SystemMovement)
	if !ok || !info.TimerGated {
		t.Errorf("expected timer-gated movement system, got %+v", info)
	}
	if reg.GetName(SystemScale) != "Scale" {
		t.Errorf("unexpected name %q", reg.GetName(SystemScale))
	}
	if reg.GetName("missing") != "missing" {
		t.Error("expected fallback to ID for unknown system")
	}
}
