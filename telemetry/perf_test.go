package telemetry

import (
	"testing"
	"time"

	"github.com/pthm-cable/snake/systems"
)

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartFrame()
		pc.StartPhase(systems.SystemInput)
		time.Sleep(100 * time.Microsecond)
		pc.StartPhase(systems.SystemScale)
		time.Sleep(200 * time.Microsecond)
		pc.EndFrame()
	}

	stats := pc.Stats()

	if stats.AvgFrameDuration <= 0 {
		t.Error("expected positive average frame duration")
	}
	if _, ok := stats.PhaseAvg[systems.SystemInput]; !ok {
		t.Error("expected input phase to be tracked")
	}
	if _, ok := stats.PhaseAvg[systems.SystemScale]; !ok {
		t.Error("expected scale phase to be tracked")
	}
	if stats.MinFrameDuration > stats.MaxFrameDuration {
		t.Errorf("min %v exceeds max %v", stats.MinFrameDuration, stats.MaxFrameDuration)
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(5)

	// Overfill the window
	for i := 0; i < 10; i++ {
		pc.StartFrame()
		pc.StartPhase(systems.SystemMovement)
		pc.EndFrame()
	}

	if pc.sampleCount != 5 {
		t.Errorf("expected sample count capped at 5, got %d", pc.sampleCount)
	}
}

func TestPerfCollector_PhasePercentages(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartFrame()
		pc.StartPhase("fast")
		time.Sleep(10 * time.Microsecond)
		pc.StartPhase("slow")
		time.Sleep(2 * time.Millisecond)
		pc.EndFrame()
	}

	stats := pc.Stats()
	if stats.PhasePct["slow"] <= stats.PhasePct["fast"] {
		t.Errorf("expected slow phase (%v%%) > fast phase (%v%%)", stats.PhasePct["slow"], stats.PhasePct["fast"])
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	stats := NewPerfCollector(10).Stats()

	if stats.AvgFrameDuration != 0 {
		t.Error("expected zero avg frame duration for empty collector")
	}
	if stats.PhaseAvg == nil || stats.PhasePct == nil {
		t.Error("expected non-nil phase maps")
	}
}

func TestPerfCollector_FrameRate(t *testing.T) {
	pc := NewPerfCollector(10)

	pc.RecordFrame()
	time.Sleep(16 * time.Millisecond)
	pc.RecordFrame()

	stats := pc.Stats()
	if stats.FPS <= 0 || stats.FPS > 70 {
		t.Errorf("expected FPS in (0, 70] with 16ms frames, got %v", stats.FPS)
	}
}

func TestPerfStatsToCSV(t *testing.T) {
	stats := PerfStats{
		AvgFrameDuration: 120 * time.Microsecond,
		PhasePct: map[string]float64{
			systems.SystemMovement:  25,
			systems.SystemTranslate: 10,
		},
	}

	row := stats.ToCSV(42)
	if row.WindowEndFrame != 42 || row.AvgFrameUS != 120 {
		t.Errorf("unexpected header fields: %+v", row)
	}
	if row.MovementPct != 25 || row.TranslatePct != 10 || row.InputPct != 0 {
		t.Errorf("unexpected phase columns: %+v", row)
	}
}
