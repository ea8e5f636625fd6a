package benchmark

import "testing"

func TestDefaultScenariosDeclarationOrder(t *testing.T) {
	want := []Scenario{
		{Name: "Single-core, unoptimized"},
		{Name: "Single-core, optimized", Optimized: true},
		{Name: "Multicore, unoptimized", Multicore: true},
		{Name: "Multicore, optimized", Optimized: true, Multicore: true},
	}
	got := DefaultScenarios()
	if len(got) != len(want) {
		t.Fatalf("expected %d scenarios, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("scenario %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestDefaultScenariosReturnsCopy(t *testing.T) {
	a := DefaultScenarios()
	a[0].Name = "mutated"
	if DefaultScenarios()[0].Name == "mutated" {
		t.Fatalf("DefaultScenarios shares state between calls")
	}
}

func TestSelectScenarios(t *testing.T) {
	all := DefaultScenarios()

	got, err := SelectScenarios(all, nil)
	if err != nil || len(got) != 4 {
		t.Fatalf("expected all scenarios, got %d (%v)", len(got), err)
	}

	got, err = SelectScenarios(all, []string{" MULTICORE "})
	if err != nil {
		t.Fatalf("SelectScenarios: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Multicore, unoptimized" || got[1].Name != "Multicore, optimized" {
		t.Fatalf("unexpected selection: %+v", got)
	}

	got, err = SelectScenarios(all, []string{"optimized", "single"})
	if err != nil || len(got) != 4 {
		t.Fatalf("expected overlapping filters to keep each scenario once, got %d (%v)", len(got), err)
	}

	if _, err := SelectScenarios(all, []string{"gpu"}); err == nil {
		t.Fatalf("expected error for unmatched filter")
	}
}
