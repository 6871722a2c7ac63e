package conflict

import (
	"reflect"
	"testing"
)

func TestDetectNoConflict(t *testing.T) {
	rep := Detect(map[string][]string{
		"CS101": {"r1", "r2"},
		"MA202": {"r3", "r4"},
	})
	if rep.HasConflict() {
		t.Fatalf("unexpected conflict: %+v", rep.Pairs)
	}
}

func TestDetectDoubleBooking(t *testing.T) {
	rep := Detect(map[string][]string{
		"CS101": {"r1", "rX"},
		"MA202": {"rX", "r3"},
		"PH303": {"r4"},
	})
	if !rep.HasConflict() {
		t.Fatal("expected conflict")
	}
	if len(rep.Pairs) != 1 {
		t.Fatalf("pairs = %d, want 1", len(rep.Pairs))
	}
	got := rep.Pairs[0]
	if got.Candidate != "rX" {
		t.Errorf("candidate = %s, want rX", got.Candidate)
	}
	if !reflect.DeepEqual(got.Courses, []string{"CS101", "MA202"}) {
		t.Errorf("courses = %v", got.Courses)
	}
}

func TestDetectStableOrdering(t *testing.T) {
	in := map[string][]string{
		"B2": {"r2", "r1"},
		"A1": {"r1", "r2"},
		"C3": {"r1"},
	}
	first := Detect(in)
	for i := 0; i < 20; i++ {
		if rep := Detect(in); !reflect.DeepEqual(rep, first) {
			t.Fatalf("run %d: report differs: %+v vs %+v", i, rep, first)
		}
	}
	if len(first.Pairs) != 2 || first.Pairs[0].Candidate != "r1" || first.Pairs[1].Candidate != "r2" {
		t.Fatalf("unexpected pairs: %+v", first.Pairs)
	}
}
