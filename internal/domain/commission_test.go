package domain

import "testing"

func TestNormalizeSelection(t *testing.T) {
	got := NormalizeSelection([]string{"c-2", " c-1 ", "", "c-2", "c-3", "c-1"})
	want := []string{"c-2", "c-1", "c-3"}
	if len(got) != len(want) {
		t.Fatalf("NormalizeSelection = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("NormalizeSelection[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPendingIDsSkipsNonPending(t *testing.T) {
	rows := []Commission{
		{ID: "a", Status: CommissionPending},
		{ID: "b", Status: CommissionApproved},
		{ID: "c", Status: CommissionPending},
		{ID: "d", Status: CommissionPaid},
	}
	got := PendingIDs(rows)
	if len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Fatalf("PendingIDs = %v, want [a c]", got)
	}
}

func TestParseCommissionStatus(t *testing.T) {
	if s, ok := ParseCommissionStatus("PAID"); !ok || s != CommissionPaid {
		t.Fatalf("ParseCommissionStatus(PAID) = %q, %v", s, ok)
	}
	for _, v := range []string{"", "all", "void"} {
		if _, ok := ParseCommissionStatus(v); ok {
			t.Fatalf("ParseCommissionStatus(%q) should not match", v)
		}
	}
}
