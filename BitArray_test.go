package Go_Utils

import "testing"

func TestBitArray(t *testing.T) {
	b := New(70)
	if b.Len() < 70 {
		t.Fatalf("len is %d, want at least 70", b.Len())
	}
	for _, i := range []int{0, 63, 64, 69} {
		if b.Swap(i) {
			t.Errorf("bit %d was up before", i)
		}
		if !b.Swap(i) || !b.Get(i) {
			t.Errorf("bit %d isn't up", i)
		}
	}
	if b.Count() != 4 {
		t.Errorf("count is %d, want 4", b.Count())
	}
	b.Down(63)
	if b.Get(63) || b.Count() != 3 {
		t.Error("bit 63 is still up")
	}
}
