package ballpit

import "testing"

func TestVec2(t *testing.T) {
	a := Vec2{3, 4}
	b := Vec2{1, -2}
	if got := a.Add(b); got != (Vec2{4, 2}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != (Vec2{2, 6}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(0.5); got != (Vec2{1.5, 2}) {
		t.Errorf("Scale = %v", got)
	}
	if got := a.LenSq(); got != 25 {
		t.Errorf("LenSq = %v", got)
	}
	if got := a.Len(); got != 5 {
		t.Errorf("Len = %v", got)
	}
	if got := (Vec2{}).Len(); got != 0 {
		t.Errorf("zero Len = %v", got)
	}
}
