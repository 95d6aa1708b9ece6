package debug

import "testing"

func TestSet(t *testing.T) {
	restore := Set(false, false, true)
	if Parse() || Store() || !Query() {
		t.Errorf("got parse=%t store=%t query=%t, want only query", Parse(), Store(), Query())
	}
	inner := Set(true, true, false)
	if !Parse() || !Store() || Query() {
		t.Errorf("got parse=%t store=%t query=%t, want parse and store", Parse(), Store(), Query())
	}
	inner()
	if Parse() || Store() || !Query() {
		t.Errorf("inner restore: got parse=%t store=%t query=%t", Parse(), Store(), Query())
	}
	restore()
}
