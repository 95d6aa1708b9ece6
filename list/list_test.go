package list

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type rec struct {
	link Link[*rec]
	id   int
}

func (r *rec) ListLink() *Link[*rec] { return &r.link }

func ids(l *List[*rec]) []int {
	var res []int
	for r := range l.All() {
		res = append(res, r.id)
	}
	return res
}

func mkList(n int) (*List[*rec], []*rec) {
	l := &List[*rec]{}
	rs := make([]*rec, n)
	for i := range rs {
		rs[i] = &rec{id: i}
		l.Append(rs[i])
	}
	return l, rs
}

func TestAppendOrder(t *testing.T) {
	l, rs := mkList(3)
	if diff := cmp.Diff([]int{0, 1, 2}, ids(l)); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
	if l.Len() != 3 || l.First() != rs[0] || l.Last() != rs[2] {
		t.Errorf("bad bookkeeping: len=%d", l.Len())
	}
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name   string
		remove []int
		want   []int
	}{
		{"head", []int{0}, []int{1, 2, 3}},
		{"tail", []int{3}, []int{0, 1, 2}},
		{"middle", []int{1, 2}, []int{0, 3}},
		{"all", []int{2, 0, 3, 1}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, rs := mkList(4)
			for _, i := range tt.remove {
				if err := l.Remove(rs[i]); err != nil {
					t.Fatalf("remove %d: %v", i, err)
				}
			}
			if diff := cmp.Diff(tt.want, ids(l)); diff != "" {
				t.Errorf("after remove (-want +got):\n%s", diff)
			}
			if l.Len() != len(tt.want) {
				t.Errorf("len %d, want %d", l.Len(), len(tt.want))
			}
			if len(tt.want) == 0 {
				if l.First() != nil || l.Last() != nil {
					t.Errorf("empty list keeps first/last")
				}
				return
			}
			if l.Last().id != tt.want[len(tt.want)-1] {
				t.Errorf("last is %d, want %d", l.Last().id, tt.want[len(tt.want)-1])
			}
		})
	}
}

func TestRemoveTailThenAppend(t *testing.T) {
	l, rs := mkList(3)
	if err := l.Remove(rs[2]); err != nil {
		t.Fatal(err)
	}
	l.Append(&rec{id: 7})
	if diff := cmp.Diff([]int{0, 1, 7}, ids(l)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestRemoveNotMember(t *testing.T) {
	l, rs := mkList(2)
	other, _ := mkList(1)
	if err := l.Remove(&rec{id: 9}); !errors.Is(err, ErrNotMember) {
		t.Errorf("expected ErrNotMember, got %v", err)
	}
	if err := other.Remove(rs[1]); !errors.Is(err, ErrNotMember) {
		t.Errorf("expected ErrNotMember removing from a foreign list, got %v", err)
	}
	if err := l.Remove(rs[0]); err != nil {
		t.Fatal(err)
	}
	if err := l.Remove(rs[0]); !errors.Is(err, ErrNotMember) {
		t.Errorf("expected ErrNotMember on second removal, got %v", err)
	}
	if l.Contains(rs[0]) || !l.Contains(rs[1]) {
		t.Errorf("Contains mismatch")
	}
}

func TestAllRestartable(t *testing.T) {
	l, _ := mkList(3)
	first := slices.Collect(l.All())
	second := slices.Collect(l.All())
	if len(first) != 3 || !slices.Equal(first, second) {
		t.Errorf("iteration not restartable")
	}
	for r := range l.All() {
		if r.id == 1 {
			break
		}
	}
}

func TestClear(t *testing.T) {
	l, rs := mkList(3)
	l.Clear()
	if l.Len() != 0 || len(ids(l)) != 0 {
		t.Errorf("list not empty after Clear")
	}
	l.Append(rs[1])
	if diff := cmp.Diff([]int{1}, ids(l)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
