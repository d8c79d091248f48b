package paginator

import "testing"

func TestIsValidPage(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		totalItems int64
		perPage    int64
		want       bool
	}{
		{"no data means no valid page", 1, 0, 10, false},
		{"first page with one item", 1, 1, 10, true},
		{"page zero is never valid", 0, 100, 10, false},
		{"one past the last page", 11, 100, 10, false},
		{"exactly the last page", 10, 100, 10, true},
		{"negative page", -1, 100, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidPage(tt.page, tt.totalItems, tt.perPage); got != tt.want {
				t.Errorf("IsValidPage(%d, %d, %d) = %v, want %v",
					tt.page, tt.totalItems, tt.perPage, got, tt.want)
			}
		})
	}
}

func TestDispatch(t *testing.T) {
	t.Run("valid target invokes callback exactly once", func(t *testing.T) {
		var calls []int
		ok := Dispatch(5, 100, 10, func(page int) { calls = append(calls, page) })
		if !ok {
			t.Error("Dispatch should report the callback ran")
		}
		if len(calls) != 1 || calls[0] != 5 {
			t.Errorf("calls = %v, want [5]", calls)
		}
	})

	t.Run("invalid target is a silent no-op", func(t *testing.T) {
		called := false
		ok := Dispatch(0, 100, 10, func(int) { called = true })
		if ok || called {
			t.Error("callback must not run for page 0")
		}
	})

	t.Run("previous on first page is ignored", func(t *testing.T) {
		// Target 0 is what a Previous control on page 1 would request.
		called := false
		Dispatch(1-1, 100, 10, func(int) { called = true })
		if called {
			t.Error("callback must not run")
		}
	})

	t.Run("no page is dispatchable over empty data", func(t *testing.T) {
		called := false
		Dispatch(1, 0, 10, func(int) { called = true })
		if called {
			t.Error("callback must not run when totalItems is 0")
		}
	})
}

func TestBuildPageDescriptors(t *testing.T) {
	t.Run("middle page", func(t *testing.T) {
		got := BuildPageDescriptors(3, 95, 10)

		// Previous + pages 1..10 + Next.
		if len(got) != 12 {
			t.Fatalf("len = %d, want 12", len(got))
		}

		prev := got[0]
		if prev.Kind != KindPrevious || prev.Page != 2 || prev.Disabled {
			t.Errorf("previous = %+v, want enabled previous targeting 2", prev)
		}

		for i := 1; i <= 10; i++ {
			d := got[i]
			if d.Kind != KindPage || d.Page != i {
				t.Errorf("descriptor %d = %+v, want page %d", i, d, i)
			}
			if d.Disabled {
				t.Errorf("numbered descriptor %d must never be disabled", i)
			}
			if wantActive := i == 3; d.Active != wantActive {
				t.Errorf("descriptor %d active = %v, want %v", i, d.Active, wantActive)
			}
		}

		next := got[11]
		if next.Kind != KindNext || next.Page != 4 || next.Disabled {
			t.Errorf("next = %+v, want enabled next targeting 4", next)
		}
	})

	t.Run("first page disables previous", func(t *testing.T) {
		got := BuildPageDescriptors(1, 30, 10)
		if !got[0].Disabled {
			t.Error("previous must be disabled on page 1")
		}
		if got[len(got)-1].Disabled {
			t.Error("next must be enabled on page 1 of 3")
		}
	})

	t.Run("last page disables next", func(t *testing.T) {
		got := BuildPageDescriptors(3, 30, 10)
		if got[0].Disabled {
			t.Error("previous must be enabled on page 3")
		}
		if !got[len(got)-1].Disabled {
			t.Error("next must be disabled on the last page")
		}
	})

	t.Run("zero total pages emits only disabled ends", func(t *testing.T) {
		got := BuildPageDescriptors(1, 0, 10)
		if len(got) != 2 {
			t.Fatalf("len = %d, want 2 (previous and next only)", len(got))
		}
		if got[0].Kind != KindPrevious || !got[0].Disabled {
			t.Errorf("previous = %+v, want disabled", got[0])
		}
		if got[1].Kind != KindNext || !got[1].Disabled {
			t.Errorf("next = %+v, want disabled", got[1])
		}
	})
}
