package subset

import (
	"errors"
	"slices"
	"testing"
)

func TestItems_KeysFollowInsertionOrder(t *testing.T) {
	items := NewItems()
	items.Set("B", Records{})
	items.Set("A", Records{})
	items.Set("C", Records{})
	items.Set("B", Records{{"x": 1.0}})

	want := []string{"B", "A", "C"}
	if got := items.Keys(); !slices.Equal(got, want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	if items.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", items.Len())
	}
	recs, err := items.Records("B")
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("Records(B) len = %d, want 1", len(recs))
	}
}

func TestItems_KeysReturnsCopy(t *testing.T) {
	items := NewItems()
	items.Set("A", nil)
	keys := items.Keys()
	keys[0] = "mutated"
	if items.Keys()[0] != "A" {
		t.Fatal("Keys() exposed internal slice")
	}
}

func TestItems_ZeroValueIsUsable(t *testing.T) {
	var items Items
	if items.Len() != 0 || items.Has("A") {
		t.Fatal("zero Items should be empty")
	}
	items.Set("A", 1)
	if !items.Has("A") {
		t.Fatal("Set on zero Items did not store the key")
	}
}

func TestItems_RecordsUnknownKey(t *testing.T) {
	items := NewItems()
	if _, err := items.Records("missing"); !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("Records() error = %v, want ErrUnknownKey", err)
	}
}

func TestAsRecords(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{name: "records", in: Records{{"a": 1.0}}, want: 1},
		{name: "map slice", in: []map[string]any{{"a": 1.0}, {"a": 2.0}}, want: 2},
		{name: "decoded any", in: []any{map[string]any{"a": 1.0}, "skip"}, want: 1},
		{name: "opaque", in: struct{}{}, want: 0},
		{name: "nil", in: nil, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(AsRecords(tt.in)); got != tt.want {
				t.Fatalf("len(AsRecords()) = %d, want %d", got, tt.want)
			}
		})
	}
}
