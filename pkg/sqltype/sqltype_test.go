package sqltype

import (
	"strings"
	"testing"
	"time"
)

func TestDataType(t *testing.T) {
	tests := []struct {
		name        string
		value       interface{}
		expected    string
		expectError bool
	}{
		{
			name:     "int slice",
			value:    []int{1, 2, 3},
			expected: TypeInteger,
		},
		{
			name:     "empty int slice maps from element type",
			value:    []int{},
			expected: TypeInteger,
		},
		{
			name:     "scalar int",
			value:    42,
			expected: TypeInteger,
		},
		{
			name:     "int64",
			value:    int64(42),
			expected: TypeInteger,
		},
		{
			name:     "unsigned",
			value:    uint16(7),
			expected: TypeInteger,
		},
		{
			name:     "bool slice",
			value:    []bool{true, false},
			expected: TypeSmallInt,
		},
		{
			name:     "float64 slice",
			value:    []float64{1.5, 2.5},
			expected: TypeDouble,
		},
		{
			name:     "string slice",
			value:    []string{"x", "abc"},
			expected: TypeText,
		},
		{
			name:     "date",
			value:    Date{Year: 2024, Month: time.March, Day: 1},
			expected: TypeDate,
		},
		{
			name:     "date slice",
			value:    []Date{{Year: 2024, Month: time.March, Day: 1}},
			expected: TypeDate,
		},
		{
			name:     "timestamp",
			value:    time.Now(),
			expected: TypeTimestamp,
		},
		{
			name:     "timestamp slice",
			value:    []time.Time{time.Now()},
			expected: TypeTimestamp,
		},
		{
			name:     "duration maps to TIME not INTEGER",
			value:    5 * time.Second,
			expected: TypeTime,
		},
		{
			name:     "duration slice",
			value:    []time.Duration{time.Second},
			expected: TypeTime,
		},
		{
			name:     "byte slice is a single BLOB",
			value:    []byte{0x01, 0x02},
			expected: TypeBlob,
		},
		{
			name:     "slice of byte slices stays BLOB",
			value:    [][]byte{{0x01}, {0x02}},
			expected: TypeBlob,
		},
		{
			name:     "pointer follows element type",
			value:    new(float64),
			expected: TypeDouble,
		},
		{
			name:        "nil is an error",
			value:       nil,
			expectError: true,
		},
		{
			name:        "unmapped type is an error",
			value:       make(chan int),
			expectError: true,
		},
		{
			name:        "record must go through DataTypes",
			value:       Record{},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DataType(tt.value)

			if tt.expectError {
				if err == nil {
					t.Errorf("expected error but got none (result: %s)", got)
				}
				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestDataTypes(t *testing.T) {
	rec := Record{Columns: []Column{
		{Name: "id", Values: []int{1, 2}},
		{Name: "label", Values: []string{"a", "b"}},
		{Name: "score", Values: []float64{0.5}},
		{Name: "active", Values: []bool{true}},
	}}

	types, err := DataTypes(rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []string{TypeInteger, TypeText, TypeDouble, TypeSmallInt}
	if len(types) != len(expected) {
		t.Fatalf("expected %d types, got %d", len(expected), len(types))
	}
	for i, want := range expected {
		if types[i] != want {
			t.Errorf("column %d: expected %s, got %s", i, want, types[i])
		}
	}
}

func TestDataTypesEmptyRecord(t *testing.T) {
	types, err := DataTypes(Record{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(types) != 0 {
		t.Errorf("expected empty result, got %v", types)
	}
}

func TestDataTypesNamesFailingColumn(t *testing.T) {
	rec := Record{Columns: []Column{
		{Name: "ok", Values: []int{1}},
		{Name: "bad", Values: make(chan int)},
	}}

	_, err := DataTypes(rec)
	if err == nil {
		t.Fatal("expected error for unmapped column")
	}
	if !strings.Contains(err.Error(), `"bad"`) {
		t.Errorf("error should name the failing column, got: %v", err)
	}
}

func TestDateString(t *testing.T) {
	d := Date{Year: 2024, Month: time.March, Day: 7}
	if got := d.String(); got != "2024-03-07" {
		t.Errorf("expected 2024-03-07, got %s", got)
	}
}

func TestDateOf(t *testing.T) {
	d := DateOf(time.Date(2024, time.December, 31, 23, 59, 0, 0, time.UTC))
	if d.Year != 2024 || d.Month != time.December || d.Day != 31 {
		t.Errorf("unexpected date: %+v", d)
	}
}
