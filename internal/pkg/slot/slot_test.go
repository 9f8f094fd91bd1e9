package slot_test

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/adiazny/ttp-slot-checker/internal/pkg/slot"
)

func TestFirstOpen(t *testing.T) {
	tests := []struct {
		name   string
		slots  []slot.Slot
		want   slot.Slot
		wantOK bool
	}{
		{
			name:   "empty response",
			slots:  nil,
			want:   slot.Slot{},
			wantOK: false,
		},
		{
			name: "no active slots",
			slots: []slot.Slot{
				{Active: 0, Timestamp: "2026-11-02T08:00"},
				{Active: 0, Timestamp: "2026-11-02T08:15"},
			},
			want:   slot.Slot{},
			wantOK: false,
		},
		{
			name: "first active slot wins",
			slots: []slot.Slot{
				{Active: 0, Timestamp: "2026-11-02T08:00"},
				{Active: 1, Timestamp: "2026-11-03T09:30"},
				{Active: 4, Timestamp: "2026-11-01T07:00"},
			},
			want:   slot.Slot{Active: 1, Timestamp: "2026-11-03T09:30"},
			wantOK: true,
		},
		{
			name: "negative count is not open",
			slots: []slot.Slot{
				{Active: -1, Timestamp: "2026-11-02T08:00"},
			},
			want:   slot.Slot{},
			wantOK: false,
		},
	}
	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			got, ok := slot.FirstOpen(tt.slots)
			if ok != tt.wantOK {
				t.Errorf("FirstOpen() ok = %v, want %v", ok, tt.wantOK)
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FirstOpen() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSlot_Time(t *testing.T) {
	got, err := slot.Slot{Timestamp: "2026-11-03T09:30"}.Time()
	if err != nil {
		t.Fatalf("Slot.Time() error = %v", err)
	}

	want := time.Date(2026, time.November, 3, 9, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Slot.Time() = %v, want %v", got, want)
	}

	if _, err := (slot.Slot{Timestamp: "03/11/2026"}).Time(); err == nil {
		t.Error("Slot.Time() expected error for malformed timestamp")
	}
}

func TestSlot_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    []slot.Slot
		wantErr bool
	}{
		{
			name: "all fields",
			data: `[{"active":2,"total":3,"pending":1,"conflicts":0,"duration":15,"timestamp":"2026-11-03T14:30","remote":true}]`,
			want: []slot.Slot{{Active: 2, Total: 3, Pending: 1, Duration: 15, Timestamp: "2026-11-03T14:30", Remote: true}},
		},
		{
			name: "only required fields",
			data: `[{"active":0,"timestamp":"2026-11-03T14:30"}]`,
			want: []slot.Slot{{Active: 0, Timestamp: "2026-11-03T14:30"}},
		},
		{
			name:    "missing active",
			data:    `[{"timestamp":"2026-11-03T14:30","available":3}]`,
			wantErr: true,
		},
		{
			name:    "null active",
			data:    `[{"active":null,"timestamp":"2026-11-03T14:30"}]`,
			wantErr: true,
		},
		{
			name:    "missing timestamp",
			data:    `[{"active":1}]`,
			wantErr: true,
		},
		{
			name:    "null element",
			data:    `[null]`,
			wantErr: true,
		},
		{
			name:    "active of wrong type",
			data:    `[{"active":"1","timestamp":"2026-11-03T14:30"}]`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			var got []slot.Slot

			err := json.Unmarshal([]byte(tt.data), &got)
			if (err != nil) != tt.wantErr {
				t.Fatalf("json.Unmarshal() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				return
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("json.Unmarshal() = %v, want %v", got, tt.want)
			}
		})
	}
}
