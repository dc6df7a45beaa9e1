package dto

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateAcceptsSeveralLayouts(t *testing.T) {
	cases := map[string]time.Time{
		`"1990-05-01"`:                  time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
		`"1990-05-01T10:30:00Z"`:        time.Date(1990, 5, 1, 10, 30, 0, 0, time.UTC),
		`"1990-05-01T10:30:00.1234567"`: time.Date(1990, 5, 1, 10, 30, 0, 123456700, time.UTC),
		`"1990-05-01T12:30:00+02:00"`:   time.Date(1990, 5, 1, 10, 30, 0, 0, time.UTC),
		`null`:                          {},
		`""`:                            {},
	}
	for input, want := range cases {
		var d Date
		if err := json.Unmarshal([]byte(input), &d); err != nil {
			t.Fatalf("unmarshal %s: %v", input, err)
		}
		if !d.Equal(want) {
			t.Fatalf("unmarshal %s: got %v, want %v", input, d.Time, want)
		}
	}

	var d Date
	if err := json.Unmarshal([]byte(`"yesterday"`), &d); err == nil {
		t.Fatal("expected error for unsupported date")
	}
	if err := json.Unmarshal([]byte(`19900501`), &d); err == nil {
		t.Fatal("expected error for non-string date")
	}
}

func TestDateRendersCalendarDay(t *testing.T) {
	out, err := json.Marshal(struct {
		Birthday Date `json:"birthday"`
		Missing  Date `json:"missing"`
	}{Birthday: Date{Time: time.Date(1990, 5, 1, 10, 0, 0, 0, time.UTC)}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"birthday":"1990-05-01","missing":null}` {
		t.Fatalf("unexpected json %s", out)
	}
}
