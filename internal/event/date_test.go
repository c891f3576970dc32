package event

import (
	"testing"
	"time"
)

func TestParseStartTime(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    time.Time
		wantErr bool
	}{
		{
			name: "Literal Z suffix",
			raw:  "2025-05-05T02:00:00Z",
			want: time.Date(2025, 5, 5, 2, 0, 0, 0, time.UTC),
		},
		{
			name: "Numeric zero offset",
			raw:  "2025-05-05T02:00:00+00:00",
			want: time.Date(2025, 5, 5, 2, 0, 0, 0, time.UTC),
		},
		{
			name: "Negative offset converted to UTC",
			raw:  "2025-05-05T22:00:00-04:00",
			want: time.Date(2025, 5, 6, 2, 0, 0, 0, time.UTC),
		},
		{
			name: "No seconds",
			raw:  "2025-05-05T02:00Z",
			want: time.Date(2025, 5, 5, 2, 0, 0, 0, time.UTC),
		},
		{
			name:    "Not a timestamp",
			raw:     "May 5, 2025",
			wantErr: true,
		},
		{
			name:    "Empty string",
			raw:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStartTime(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseStartTime(%q) = %v, want error", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStartTime(%q) returned error: %v", tt.raw, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseStartTime(%q) = %v, want %v", tt.raw, got, tt.want)
			}
			if got.Location() != time.UTC {
				t.Errorf("ParseStartTime(%q) location = %v, want UTC", tt.raw, got.Location())
			}
		})
	}
}

func TestParseStartTimeNotationEquivalence(t *testing.T) {
	zulu, err := ParseStartTime("2025-11-08T23:30:00Z")
	if err != nil {
		t.Fatalf("parsing Z notation: %v", err)
	}
	offset, err := ParseStartTime("2025-11-08T18:30:00-05:00")
	if err != nil {
		t.Fatalf("parsing offset notation: %v", err)
	}
	if !zulu.Equal(offset) {
		t.Errorf("equivalent notations parsed to different instants: %v vs %v", zulu, offset)
	}
}

func TestOrdinal(t *testing.T) {
	tests := []struct {
		day  int
		want string
	}{
		{1, "1st"},
		{2, "2nd"},
		{3, "3rd"},
		{4, "4th"},
		{10, "10th"},
		{11, "11th"},
		{12, "12th"},
		{13, "13th"},
		{21, "21st"},
		{22, "22nd"},
		{23, "23rd"},
		{31, "31st"},
	}

	for _, tt := range tests {
		if got := Ordinal(tt.day); got != tt.want {
			t.Errorf("Ordinal(%d) = %q, want %q", tt.day, got, tt.want)
		}
	}
}

func TestFormatDisplay(t *testing.T) {
	eastern, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("loading America/New_York: %v", err)
	}
	india, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatalf("loading Asia/Kolkata: %v", err)
	}
	zones := []Zone{
		{Location: eastern, Label: "EST"},
		{Location: india, Label: "IST"},
	}

	// 02:00 UTC on May 6 is 10 PM May 5 in New York and 7:30 AM May 6 in India.
	instant := time.Date(2025, 5, 6, 2, 0, 0, 0, time.UTC)
	want := "5th May 2025, 10:00 PM EST | 6th May 2025, 7:30 AM IST"
	if got := FormatDisplay(instant, zones); got != want {
		t.Errorf("FormatDisplay() = %q, want %q", got, want)
	}
}

func TestVisible(t *testing.T) {
	india, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatalf("loading Asia/Kolkata: %v", err)
	}

	// Event at 02:00 UTC on May 5 lands on May 5 in the reference zone,
	// so the cutoff is midnight May 6 IST.
	eventTime := time.Date(2025, 5, 5, 2, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		eventTime time.Time
		now       time.Time
		want      bool
	}{
		{
			name:      "Before cutoff",
			eventTime: eventTime,
			now:       time.Date(2025, 5, 5, 23, 0, 0, 0, india),
			want:      true,
		},
		{
			name:      "Exactly at cutoff",
			eventTime: eventTime,
			now:       time.Date(2025, 5, 6, 0, 0, 0, 0, india),
			want:      true,
		},
		{
			name:      "Just past cutoff",
			eventTime: eventTime,
			now:       time.Date(2025, 5, 6, 0, 0, 1, 0, india),
			want:      false,
		},
		{
			name:      "Days before the event",
			eventTime: eventTime,
			now:       time.Date(2025, 5, 1, 12, 0, 0, 0, india),
			want:      true,
		},
		{
			name:      "Unparseable date stays visible",
			eventTime: time.Time{},
			now:       time.Date(2030, 1, 1, 0, 0, 0, 0, india),
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Visible(tt.eventTime, tt.now, india); got != tt.want {
				t.Errorf("Visible(%v, %v) = %v, want %v", tt.eventTime, tt.now, got, tt.want)
			}
		})
	}
}
