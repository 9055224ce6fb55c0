package validation

import (
	"errors"
	"testing"
)

func TestValidateAyah(t *testing.T) {
	tests := []struct {
		name    string
		surah   int
		verse   int
		wantErr bool
		field   string
	}{
		{name: "first verse", surah: 1, verse: 1},
		{name: "ayat al-kursi", surah: 2, verse: 255},
		{name: "last verse of al-baqarah", surah: 2, verse: 286},
		{name: "last verse", surah: 114, verse: 6},
		{name: "surah zero", surah: 0, verse: 1, wantErr: true, field: "surah"},
		{name: "surah 115", surah: 115, verse: 1, wantErr: true, field: "surah"},
		{name: "verse zero", surah: 1, verse: 0, wantErr: true, field: "verse"},
		{name: "verse past the end", surah: 1, verse: 8, wantErr: true, field: "verse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAyah(tt.surah, tt.verse)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateAyah(%d, %d) error = %v, wantErr %v", tt.surah, tt.verse, err, tt.wantErr)
			}
			if !tt.wantErr {
				return
			}
			var ve ValidationError
			if !errors.As(err, &ve) || ve.Field != tt.field {
				t.Errorf("expected ValidationError on %s, got %v", tt.field, err)
			}
		})
	}
}

func TestValidateScore(t *testing.T) {
	tests := []struct {
		score   int
		wantErr bool
	}{
		{0, false},
		{100, false},
		{-1, true},
		{101, true},
	}

	for _, tt := range tests {
		if err := ValidateScore(tt.score); (err != nil) != tt.wantErr {
			t.Errorf("ValidateScore(%d) error = %v, wantErr %v", tt.score, err, tt.wantErr)
		}
	}
}

func TestValidateSection(t *testing.T) {
	if err := ValidateSection(30); err != nil {
		t.Errorf("ValidateSection(30) = %v", err)
	}
	if err := ValidateSection(31); err == nil {
		t.Error("expected an error for juz 31")
	}
}

func TestValidateTimeOfDay(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "morning", value: "07:00"},
		{name: "midnight", value: "00:00"},
		{name: "late", value: "23:59"},
		{name: "hour out of range", value: "24:00", wantErr: true},
		{name: "minute out of range", value: "07:60", wantErr: true},
		{name: "missing leading zero", value: "7:00", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTimeOfDay("reminder_time", tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTimeOfDay(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestValidateVerseText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{name: "words", text: "بسم الله"},
		{name: "empty", text: "", wantErr: true},
		{name: "whitespace", text: "  \t ", wantErr: true},
		{name: "only invisible marks", text: "\u200f\ufeff", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVerseText("text", tt.text)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateVerseText(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			}
		})
	}
}
