package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPatientGender(t *testing.T) {
	tests := []struct {
		name  string
		pesel string
		want  string
	}{
		{"odd tenth digit is male", "44051401359", GenderMale},
		{"even tenth digit is female", "02270803624", GenderFemale},
		{"malformed pesel", "1234", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Patient{Pesel: tt.pesel}
			assert.Equal(t, tt.want, p.Gender())
		})
	}
}

func TestPatientBirthDate(t *testing.T) {
	tests := []struct {
		name  string
		pesel string
		want  time.Time
	}{
		{
			name:  "twentieth century",
			pesel: "44051401359",
			want:  time.Date(1944, time.May, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "twenty-first century encodes months 21 to 32",
			pesel: "02270803624",
			want:  time.Date(2002, time.July, 8, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "malformed pesel",
			pesel: "1234",
			want:  time.Time{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Patient{Pesel: tt.pesel}
			assert.Equal(t, tt.want, p.BirthDate())
		})
	}
}
