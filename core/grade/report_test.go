package grade

import (
	"testing"
)

func TestBandFor(t *testing.T) {
	tests := []struct {
		value int
		want  Band
	}{
		{100, BandExcellent},
		{90, BandExcellent},
		{89, BandGood},
		{80, BandGood},
		{79, BandPassing},
		{70, BandPassing},
		{69, BandFailing},
		{50, BandFailing},
		{0, BandFailing},
	}
	for _, tt := range tests {
		if got := BandFor(tt.value); got != tt.want {
			t.Errorf("BandFor(%d) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestAverage(t *testing.T) {
	tests := []struct {
		name   string
		grades []Grade
		want   float64
	}{
		{name: "no grades", want: 0},
		{name: "one grade", grades: []Grade{{Value: 70}}, want: 70},
		{name: "two grades", grades: []Grade{{Value: 80}, {Value: 90}}, want: 85},
		{name: "uneven", grades: []Grade{{Value: 80}, {Value: 90}, {Value: 91}}, want: 87},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Average(tt.grades); got != tt.want {
				t.Errorf("Average() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQueryFilterMatch(t *testing.T) {
	g := Grade{ID: "1", StudentID: "s1", CourseID: "c1", Value: 85}

	tests := []struct {
		name   string
		filter QueryFilter
		want   bool
	}{
		{name: "empty filter matches", want: true},
		{name: "student match", filter: QueryFilter{StudentID: "s1"}, want: true},
		{name: "student mismatch", filter: QueryFilter{StudentID: "s2"}, want: false},
		{name: "course match", filter: QueryFilter{CourseID: "c1"}, want: true},
		{name: "course mismatch", filter: QueryFilter{CourseID: "c2"}, want: false},
		{name: "both match", filter: QueryFilter{StudentID: "s1", CourseID: "c1"}, want: true},
		{name: "AND semantics", filter: QueryFilter{StudentID: "s1", CourseID: "c2"}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Match(g); got != tt.want {
				t.Errorf("Match() = %v, want %v", got, tt.want)
			}
		})
	}
}
