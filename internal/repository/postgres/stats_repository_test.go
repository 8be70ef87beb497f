package postgres

import (
	"database/sql"
	"errors"
	"testing"

	"gradrecruit/internal/common"
)

type fakeStatsRow struct {
	counts [8]int
	avg    sql.NullFloat64
	err    error
}

func (r *fakeStatsRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, count := range r.counts {
		*(dest[i].(*int)) = count
	}
	*(dest[8].(*sql.NullFloat64)) = r.avg
	return nil
}

func TestScanStatistics_EmptyStorage(t *testing.T) {
	result, err := scanStatistics(&fakeStatsRow{})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if result.TotalStudents != 0 || result.ActiveStudents != 0 || result.ActiveVacancies != 0 ||
		result.TotalApplications != 0 || result.AcceptedApplications != 0 || result.PendingApplications != 0 ||
		result.EmployedStudents != 0 || result.UnreadNotifications != 0 {
		t.Fatalf("expected all counts zero on empty storage, got %+v", result)
	}
	if result.AverageGPA != nil {
		t.Fatalf("expected nil average gpa when no student has one, got %v", *result.AverageGPA)
	}
}

func TestScanStatistics_PopulatedStorage(t *testing.T) {
	row := &fakeStatsRow{
		counts: [8]int{3, 2, 1, 5, 2, 2, 1, 4},
		avg:    sql.NullFloat64{Float64: 3.5, Valid: true},
	}
	result, err := scanStatistics(row)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if result.TotalStudents != 3 || result.ActiveStudents != 2 {
		t.Fatalf("expected student counts carried over, got %+v", result)
	}
	if result.AcceptedApplications != 2 || result.PendingApplications != 2 {
		t.Fatalf("expected application status counts carried over, got %+v", result)
	}
	if result.AverageGPA == nil || *result.AverageGPA != 3.5 {
		t.Fatalf("expected average gpa 3.5, got %v", result.AverageGPA)
	}
}

func TestScanStatistics_ScanError(t *testing.T) {
	_, err := scanStatistics(&fakeStatsRow{err: errors.New("connection reset")})
	if !common.Is(err, common.CodeInternal) {
		t.Fatalf("expected internal error, got %v", err)
	}
}
