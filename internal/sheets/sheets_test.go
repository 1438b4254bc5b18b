package sheets

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/julianstephens/campusbuddy/internal/models"
	"github.com/julianstephens/campusbuddy/internal/validation"
)

func sampleWorkbook() Workbook {
	return Workbook{
		Subjects: []models.CGPASubject{
			{Name: "Data Structures", Credits: 4, Grade: "A+"},
			{Name: "Operating Systems", Credits: 3, Grade: "A"},
		},
		Attendance: []models.AttendanceSubject{
			{Subject: "Data Structures", Attendance: 85},
			{Subject: "Operating Systems", Attendance: 72.5},
		},
	}
}

func TestWriteParse_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleWorkbook()); err != nil {
		t.Fatal(err)
	}

	got, err := Parse(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, sampleWorkbook()) {
		t.Errorf("Parse() = %+v, want %+v", got, sampleWorkbook())
	}
}

func TestSave_WritesTotals(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grades.xlsx")
	if err := Save(path, sampleWorkbook()); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	label, _ := f.GetCellValue(CGPASheet, "C5")
	value, _ := f.GetCellValue(CGPASheet, "D5")
	if label != "CGPA" || value != "8.57" {
		t.Errorf("totals row = %q %q, want CGPA 8.57", label, value)
	}
	status, _ := f.GetCellValue(AttendanceSheet, "C3")
	if status != "Low" {
		t.Errorf("status = %q, want Low", status)
	}
}

func writeRows(t *testing.T, sheet string, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		t.Fatal(err)
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	return &buf
}

func TestParse_HandEdited(t *testing.T) {
	buf := writeRows(t, "attendance", [][]any{
		{" SUBJECT ", "Attendance (%)"},
		{"Physics", "64%"},
		{"Maths", 90},
	})

	wb, err := Parse(buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(wb.Subjects) != 0 {
		t.Errorf("Subjects = %v", wb.Subjects)
	}
	want := []models.AttendanceSubject{{Subject: "Physics", Attendance: 64}, {Subject: "Maths", Attendance: 90}}
	if !reflect.DeepEqual(wb.Attendance, want) {
		t.Errorf("Attendance = %+v", wb.Attendance)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		sheet   string
		rows    [][]any
		wantErr error
		wantMsg string
	}{
		{
			name:    "no known sheet",
			sheet:   "Grades",
			rows:    [][]any{{"Subject"}},
			wantErr: ErrInvalidFileFormat,
		},
		{
			name:    "missing column",
			sheet:   CGPASheet,
			rows:    [][]any{{"Subject", "Grade"}, {"Maths", "A"}},
			wantMsg: "missing required column: credits",
		},
		{
			name:    "bad credits",
			sheet:   CGPASheet,
			rows:    [][]any{{"Subject", "Credits", "Grade"}, {"Maths", "four", "A"}},
			wantMsg: "row 2: invalid credits",
		},
		{
			name:    "unknown grade",
			sheet:   CGPASheet,
			rows:    [][]any{{"Subject", "Credits", "Grade"}, {"Maths", 4, "A"}, {"Art", 2, "E"}},
			wantErr: validation.ErrInvalidGrade,
			wantMsg: "row 3",
		},
		{
			name:    "attendance out of range",
			sheet:   AttendanceSheet,
			rows:    [][]any{{"Subject", "Attendance"}, {"Maths", 120}},
			wantErr: validation.ErrInvalidAttendance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(writeRows(t, tt.sheet, tt.rows))
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantMsg)
			}
		})
	}
}

func TestParse_NotAWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.xlsx")
	if err := os.WriteFile(path, []byte("plain text"), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if _, err := Parse(f); err == nil {
		t.Error("expected an error for a non-xlsx file")
	}
}
