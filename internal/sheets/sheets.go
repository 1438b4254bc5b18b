// Package sheets reads and writes the grade tracker as an Excel workbook
// with one sheet for CGPA subjects and one for attendance.
package sheets

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/xuri/excelize/v2"

	"github.com/julianstephens/campusbuddy/internal/grades"
	"github.com/julianstephens/campusbuddy/internal/models"
	"github.com/julianstephens/campusbuddy/internal/validation"
)

const (
	CGPASheet       = "CGPA"
	AttendanceSheet = "Attendance"
)

var ErrInvalidFileFormat = errors.New("invalid workbook format")

var (
	cgpaHeader       = []any{"Subject", "Credits", "Grade", "Grade Points"}
	attendanceHeader = []any{"Subject", "Attendance %", "Status"}
)

// Workbook is the tracker data carried by a sheet file.
type Workbook struct {
	Subjects   []models.CGPASubject
	Attendance []models.AttendanceSubject
}

// Build renders wb as an excelize file. The caller closes it.
func Build(wb Workbook) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", CGPASheet); err != nil {
		f.Close()
		return nil, err
	}
	if _, err := f.NewSheet(AttendanceSheet); err != nil {
		f.Close()
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, err
	}

	if err := writeCGPA(f, wb.Subjects, bold); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write %s sheet: %w", CGPASheet, err)
	}
	if err := writeAttendance(f, wb.Attendance, bold); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write %s sheet: %w", AttendanceSheet, err)
	}
	return f, nil
}

func writeCGPA(f *excelize.File, subjects []models.CGPASubject, bold int) error {
	if err := f.SetSheetRow(CGPASheet, "A1", &cgpaHeader); err != nil {
		return err
	}
	if err := f.SetCellStyle(CGPASheet, "A1", "D1", bold); err != nil {
		return err
	}
	if err := f.SetColWidth(CGPASheet, "A", "A", 30); err != nil {
		return err
	}

	for i, s := range subjects {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{s.Name, s.Credits, s.Grade, grades.GradePoint(s.Grade)}
		if err := f.SetSheetRow(CGPASheet, cell, &row); err != nil {
			return err
		}
	}

	// totals go below a blank row so Parse stops before them
	totalRow := len(subjects) + 3
	cell, err := excelize.CoordinatesToCellName(1, totalRow)
	if err != nil {
		return err
	}
	totals := []any{"Total Credits", grades.TotalCredits(subjects), "CGPA", grades.CalculateCGPA(subjects)}
	if err := f.SetSheetRow(CGPASheet, cell, &totals); err != nil {
		return err
	}
	end, _ := excelize.CoordinatesToCellName(4, totalRow)
	return f.SetCellStyle(CGPASheet, cell, end, bold)
}

func writeAttendance(f *excelize.File, records []models.AttendanceSubject, bold int) error {
	if err := f.SetSheetRow(AttendanceSheet, "A1", &attendanceHeader); err != nil {
		return err
	}
	if err := f.SetCellStyle(AttendanceSheet, "A1", "C1", bold); err != nil {
		return err
	}
	if err := f.SetColWidth(AttendanceSheet, "A", "A", 30); err != nil {
		return err
	}

	for i, a := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		status := "OK"
		if grades.IsLow(a.Attendance) {
			status = "Low"
		}
		row := []any{a.Subject, a.Attendance, status}
		if err := f.SetSheetRow(AttendanceSheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

// Write encodes wb as an .xlsx document.
func Write(w io.Writer, wb Workbook) error {
	f, err := Build(wb)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteTo(w)
	return err
}

// Save writes wb to path.
func Save(path string, wb Workbook) error {
	f, err := Build(wb)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// Parse reads a workbook produced by Write or edited by hand. Either sheet
// may be missing but not both. Rows are read until the first blank row and
// every row is validated; ids are left empty.
func Parse(r io.Reader) (Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Workbook{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	var wb Workbook
	found := false
	for _, name := range f.GetSheetList() {
		switch strings.ToLower(name) {
		case strings.ToLower(CGPASheet):
			rows, err := f.GetRows(name)
			if err != nil {
				return Workbook{}, fmt.Errorf("failed to get rows: %w", err)
			}
			if wb.Subjects, err = parseCGPA(rows); err != nil {
				return Workbook{}, fmt.Errorf("%s sheet: %w", name, err)
			}
			found = true
		case strings.ToLower(AttendanceSheet):
			rows, err := f.GetRows(name)
			if err != nil {
				return Workbook{}, fmt.Errorf("failed to get rows: %w", err)
			}
			if wb.Attendance, err = parseAttendance(rows); err != nil {
				return Workbook{}, fmt.Errorf("%s sheet: %w", name, err)
			}
			found = true
		}
	}
	if !found {
		return Workbook{}, fmt.Errorf("%w: no %s or %s sheet", ErrInvalidFileFormat, CGPASheet, AttendanceSheet)
	}
	return wb, nil
}

// normalize reduces a header cell to its lowercase letters.
func normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, s)
}

// columns maps normalized header names to indices and checks required ones.
func columns(rows [][]string, required ...string) (map[string]int, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: missing header row", ErrInvalidFileFormat)
	}
	cols := make(map[string]int)
	for i, col := range rows[0] {
		cols[normalize(col)] = i
	}
	for _, col := range required {
		if _, ok := cols[col]; !ok {
			return nil, fmt.Errorf("missing required column: %s", col)
		}
	}
	return cols, nil
}

func cellValue(row []string, cols map[string]int, name string) string {
	if idx, ok := cols[name]; ok && idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func parseCGPA(rows [][]string) ([]models.CGPASubject, error) {
	cols, err := columns(rows, "subject", "credits", "grade")
	if err != nil {
		return nil, err
	}

	subjects := []models.CGPASubject{}
	for i, row := range rows[1:] {
		if blank(row) {
			break
		}
		rowNum := i + 2

		name := cellValue(row, cols, "subject")
		credits, err := strconv.Atoi(cellValue(row, cols, "credits"))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid credits value: %q", rowNum, cellValue(row, cols, "credits"))
		}
		grade := strings.ToUpper(cellValue(row, cols, "grade"))
		if err := validation.CGPASubject(name, credits, grade); err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}
		subjects = append(subjects, models.CGPASubject{Name: name, Credits: credits, Grade: grade})
	}
	return subjects, nil
}

func parseAttendance(rows [][]string) ([]models.AttendanceSubject, error) {
	cols, err := columns(rows, "subject", "attendance")
	if err != nil {
		return nil, err
	}

	records := []models.AttendanceSubject{}
	for i, row := range rows[1:] {
		if blank(row) {
			break
		}
		rowNum := i + 2

		subject := cellValue(row, cols, "subject")
		raw := strings.TrimSuffix(cellValue(row, cols, "attendance"), "%")
		pct, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid attendance value: %q", rowNum, raw)
		}
		if err := validation.AttendanceSubject(subject, pct); err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}
		records = append(records, models.AttendanceSubject{Subject: subject, Attendance: pct})
	}
	return records, nil
}
