package service

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// buildWorkbook writes a single-sheet workbook from rows of cells.
func buildWorkbook(t *testing.T, rows [][]string) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for r, row := range rows {
		for c, v := range row {
			name, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			f.SetCellValue("Sheet1", name, v)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf
}

// ═══════════════════════════════════════════════════════════
// ParseScheduleWorkbook
// ═══════════════════════════════════════════════════════════

func TestParseScheduleWorkbook_StandardHeaders(t *testing.T) {
	buf := buildWorkbook(t, [][]string{
		{"Hari", "Waktu", "Nama Kelas", "Mata Kuliah", "Dosen", "Ruangan"},
		{"Senin", "07:00 - 08:40", "PDB01", "Algoritma", "Budi Santoso", "R1"},
		{"Selasa", "09:00 - 10:40", "PDB02", "Basis Data", "", "R2"},
	})

	rows, err := ParseScheduleWorkbook(buf)
	if err != nil {
		t.Fatalf("ParseScheduleWorkbook failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	first := rows[0]
	if first.Day != "Senin" || first.TimeSlot != "07:00 - 08:40" || first.ClassName != "PDB01" ||
		first.CourseName != "Algoritma" || first.LecturerName != "Budi Santoso" || first.RoomName != "R1" {
		t.Errorf("unexpected first row: %+v", first)
	}
	if rows[1].LecturerName != "" {
		t.Errorf("expected blank lecturer, got %q", rows[1].LecturerName)
	}
}

func TestParseScheduleWorkbook_HeaderVariants(t *testing.T) {
	// Mixed case, alternate spellings, shuffled column order.
	buf := buildWorkbook(t, [][]string{
		{"RUANG", "Kelas", "day", "Jam", "Matkul", "Nama Dosen"},
		{"R1", "PDB01", "Senin", "07:00 - 08:40", "Algoritma", "Budi Santoso"},
	})

	rows, err := ParseScheduleWorkbook(buf)
	if err != nil {
		t.Fatalf("ParseScheduleWorkbook failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	r := rows[0]
	if r.RoomName != "R1" || r.ClassName != "PDB01" || r.Day != "Senin" ||
		r.TimeSlot != "07:00 - 08:40" || r.CourseName != "Algoritma" || r.LecturerName != "Budi Santoso" {
		t.Errorf("column mapping wrong: %+v", r)
	}
}

func TestParseScheduleWorkbook_SkipsBlankRows(t *testing.T) {
	buf := buildWorkbook(t, [][]string{
		{"Hari", "Waktu", "Kelas", "Mata Kuliah", "Ruangan"},
		{"Senin", "07:00 - 08:40", "PDB01", "Algoritma", "R1"},
		{"", "", "", "", ""},
		{"Selasa", "07:00 - 08:40", "PDB02", "Basis Data", "R2"},
	})

	rows, err := ParseScheduleWorkbook(buf)
	if err != nil {
		t.Fatalf("ParseScheduleWorkbook failed: %v", err)
	}
	if len(rows) != 2 {
		t.Errorf("expected blank row skipped, got %d rows", len(rows))
	}
}

func TestParseScheduleWorkbook_MissingLecturerColumn(t *testing.T) {
	// The lecturer column is optional.
	buf := buildWorkbook(t, [][]string{
		{"Hari", "Waktu", "Kelas", "Mata Kuliah", "Ruangan"},
		{"Senin", "07:00 - 08:40", "PDB01", "Algoritma", "R1"},
	})

	rows, err := ParseScheduleWorkbook(buf)
	if err != nil {
		t.Fatalf("ParseScheduleWorkbook failed: %v", err)
	}
	if rows[0].LecturerName != "" {
		t.Errorf("expected empty lecturer, got %q", rows[0].LecturerName)
	}
}

func TestParseScheduleWorkbook_MissingRequiredColumn(t *testing.T) {
	// No room column anywhere.
	buf := buildWorkbook(t, [][]string{
		{"Hari", "Waktu", "Kelas", "Mata Kuliah", "Dosen"},
		{"Senin", "07:00 - 08:40", "PDB01", "Algoritma", "Budi Santoso"},
	})

	if _, err := ParseScheduleWorkbook(buf); !errors.Is(err, ErrWorkbookNoHeader) {
		t.Errorf("expected ErrWorkbookNoHeader, got %v", err)
	}
}

func TestParseScheduleWorkbook_NotAWorkbook(t *testing.T) {
	if _, err := ParseScheduleWorkbook(strings.NewReader("bukan file excel")); !errors.Is(err, ErrWorkbookInvalid) {
		t.Errorf("expected ErrWorkbookInvalid, got %v", err)
	}
}
