package service

import (
	"errors"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/dioadam27-sketch/SIMPDB/internal/dto"
)

// ── Workbook parsing errors ──

var (
	ErrWorkbookInvalid  = errors.New("file Excel tidak dapat dibaca")
	ErrWorkbookNoHeader = errors.New("header kolom tidak ditemukan (Hari, Waktu, Kelas, Mata Kuliah, Ruangan)")
)

// Header variants accepted per column. Uploaded workbooks come from
// several templates, so matching is case-insensitive over a list of
// known spellings.
var scheduleHeaderVariants = map[string][]string{
	"day":      {"hari", "day"},
	"timeSlot": {"waktu", "jam", "time slot", "time_slot", "jam sesi"},
	"class":    {"nama kelas", "kelas", "class"},
	"course":   {"mata kuliah", "matkul", "nama mata kuliah", "course"},
	"lecturer": {"dosen", "nama dosen", "lecturer"},
	"room":     {"ruangan", "ruang", "room"},
}

// ParseScheduleWorkbook extracts timetable rows from an uploaded
// .xlsx file. The header row must be the first row of the first
// sheet; the lecturer column is optional. Values are returned as-is,
// name resolution happens during import.
func ParseScheduleWorkbook(r io.Reader) ([]dto.ScheduleImportRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, ErrWorkbookInvalid
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrWorkbookInvalid
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, ErrWorkbookInvalid
	}
	if len(rows) == 0 {
		return nil, ErrWorkbookNoHeader
	}

	// Map column index → logical field from the header row.
	cols := make(map[string]int)
	for i, h := range rows[0] {
		key := normalizeKey(h)
		for field, variants := range scheduleHeaderVariants {
			for _, v := range variants {
				if key == v {
					if _, taken := cols[field]; !taken {
						cols[field] = i
					}
				}
			}
		}
	}
	for _, required := range []string{"day", "timeSlot", "class", "course", "room"} {
		if _, ok := cols[required]; !ok {
			return nil, ErrWorkbookNoHeader
		}
	}

	pick := func(row []string, field string) string {
		idx, ok := cols[field]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	out := make([]dto.ScheduleImportRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		parsed := dto.ScheduleImportRow{
			Day:          pick(row, "day"),
			TimeSlot:     pick(row, "timeSlot"),
			ClassName:    pick(row, "class"),
			CourseName:   pick(row, "course"),
			LecturerName: pick(row, "lecturer"),
			RoomName:     pick(row, "room"),
		}
		if parsed == (dto.ScheduleImportRow{}) {
			continue // blank row
		}
		out = append(out, parsed)
	}
	return out, nil
}
