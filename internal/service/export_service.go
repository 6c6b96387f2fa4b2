package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/dioadam27-sketch/SIMPDB/internal/model"
	"github.com/dioadam27-sketch/SIMPDB/internal/repository"
)

// ── Export business errors ──

var (
	ErrExportNoSchedule   = errors.New("belum ada jadwal untuk diekspor")
	ErrExportNoRooms      = errors.New("belum ada data ruangan")
	ErrExportGenerateFail = errors.New("gagal membuat file Excel")
)

// ExportService builds Excel workbooks. Buffers are returned to the
// handler layer, which sets the download headers.
type ExportService interface {
	// ExportSchedule exports the full timetable.
	ExportSchedule(ctx context.Context) (*bytes.Buffer, string, error)
	// ExportOccupancy exports the room-occupancy grid for one day.
	ExportOccupancy(ctx context.Context, day string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates an ExportService instance.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportSchedule — full timetable as Excel
// ═══════════════════════════════════════════════════════════
//
// One row per timetable item, ordered along the weekly grid:
//   Hari | Waktu | Nama Kelas | Mata Kuliah | Kode MK | Dosen | Ruangan
// Open slots carry "Open Slot" in the Dosen column.

func (s *exportService) ExportSchedule(ctx context.Context) (*bytes.Buffer, string, error) {
	items, err := s.repo.Schedule.List(ctx)
	if err != nil {
		return nil, "", err
	}
	if len(items) == 0 {
		return nil, "", ErrExportNoSchedule
	}

	resolver, err := newNameResolver(ctx, s.repo)
	if err != nil {
		return nil, "", err
	}

	type exportRow struct {
		day, slot, class, course, code, lecturer, room string
	}
	rows := make([]exportRow, 0, len(items))
	for _, it := range items {
		lecturer := resolver.lecturerName(it.LecturerID)
		if lecturer == "" {
			lecturer = "Open Slot"
		}
		rows = append(rows, exportRow{
			day:      it.Day,
			slot:     it.TimeSlot,
			class:    it.ClassName,
			course:   resolver.courseName(it.CourseID),
			code:     resolver.courseCode(it.CourseID),
			lecturer: lecturer,
			room:     resolver.roomName(it.RoomID),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if di, dj := dayIndex(rows[i].day), dayIndex(rows[j].day); di != dj {
			return di < dj
		}
		if si, sj := slotIndex(rows[i].slot), slotIndex(rows[j].slot); si != sj {
			return si < sj
		}
		return rows[i].room < rows[j].room
	})

	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Jadwal Kuliah"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	widths := []float64{12, 16, 14, 32, 12, 28, 16}
	for i, w := range widths {
		col := colName(i)
		f.SetColWidth(sheetName, col, col, w)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#1E3A8A"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	headers := []string{"Hari", "Waktu", "Nama Kelas", "Mata Kuliah", "Kode MK", "Dosen", "Ruangan"}
	for i, h := range headers {
		f.SetCellValue(sheetName, cell(colName(i), 1), h)
	}
	f.SetCellStyle(sheetName, "A1", cell(colName(len(headers)-1), 1), headerStyle)

	row := 2
	for _, r := range rows {
		f.SetCellValue(sheetName, cell("A", row), r.day)
		f.SetCellValue(sheetName, cell("B", row), r.slot)
		f.SetCellValue(sheetName, cell("C", row), r.class)
		f.SetCellValue(sheetName, cell("D", row), r.course)
		f.SetCellValue(sheetName, cell("E", row), r.code)
		f.SetCellValue(sheetName, cell("F", row), r.lecturer)
		f.SetCellValue(sheetName, cell("G", row), r.room)
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("write schedule workbook failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("Jadwal_Kuliah_Lengkap_%s.xlsx", time.Now().Format("2006-01-02"))
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// ExportOccupancy — room grid for one day
// ═══════════════════════════════════════════════════════════
//
// One row per (room, time slot):
//   Ruangan | Kapasitas | Jam Sesi | Status | Mata Kuliah | Kelas | Dosen
// Status is Terisi or Kosong.

func (s *exportService) ExportOccupancy(ctx context.Context, day string) (*bytes.Buffer, string, error) {
	if !model.ValidDay(day) {
		return nil, "", ErrUnknownDay
	}

	rooms, err := s.repo.Room.List(ctx)
	if err != nil {
		return nil, "", err
	}
	if len(rooms) == 0 {
		return nil, "", ErrExportNoRooms
	}
	items, err := s.repo.Schedule.List(ctx)
	if err != nil {
		return nil, "", err
	}
	resolver, err := newNameResolver(ctx, s.repo)
	if err != nil {
		return nil, "", err
	}

	// (roomID, slot) → item index for the requested day
	occupied := make(map[string]int)
	for i, it := range items {
		if it.Day == day {
			occupied[it.RoomID+"|"+it.TimeSlot] = i
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Monitoring"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	widths := []float64{16, 10, 16, 10, 32, 14, 28}
	for i, w := range widths {
		col := colName(i)
		f.SetColWidth(sheetName, col, col, w)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#1E3A8A"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	headers := []string{"Ruangan", "Kapasitas", "Jam Sesi", "Status", "Mata Kuliah", "Kelas", "Dosen"}
	for i, h := range headers {
		f.SetCellValue(sheetName, cell(colName(i), 1), h)
	}
	f.SetCellStyle(sheetName, "A1", cell(colName(len(headers)-1), 1), headerStyle)

	row := 2
	for _, rm := range rooms {
		for _, slot := range model.TimeSlots {
			f.SetCellValue(sheetName, cell("A", row), rm.Name)
			f.SetCellValue(sheetName, cell("B", row), rm.Capacity)
			f.SetCellValue(sheetName, cell("C", row), slot)
			if i, ok := occupied[rm.ID+"|"+slot]; ok {
				it := items[i]
				lecturer := resolver.lecturerName(it.LecturerID)
				if lecturer == "" {
					lecturer = "Open Slot"
				}
				f.SetCellValue(sheetName, cell("D", row), "Terisi")
				f.SetCellValue(sheetName, cell("E", row), resolver.courseName(it.CourseID))
				f.SetCellValue(sheetName, cell("F", row), it.ClassName)
				f.SetCellValue(sheetName, cell("G", row), lecturer)
			} else {
				f.SetCellValue(sheetName, cell("D", row), "Kosong")
			}
			row++
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("write occupancy workbook failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("Monitoring_Okupansi_%s_%s.xlsx", day, time.Now().Format("2006-01-02"))
	return buf, filename, nil
}

// ── Helpers ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
