package history

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/maitrya143/pravah/core/attendance"
	"github.com/maitrya143/pravah/core/diary"
	"github.com/maitrya143/pravah/core/student"
)

type Type string

const (
	TypeAll        Type = "ALL"
	TypeAdmission  Type = "Admission"
	TypeAttendance Type = "Attendance"
	TypeDiary      Type = "Diary"
)

// ParseType maps a request value to a known Type, case-insensitively.
// Unknown values pass through as-is: they filter to nothing and delete as
// a no-op.
func ParseType(s string) Type {
	for _, t := range []Type{TypeAll, TypeAdmission, TypeAttendance, TypeDiary} {
		if strings.EqualFold(s, string(t)) {
			return t
		}
	}
	return Type(s)
}

// Item is a projection of one source record into the unified history feed.
// It does not own any data: deleting an item deletes the underlying record.
type Item struct {
	ID      string      `json:"id"`   // mirrors the source record's id
	Type    Type        `json:"type"`
	Date    string      `json:"date"`
	Details string      `json:"details"`
	Data    interface{} `json:"data"` // the original record
}

// Service merges admissions, attendance and diary entries into one
// date-sorted feed.
type Service struct {
	students   *student.Service
	attendance *attendance.Service
	diaries    *diary.Service
}

func NewService(students *student.Service, att *attendance.Service, diaries *diary.Service) *Service {
	return &Service{students: students, attendance: att, diaries: diaries}
}

// All returns one item per student, attendance record and diary entry,
// sorted descending by date. Ties keep concatenation order
// (admissions, then attendance, then diaries).
func (svc *Service) All(ctx context.Context) ([]Item, error) {
	students, err := svc.students.QueryAll(ctx)
	if err != nil {
		return nil, err
	}
	attRecs, err := svc.attendance.QueryAll(ctx)
	if err != nil {
		return nil, err
	}
	diaries, err := svc.diaries.QueryAll(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(students)+len(attRecs)+len(diaries))
	for _, s := range students {
		items = append(items, Item{
			ID:      s.ID,
			Type:    TypeAdmission,
			Date:    s.AdmissionDate,
			Details: fmt.Sprintf("Student: %s", s.Name),
			Data:    s,
		})
	}
	for _, a := range attRecs {
		items = append(items, Item{
			ID:      a.ID,
			Type:    TypeAttendance,
			Date:    strings.SplitN(a.Date, "T", 2)[0],
			Details: fmt.Sprintf("%d Students Present (%s)", a.TotalStudents, a.Mode),
			Data:    a,
		})
	}
	for _, d := range diaries {
		items = append(items, Item{
			ID:      d.ID,
			Type:    TypeDiary,
			Date:    d.Date,
			Details: fmt.Sprintf("Subject: %s", d.SubjectTaught),
			Data:    d,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return parseDate(items[i].Date).After(parseDate(items[j].Date))
	})
	return items, nil
}

// Delete removes the underlying source record of the given item and is a
// silent no-op for unrecognized types.
func (svc *Service) Delete(ctx context.Context, id string, typ Type) error {
	switch typ {
	case TypeAdmission:
		return svc.students.Delete(ctx, id)
	case TypeAttendance:
		return svc.attendance.Delete(ctx, id)
	case TypeDiary:
		return svc.diaries.Delete(ctx, id)
	}
	return nil
}

// Filter returns only items of the given type, preserving relative order.
// TypeAll passes everything through unchanged.
func Filter(items []Item, typ Type) []Item {
	if typ == TypeAll || typ == "" {
		return items
	}
	filtered := make([]Item, 0, len(items))
	for _, it := range items {
		if it.Type == typ {
			filtered = append(filtered, it)
		}
	}
	return filtered
}

// dateLayouts are the date shapes the feed sorts by, tried in order: plain
// dates, RFC 3339 timestamps and zone-less timestamps with or without
// seconds. Anything else parses as the zero time and sorts last.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

func parseDate(s string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
