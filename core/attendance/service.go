package attendance

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("attendance record not found")

type (
	Repository interface {
		CreateAttendance(ctx context.Context, rec Record) (Record, error)
		QueryAllAttendance(ctx context.Context) ([]Record, error)
		DeleteAttendanceByID(ctx context.Context, id string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Save(ctx context.Context, nr NewRecord) (Record, error) {
	now := time.Now().UTC()
	rec := Record{
		ID:                fmt.Sprintf("ATT-%d", now.UnixNano()/int64(time.Millisecond)),
		Date:              nr.Date,
		PresentStudentIDs: nr.PresentStudentIDs,
		Mode:              nr.Mode,
		TotalStudents:     nr.TotalStudents,
		CreatedAt:         now,
	}
	return svc.repo.CreateAttendance(ctx, rec)
}

// QueryAll returns all records, newest first.
func (svc *Service) QueryAll(ctx context.Context) ([]Record, error) {
	recs, err := svc.repo.QueryAllAttendance(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].CreatedAt.After(recs[j].CreatedAt) })
	return recs, nil
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	return svc.repo.DeleteAttendanceByID(ctx, id)
}
