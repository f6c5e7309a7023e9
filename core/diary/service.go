package diary

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("diary entry not found")

type (
	Repository interface {
		CreateDiary(ctx context.Context, e Entry) (Entry, error)
		QueryAllDiaries(ctx context.Context) ([]Entry, error)
		DeleteDiaryByID(ctx context.Context, id string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Save(ctx context.Context, ne NewEntry) (Entry, error) {
	e := Entry{
		ID:            uuid.New().String(),
		Date:          ne.Date,
		CenterID:      ne.CenterID,
		StudentCount:  ne.StudentCount,
		InTime:        ne.InTime,
		OutTime:       ne.OutTime,
		Thought:       ne.Thought,
		SubjectTaught: ne.SubjectTaught,
		TopicTaught:   ne.TopicTaught,
		Volunteers:    ne.Volunteers,
		CreatedAt:     time.Now().UTC(),
	}
	return svc.repo.CreateDiary(ctx, e)
}

// QueryAll returns all entries, newest first.
func (svc *Service) QueryAll(ctx context.Context) ([]Entry, error) {
	entries, err := svc.repo.QueryAllDiaries(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].CreatedAt.After(entries[j].CreatedAt) })
	return entries, nil
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	return svc.repo.DeleteDiaryByID(ctx, id)
}
