package student

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/maitrya143/pravah/core/center"
)

var ErrNotFound = errors.New("student not found")

type (
	Repository interface {
		CreateStudent(ctx context.Context, st Student) (Student, error)
		QueryAllStudents(ctx context.Context) ([]Student, error)
		DeleteStudentByID(ctx context.Context, id string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Admit records a new student at the given center, assigning a generated id.
func (svc *Service) Admit(ctx context.Context, ns NewStudent, c center.Center) (Student, error) {
	st := Student{
		ID:                 GenerateID(c, time.Now()),
		Name:               ns.Name,
		Gender:             ns.Gender,
		DOB:                ns.DOB,
		Age:                ns.Age,
		ClassLevel:         ns.ClassLevel,
		SchoolName:         ns.SchoolName,
		ParentName:         ns.ParentName,
		ParentOccupation:   ns.ParentOccupation,
		Aadhaar:            ns.Aadhaar,
		Contact:            ns.Contact,
		RegistrationNumber: ns.RegistrationNumber,
		AdmissionDate:      ns.AdmissionDate,
		CenterID:           c.ID,
	}
	return svc.repo.CreateStudent(ctx, st)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Student, error) {
	return svc.repo.QueryAllStudents(ctx)
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	return svc.repo.DeleteStudentByID(ctx, id)
}
