package feedback

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"

	"github.com/maitrya143/pravah/core"
)

type (
	Repository interface {
		CreateFeedback(ctx context.Context, fb Feedback) (Feedback, error)
		QueryAllFeedback(ctx context.Context) ([]Feedback, error)
	}

	Service struct {
		repo    Repository
		mailSvc core.EmailService
		conf    *core.Config
	}
)

func NewService(repo Repository, mailSvc core.EmailService, conf *core.Config) *Service {
	return &Service{repo: repo, mailSvc: mailSvc, conf: conf}
}

// Save records the feedback and notifies the program coordinators.
func (svc *Service) Save(ctx context.Context, nf NewFeedback) (Feedback, error) {
	fb := Feedback{
		ID:            uuid.New().String(),
		VolunteerID:   nf.VolunteerID,
		VolunteerName: nf.VolunteerName,
		CenterID:      nf.CenterID,
		Subject:       nf.Subject,
		Message:       nf.Message,
		Date:          time.Now().UTC().Format(time.RFC3339),
	}
	fb, err := svc.repo.CreateFeedback(ctx, fb)
	if err != nil {
		return Feedback{}, err
	}
	svc.sendCoordinatorMail(fb)
	return fb, nil
}

func (svc *Service) QueryAll(ctx context.Context) ([]Feedback, error) {
	return svc.repo.QueryAllFeedback(ctx)
}

func (svc *Service) sendCoordinatorMail(fb Feedback) {
	body := fmt.Sprintf(
		"Volunteer: %s (%s)\nCenter: %s\nDate: %s\n\n%s",
		fb.VolunteerName, fb.VolunteerID, fb.CenterID, fb.Date, fb.Message,
	)
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{svc.conf.FeedbackEmail},
		Subject: "Volunteer feedback: " + fb.Subject,
		BodyStr: body,
	})
}
