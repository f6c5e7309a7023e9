package localdiskdb

import (
	"context"

	"github.com/maitrya143/pravah/core/feedback"
)

type feedbackRepository struct {
	db *DB
}

func NewFeedbackRepository(db *DB) feedback.Repository {
	return &feedbackRepository{db: db}
}

func (repo *feedbackRepository) CreateFeedback(_ context.Context, fb feedback.Feedback) (feedback.Feedback, error) {
	t := repo.db.feedbacks
	t.mu.Lock()
	defer t.mu.Unlock()

	t.items = append(t.items, fb)
	repo.db.persist(feedbacksCollection, t.items)
	return fb, nil
}

func (repo *feedbackRepository) QueryAllFeedback(_ context.Context) ([]feedback.Feedback, error) {
	t := repo.db.feedbacks
	t.mu.RLock()
	defer t.mu.RUnlock()

	fbs := make([]feedback.Feedback, len(t.items))
	copy(fbs, t.items)
	return fbs, nil
}
