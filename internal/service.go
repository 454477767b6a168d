package internal

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type IService interface {
	ProcessReceipt(context.Context, []byte) (string, error)
	GetPoints(context.Context, string) (int, error)
}

func NewService(repository IRepository, logger *zap.SugaredLogger) *Service {
	return &Service{Repository: repository, logger: logger}
}

type Service struct {
	Repository IRepository
	logger     *zap.SugaredLogger
}

// ProcessReceipt validates and scores a raw receipt and returns the id the
// points were stored under.
func (s Service) ProcessReceipt(ctx context.Context, body []byte) (string, error) {
	r, err := ParseReceipt(body)
	if err != nil {
		return "", err
	}

	points := CalculatePoints(r)
	id := uuid.NewString()

	err = s.Repository.SavePoints(ctx, id, points)
	if err != nil {
		return "", err
	}

	s.logger.Infof("processed receipt %s from %q: %d points", id, r.Retailer, points)
	return id, nil
}

func (s Service) GetPoints(ctx context.Context, id string) (int, error) {
	points, err := s.Repository.GetPoints(ctx, id)
	if err != nil {
		return 0, err
	}

	return points, nil
}
