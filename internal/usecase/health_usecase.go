package usecase

import (
	"context"
	"time"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	startedAt time.Time
}

func NewHealthUsecase() HealthUsecase {
	return &healthUsecase{startedAt: time.Now()}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	return map[string]string{
		"status": "ok",
		"uptime": time.Since(u.startedAt).Truncate(time.Second).String(),
	}
}
