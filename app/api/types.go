package api

import (
	"context"

	"github.com/techriver/tech-river/app/river"
)

type RiverServiceInterface interface {
	GetRiver(ctx context.Context, source, name string, limit int) (*river.Response, error)
}

var _ RiverServiceInterface = (*river.Service)(nil)

type CacheStatsInterface interface {
	Len() int
}

var _ CacheStatsInterface = (*river.ResultCache)(nil)

type Handler struct {
	service RiverServiceInterface
	cache   CacheStatsInterface
}
