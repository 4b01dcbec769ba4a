package transport

import (
	"context"
	"sync"

	"github.com/raywall/movie-awards-service/pkg/awards"
)

// fakeService registra as requisições e devolve uma resposta fixa.
type fakeService struct {
	mu       sync.Mutex
	requests []awards.Request
	ctxs     []context.Context
	resp     awards.Response
}

func (f *fakeService) Handle(ctx context.Context, req awards.Request) awards.Response {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	f.ctxs = append(f.ctxs, ctx)
	return f.resp
}

func (f *fakeService) last() (awards.Request, context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1], f.ctxs[len(f.ctxs)-1]
}

func okService() *fakeService {
	return &fakeService{resp: awards.Response{
		StatusCode: 200,
		Headers:    map[string]string{"content-type": "application/json"},
		Body:       `[{"movieId":550,"awardBody":"Oscar","numAwards":3}]`,
	}}
}
