package report

import (
	"context"
	"fmt"
	"sync"

	"jpsrealtor/cma/internal/models"
)

// BatchResult is the outcome of one request in a batch. Exactly one of
// Report and Error is set.
type BatchResult struct {
	Index  int               `json:"index"`
	Report *models.CMAReport `json:"report,omitempty"`
	Error  *Error            `json:"error,omitempty"`
}

// BatchProcessor fans CMA requests out to a fixed number of workers.
type BatchProcessor struct {
	service        *Service
	processorCount int
	maxBatchSize   int
}

func NewBatchProcessor(service *Service, processorCount, maxBatchSize int) *BatchProcessor {
	if processorCount < 1 {
		processorCount = 1
	}
	return &BatchProcessor{
		service:        service,
		processorCount: processorCount,
		maxBatchSize:   maxBatchSize,
	}
}

// Process runs every request and returns results in request order. A
// failed request does not stop the others.
func (p *BatchProcessor) Process(ctx context.Context, requests []models.CMARequest) ([]BatchResult, error) {
	if len(requests) == 0 {
		return nil, newError(KindValidation, "batch contains no requests", nil)
	}
	if p.maxBatchSize > 0 && len(requests) > p.maxBatchSize {
		return nil, newError(KindValidation, fmt.Sprintf("batch exceeds the maximum of %d requests", p.maxBatchSize), nil)
	}

	results := make([]BatchResult, len(requests))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for i := 0; i < min(p.processorCount, len(requests)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = p.processOne(ctx, idx, &requests[idx])
			}
		}()
	}

	for i := range requests {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results, nil
}

func (p *BatchProcessor) processOne(ctx context.Context, idx int, req *models.CMARequest) BatchResult {
	result := BatchResult{Index: idx}
	if err := ctx.Err(); err != nil {
		result.Error = newError(KindInternal, "batch cancelled", err)
		return result
	}

	report, err := p.service.Generate(ctx, req)
	if err != nil {
		e, ok := err.(*Error)
		if !ok {
			e = newError(KindInternal, err.Error(), err)
		}
		result.Error = e
		return result
	}
	result.Report = report
	return result
}
