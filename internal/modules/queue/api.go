package queue

import (
	"context"
	"sync"

	"github.com/pixelpress/pixelpress/internal/modules/logs"
)

// ArtifactTaskQueue carries best-effort background work: thumbnail generation
// and artifact cleanup. Nothing on it is required for a correct response.
var ArtifactTaskQueue = NewTaskQueue(100)
var closeOnce sync.Once

func exeArtifactTask(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()
	for {
		select {
		case task, ok := <-ArtifactTaskQueue:
			if !ok {
				return
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				if err := task.Execute(ctx); err != nil {
					logs.Logger.Err(err).Msg("artifact task failed")
				}
			}()
		case <-ctx.Done():
			closeOnce.Do(func() {
				close(ArtifactTaskQueue)
				logs.Logger.Info().Msg("artifact task queue closed")
			})
		}
	}
}

func InitArtifactTaskQueue(ctx context.Context, wg *sync.WaitGroup) {
	wg.Add(1)
	go exeArtifactTask(ctx, wg)
}

// Enqueue submits a task without blocking; a full queue drops the task since
// everything here is best-effort.
func Enqueue(t Task) bool {
	select {
	case ArtifactTaskQueue <- t:
		return true
	default:
		logs.Logger.Warn().Msg("artifact task queue full, task dropped")
		return false
	}
}
