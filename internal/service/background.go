package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/tdevakiruba/Workforce/internal/middleware"
)

// BackgroundRunner はレスポンスを待たせない副作用 (ストリーク更新など) を実行する。
// 失敗はログに出すだけで呼び出し元には返さない。
type BackgroundRunner struct {
	wg      sync.WaitGroup
	timeout time.Duration
}

func NewBackgroundRunner(timeout time.Duration) *BackgroundRunner {
	return &BackgroundRunner{timeout: timeout}
}

// Go は ctx のキャンセルから切り離したコンテキストで fn を実行する。
// リクエストスコープのロガーなどの値は引き継がれる。
func (b *BackgroundRunner) Go(ctx context.Context, name string, fn func(ctx context.Context) error) {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()

		bgCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), b.timeout)
		defer cancel()

		logger := middleware.GetLogger(bgCtx).With(slog.String("task", name))
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("Background task panicked", "panic", rec)
			}
		}()

		if err := fn(bgCtx); err != nil {
			logger.Warn("Background task failed", "error", err)
			return
		}
		logger.Debug("Background task finished")
	}()
}

// Wait は実行中のタスクの終了を待つ。ctx が先に終われば ctx.Err() を返す。
func (b *BackgroundRunner) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
