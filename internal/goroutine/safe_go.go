// Package goroutine запускает фоновые горутины так, чтобы panic не ронял процесс.
package goroutine

import (
	"context"
	"runtime/debug"

	"github.com/ignatzorin/genesehub/internal/logger"
)

// Go запускает fn в горутине; panic пишется в лог вместе со стеком.
// Канал закрывается, когда fn завершилась (в том числе через panic).
func Go(name string, fn func()) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer recoverPanic(name)
		fn()
	}()
	return done
}

// GoWithContext как Go, но передаёт ctx в fn.
func GoWithContext(ctx context.Context, name string, fn func(context.Context)) <-chan struct{} {
	return Go(name, func() { fn(ctx) })
}

func recoverPanic(name string) {
	if r := recover(); r != nil {
		logger.Log.WithField("goroutine", name).
			WithField("stack", string(debug.Stack())).
			Errorf("panic in goroutine: %v", r)
	}
}
