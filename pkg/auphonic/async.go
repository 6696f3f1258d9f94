package auphonic

import (
	"context"

	"github.com/sourcegraph/conc/panics"
)

// Pending is the result of an operation running on its own goroutine.
type Pending[T any] struct {
	done    chan struct{}
	value   T
	err     error
	catcher panics.Catcher
}

// Go runs fn on a dedicated goroutine and returns immediately. Cancelling
// ctx aborts the in-flight request; Wait then returns the context error.
//
//	p := auphonic.Go(ctx, func(ctx context.Context) (*auphonic.Production, error) {
//		return client.GetProduction(ctx, uuid)
//	})
//	production, err := p.Wait()
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Pending[T] {
	p := &Pending[T]{done: make(chan struct{})}
	go func() {
		defer close(p.done)
		p.catcher.Try(func() {
			p.value, p.err = fn(ctx)
		})
	}()
	return p
}

// Done is closed once the operation has finished.
func (p *Pending[T]) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the operation finishes. A panic in the operation is
// re-raised on the waiting goroutine.
func (p *Pending[T]) Wait() (T, error) {
	<-p.done
	p.catcher.Repanic()
	return p.value, p.err
}

// Run executes fn on a worker goroutine and blocks until it returns. It is
// the blocking form of any client operation.
func Run[T any](ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
	return Go(ctx, fn).Wait()
}
