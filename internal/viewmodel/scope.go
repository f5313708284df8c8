package viewmodel

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// scope ties the calls of one view-model to its owner's lifetime. Close cancels
// every call still running and waits for them to return.
type scope struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func newScope() *scope {
	ctx, cancel := context.WithCancel(context.Background())
	return &scope{ctx: ctx, cancel: cancel}
}

// join derives a context from ctx that is also cancelled when the scope closes.
// The caller must invoke done when the call returns.
func (s *scope) join(ctx context.Context) (context.Context, func()) {
	s.wg.Add(1)
	joined, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(s.ctx, cancel)
	return joined, func() {
		stop()
		cancel()
		s.wg.Done()
	}
}

func (s *scope) closed() bool {
	return s.ctx.Err() != nil
}

func (s *scope) close() {
	s.cancel()
	s.wg.Wait()
}

// sharedCalls runs at most one call per key; concurrent callers of the same key
// wait for it. The call's context ends when the scope closes or once every
// waiting caller has cancelled, so one caller giving up leaves the others' call
// running.
type sharedCalls struct {
	scope *scope
	group singleflight.Group

	mu    sync.Mutex
	calls map[string]*sharedCall
}

type sharedCall struct {
	ctx     context.Context
	cancel  context.CancelFunc
	waiters int
}

func newSharedCalls(s *scope) *sharedCalls {
	return &sharedCalls{scope: s, calls: make(map[string]*sharedCall)}
}

// do runs fn for key, or waits for the run already in flight. It reports whether
// the result was shared with another caller.
func (g *sharedCalls) do(ctx context.Context, key string, fn func(ctx context.Context)) bool {
	g.scope.wg.Add(1)
	defer g.scope.wg.Done()

	call := g.enter(key)
	stop := context.AfterFunc(ctx, func() { g.leave(key, call) })
	defer func() {
		if stop() {
			g.leave(key, call)
		}
	}()

	_, _, shared := g.group.Do(key, func() (any, error) {
		fn(call.ctx)
		return nil, nil
	})
	return shared
}

func (g *sharedCalls) enter(key string) *sharedCall {
	g.mu.Lock()
	defer g.mu.Unlock()

	call, ok := g.calls[key]
	if !ok {
		ctx, cancel := context.WithCancel(g.scope.ctx)
		call = &sharedCall{ctx: ctx, cancel: cancel}
		g.calls[key] = call
	}
	call.waiters++
	return call
}

func (g *sharedCalls) leave(key string, call *sharedCall) {
	g.mu.Lock()
	defer g.mu.Unlock()

	call.waiters--
	if call.waiters > 0 {
		return
	}
	call.cancel()
	if g.calls[key] == call {
		delete(g.calls, key)
	}
}
