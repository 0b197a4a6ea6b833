package compiler

import (
	"fmt"
	"log/slog"

	"github.com/Carmen-Shannon/automation/tools/worker"

	"github.com/nv3d/maxwell3d/engine/glog"
	"github.com/nv3d/maxwell3d/engine/host"
	"github.com/nv3d/maxwell3d/engine/shaderkey"
)

// compileResult is what a submitted compile task reports back.
type compileResult struct {
	stage int
	out   CompiledStage
	err   error
}

// GetGraphicsShader implements host.ShaderCache. A cache hit returns
// immediately with no pool interaction; a miss fans the enabled stages out
// to the worker pool and blocks until every stage reports back, then caches
// the assembled program. On a stage compile failure, the previously cached
// program for the same addresses (if any) is returned instead of the error
// — a stale-but-usable program beats dropping the draw entirely — and the
// failure is logged (spec.md §4.6, §7 class 3).
func (c *Compiler) GetGraphicsShader(addresses [6]host.ShaderAddress, key shaderkey.Key, pool shaderkey.PoolKey) (host.Program, error) {
	ck := cacheKey{addresses: addresses, key: key, pool: pool}

	c.cacheMu.RLock()
	if cached, ok := c.cache[ck]; ok {
		c.cacheMu.RUnlock()
		return cached, nil
	}
	c.cacheMu.RUnlock()

	prog := &program{}
	results := make(chan compileResult, len(addresses))
	submitted := 0

	for stage, addr := range addresses {
		if addr == 0 {
			continue
		}
		submitted++
		stage, addr := stage, addr
		c.mu.Lock()
		id := c.nextTaskID
		c.nextTaskID++
		c.mu.Unlock()

		c.pool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				out, err := c.backend.Compile(addr, stage, key)
				results <- compileResult{stage: stage, out: out, err: err}
				return nil, err
			},
		})
	}

	var firstErr error
	for i := 0; i < submitted; i++ {
		res := <-results
		if res.err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("compile stage %d: %w", res.stage, res.err)
			}
			continue
		}
		prog.reflection.Enabled[res.stage] = true
		prog.reflection.Stages[res.stage] = res.out.Reflection
	}

	if firstErr != nil {
		c.cacheMu.RLock()
		stale, ok := c.byAddresses[addresses]
		c.cacheMu.RUnlock()
		if ok {
			glog.Logger().Warn("shader compile failed, serving previously compiled program for these addresses",
				slog.String("error", firstErr.Error()))
			return stale, nil
		}
		return nil, firstErr
	}

	c.cacheMu.Lock()
	c.cache[ck] = prog
	c.byAddresses[addresses] = prog
	c.cacheMu.Unlock()

	return prog, nil
}
