// Package compiler is the asynchronous shader compiler collaborator: it
// turns a guest shader binary plus a specialization key into a compiled
// host.Program, off the draw thread, reusing a bounded pool of worker
// goroutines across frames rather than spawning one per compile (spec.md
// §4.6 "Shader Compiler").
//
// Grounded on the teacher's scene.computePool usage: a
// worker.DynamicWorkerPool submitting worker.Task values and a WaitGroup
// (or, here, a per-request done channel) providing the caller-visible
// completion signal, since pool.Wait() blocks until every worker idles out
// and is unsuitable for a request/response workload like this one.
package compiler

import (
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"

	"github.com/nv3d/maxwell3d/engine/host"
	"github.com/nv3d/maxwell3d/engine/reflect"
	"github.com/nv3d/maxwell3d/engine/shaderkey"
)

// Backend translates one guest shader stage binary, specialized per key,
// into a compiled module plus its reflection data. A concrete backend (not
// provided by this package) does the actual guest-ISA-to-host-shading-
// language translation; Compiler only owns scheduling, caching and the
// fallback to a previously compiled program when a compile fails.
type Backend interface {
	Compile(address host.ShaderAddress, stage int, key shaderkey.Key) (CompiledStage, error)
}

// CompiledStage is one backend-compiled shader stage.
type CompiledStage struct {
	Reflection reflect.Stage
}

// program is the Compiler's own host.Program implementation.
type program struct {
	reflection reflect.Program
}

func (p *program) Reflection() *reflect.Program { return &p.reflection }
func (p *program) WritesRTLayer() bool {
	for i, enabled := range p.reflection.Enabled {
		if enabled && p.reflection.Stages[i].WritesRTLayer {
			return true
		}
	}
	return false
}
func (p *program) UsesInstanceID() bool {
	for i, enabled := range p.reflection.Enabled {
		if enabled && p.reflection.Stages[i].UsesInstanceID {
			return true
		}
	}
	return false
}
func (p *program) ClipDistancesWritten() int {
	max := 0
	for i, enabled := range p.reflection.Enabled {
		if enabled && p.reflection.Stages[i].ClipDistancesWritten > max {
			max = p.reflection.Stages[i].ClipDistancesWritten
		}
	}
	return max
}

var _ host.Program = &program{}

type cacheKey struct {
	addresses [6]host.ShaderAddress
	key       shaderkey.Key
	pool      shaderkey.PoolKey
}

// Compiler is a host.ShaderCache backed by a bounded worker pool. mu guards
// construction of the worker pool and the allocation of task IDs when a
// compile is submitted; the compile work itself runs on the pool without
// it. cacheMu guards the two program caches.
type Compiler struct {
	mu   sync.Mutex
	pool worker.DynamicWorkerPool

	backend Backend

	cacheMu      sync.RWMutex
	cache        map[cacheKey]*program
	byAddresses  map[[6]host.ShaderAddress]*program

	nextTaskID int

	workerCount int
}

// CompilerBuilderOption configures a Compiler at construction time.
type CompilerBuilderOption func(*Compiler)

// WithWorkerCount overrides the number of compile workers. Defaults to 4.
func WithWorkerCount(n int) CompilerBuilderOption {
	return func(c *Compiler) { c.workerCount = n }
}

// NewCompiler constructs a Compiler backed by the given translation backend.
// Builder options are applied before the worker pool is built so a
// WithWorkerCount override takes effect on the pool actually constructed.
//
// Parameters:
//   - backend: the guest-to-host shader translator
//   - options: functional options configuring worker count, etc.
//
// Returns:
//   - *Compiler: a ready-to-use shader cache
func NewCompiler(backend Backend, options ...CompilerBuilderOption) *Compiler {
	c := &Compiler{
		backend:     backend,
		cache:       make(map[cacheKey]*program),
		byAddresses: make(map[[6]host.ShaderAddress]*program),
		workerCount: 4,
	}

	c.mu.Lock()
	for _, opt := range options {
		opt(c)
	}
	c.pool = worker.NewDynamicWorkerPool(c.workerCount, 256, 1*time.Second)
	c.mu.Unlock()

	return c
}
