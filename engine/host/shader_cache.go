package host

import (
	"github.com/nv3d/maxwell3d/engine/reflect"
	"github.com/nv3d/maxwell3d/engine/shaderkey"
)

// ShaderAddress is the guest virtual address a shader stage's binary starts
// at, the cache's primary identity for "which binary".
type ShaderAddress uint64

// Program is a compiled, specialized shader program ready to back a render
// pipeline, plus the reflection data Commit needs to resolve bindings.
type Program interface {
	Reflection() *reflect.Program
	WritesRTLayer() bool
	UsesInstanceID() bool
	ClipDistancesWritten() int
}

// ShaderCache resolves a guest shader program (one address per enabled
// stage) plus the current specialization key into a compiled Program,
// compiling and specializing on first use and reusing the cached result on
// every subsequent draw that presents the same (addresses, key, pool key)
// triple (spec.md §4.4 "Shaders", §4.6).
type ShaderCache interface {
	// GetGraphicsShader returns the compiled program for the given stage
	// addresses, specialization key and resource-pool key. A cache miss
	// triggers a synchronous or asynchronous compile depending on the
	// implementation (see engine/compiler for the async worker-pool-backed
	// one); GetGraphicsShader blocks until a usable program — possibly a
	// stale placeholder per §7 class 3 — is available.
	//
	// Parameters:
	//   - addresses: the guest shader binary address per enabled stage, 0 for disabled stages
	//   - key: the specialization key
	//   - pool: the texture/sampler pool key
	//
	// Returns:
	//   - Program: the compiled, specialized program
	//   - error: an error if compilation failed and no usable fallback exists
	GetGraphicsShader(addresses [6]ShaderAddress, key shaderkey.Key, pool shaderkey.PoolKey) (Program, error)
}
