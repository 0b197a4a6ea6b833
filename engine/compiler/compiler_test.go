package compiler

import (
	"errors"
	"testing"

	"github.com/nv3d/maxwell3d/engine/host"
	"github.com/nv3d/maxwell3d/engine/reflect"
	"github.com/nv3d/maxwell3d/engine/shaderkey"
)

type fakeBackend struct {
	fail bool
}

func (b *fakeBackend) Compile(address host.ShaderAddress, stage int, key shaderkey.Key) (CompiledStage, error) {
	if b.fail {
		return CompiledStage{}, errors.New("translation failure")
	}
	return CompiledStage{Reflection: reflect.Stage{UsesInstanceID: true}}, nil
}

func TestCompiler_CacheHitAvoidsRecompile(t *testing.T) {
	backend := &fakeBackend{}
	c := NewCompiler(backend, WithWorkerCount(2))

	addresses := [6]host.ShaderAddress{1: 0x1000}
	key := shaderkey.Key{}
	pool := shaderkey.PoolKey{}

	prog1, err := c.GetGraphicsShader(addresses, key, pool)
	if err != nil {
		t.Fatalf("GetGraphicsShader: %v", err)
	}
	prog2, err := c.GetGraphicsShader(addresses, key, pool)
	if err != nil {
		t.Fatalf("GetGraphicsShader (second): %v", err)
	}
	if prog1 != prog2 {
		t.Errorf("expected cached program to be returned on second call")
	}
}

func TestCompiler_FailureWithNoCacheReturnsError(t *testing.T) {
	backend := &fakeBackend{fail: true}
	c := NewCompiler(backend, WithWorkerCount(1))

	_, err := c.GetGraphicsShader([6]host.ShaderAddress{0: 0x2000}, shaderkey.Key{}, shaderkey.PoolKey{})
	if err == nil {
		t.Fatalf("expected error on first-ever compile failure with no stale cache")
	}
}

func TestCompiler_FailureFallsBackToPreviousSpecialization(t *testing.T) {
	backend := &fakeBackend{}
	c := NewCompiler(backend, WithWorkerCount(1))

	addresses := [6]host.ShaderAddress{0: 0x3000}
	good, err := c.GetGraphicsShader(addresses, shaderkey.Key{}, shaderkey.PoolKey{})
	if err != nil {
		t.Fatalf("GetGraphicsShader: %v", err)
	}

	backend.fail = true
	// A new specialization for the same shader addresses misses the exact
	// cache key but should fall back to the last good program compiled for
	// these addresses rather than failing the draw outright.
	newKey := shaderkey.Key{Topology: shaderkey.TopologyLines}
	stale, err := c.GetGraphicsShader(addresses, newKey, shaderkey.PoolKey{})
	if err != nil {
		t.Fatalf("expected stale fallback, got error: %v", err)
	}
	if stale != good {
		t.Errorf("expected fallback to return the previously compiled program")
	}
}
