package shaderkey

import "testing"

func TestKey_EqualityIsFieldwise(t *testing.T) {
	a := Key{Topology: TopologyTriangles, PointSize: 1.0}
	b := Key{Topology: TopologyTriangles, PointSize: 1.0}
	c := Key{Topology: TopologyLines, PointSize: 1.0}

	if a != b {
		t.Errorf("identical keys compared unequal")
	}
	if a == c {
		t.Errorf("differing keys compared equal")
	}
}

func TestKey_VertexAttribArrayParticipatesInEquality(t *testing.T) {
	a := Key{}
	b := Key{}
	a.VertexAttribTypes[3] = VertexAttribInt

	if a == b {
		t.Errorf("keys with differing attrib types compared equal")
	}
}

func TestPoolKey_Equality(t *testing.T) {
	a := PoolKey{TexturePoolBase: 0x1000, SamplerPoolBase: 0x2000}
	b := PoolKey{TexturePoolBase: 0x1000, SamplerPoolBase: 0x2000}
	if a != b {
		t.Errorf("identical pool keys compared unequal")
	}
}
