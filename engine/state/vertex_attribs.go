package state

import (
	"log/slog"

	"github.com/nv3d/maxwell3d/engine/glog"
	"github.com/nv3d/maxwell3d/engine/regs"
	"github.com/nv3d/maxwell3d/engine/shaderkey"
)

// vertexAttribFormat is the raw guest format code carried in bits [20:27]
// of a vertex attribute state word (the Maxwell-class attribute format
// field this layer is modeled on).
type vertexAttribFormat uint8

// updateVertexAttribs resolves the 16 vertex attribute descriptors.
// Attribute formats the host cannot represent natively fall back to
// RGBA32F with a debug log rather than failing the draw, since a handful
// of rarely-used packed formats have no exact host equivalent and
// approximating them is preferable to dropping the attribute entirely
// (spec.md §4.4 "Vertex Attributes", §7 class 1).
func (r *Resolver) updateVertexAttribs() error {
	for location := 0; location < regs.VertexAttribCount; location++ {
		off := regs.OffVertexAttribBase + uint16(location)*regs.VertexAttribStride
		word := r.Mirror.Word(off)
		enabled := word&0x1 != 0
		r.Snapshot.ShaderKey.VertexAttribEnabled[location] = enabled
		if !enabled {
			continue
		}
		format := vertexAttribFormat(r.Mirror.Bits(off, 20, 27))
		r.Snapshot.ShaderKey.VertexAttribTypes[location] = classifyAttribFormat(location, format)
	}
	return nil
}

// Known attribute format codes this layer can classify exactly. Anything
// else falls back to RGBA32F.
const (
	attribFormatR32G32B32A32Float vertexAttribFormat = 0x0D
	attribFormatR32G32B32Float    vertexAttribFormat = 0x0E
	attribFormatR32G32Float       vertexAttribFormat = 0x0F
	attribFormatR32Float          vertexAttribFormat = 0x10
	attribFormatR8G8B8A8Unorm     vertexAttribFormat = 0x15
	attribFormatR32G32B32A32SInt  vertexAttribFormat = 0x1E
	attribFormatR32G32B32A32UInt  vertexAttribFormat = 0x1F
)

func classifyAttribFormat(location int, format vertexAttribFormat) shaderkey.VertexAttribType {
	switch format {
	case attribFormatR32G32B32A32Float, attribFormatR32G32B32Float, attribFormatR32G32Float, attribFormatR32Float:
		return shaderkey.VertexAttribFloat
	case attribFormatR8G8B8A8Unorm:
		return shaderkey.VertexAttribNormalized
	case attribFormatR32G32B32A32SInt:
		return shaderkey.VertexAttribInt
	case attribFormatR32G32B32A32UInt:
		return shaderkey.VertexAttribUInt
	default:
		glog.Logger().Debug("unknown vertex attribute format, substituting RGBA32F",
			slog.Int("location", location), slog.Int("format", int(format)))
		return shaderkey.VertexAttribFloat
	}
}
