package host

// IndexFormat mirrors the guest index buffer element width.
type IndexFormat uint8

const (
	IndexFormatUint8 IndexFormat = iota
	IndexFormatUint16
	IndexFormatUint32
)

// BufferManager owns vertex, index, storage, uniform and transform-feedback
// buffer bindings (spec.md §6).
type BufferManager interface {
	SetVertexBuffer(slot int, address uint64, size uint64, stride uint32, divisor uint32, instanced bool)
	SetIndexBuffer(address uint64, size uint64, format IndexFormat)

	SetGraphicsStorageBuffer(stage int, slot int, address uint64, size uint64)
	SetGraphicsUniformBuffer(stage int, slot int, address uint64, size uint64)
	SetTransformFeedbackBuffer(slot int, address uint64, size uint64)

	SetGraphicsStorageBufferBindings(stage int, slots []int)
	SetGraphicsUniformBufferBindings(stage int, slots []int)

	CommitGraphicsBindings() error
}
