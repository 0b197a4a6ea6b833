package engine

// EngineBuilderOption configures a translatorEngine at construction time.
type EngineBuilderOption func(*translatorEngine)

// WithProfilingEnabled starts the engine with per-draw timing logged from
// construction onward, rather than requiring a separate EnableProfiler call.
func WithProfilingEnabled() EngineBuilderOption {
	return func(e *translatorEngine) {
		e.profilingEnabled = true
	}
}
