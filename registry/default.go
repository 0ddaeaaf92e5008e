package registry

// NewDefaultRegistry builds the catalog Registry shipped with the core: the
// full signal and auxiliary definitions in DefaultSignals/DefaultAuxiliary.
// Panics only if the built-in catalog itself is internally inconsistent,
// which would indicate a programming error in this package, not bad input.
func NewDefaultRegistry() *Registry {
	r, err := New(DefaultSignals(), DefaultAuxiliary())
	if err != nil {
		panic(err)
	}
	return r
}
