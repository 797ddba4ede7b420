package rangesum

// Builder incrementally stages values and finalizes them into an Index.
//
// Builder collects values on either end of the staged sequence and
// materializes the index only when Index() is called. This keeps the
// single construction pass in one place: the prefix table is built once,
// over the final element order.
//
// The empty instance is a valid builder, but clients may use NewBuilder.
type Builder[T Numeric] struct {
	// front keeps prepended values in reverse logical order.
	front []T
	// back keeps appended values in logical order.
	back []T

	done  bool
	dirty bool
	index Index[T]
}

// NewBuilder creates a new and empty index builder.
func NewBuilder[T Numeric]() *Builder[T] {
	return &Builder[T]{}
}

// Index returns the index built from all staged values.
//
// It is illegal to continue adding values after Index has been called, but
// Index may be called multiple times.
func (b *Builder[T]) Index() Index[T] {
	if b == nil {
		return Index[T]{}
	}
	if b.dirty {
		b.index = b.buildIndex()
		b.dirty = false
	}
	b.done = true
	if b.index.IsVoid() {
		tracer().Debugf("index builder: index is void")
	}
	return b.index
}

// Reset drops the staged build and prepares the builder for a fresh build.
func (b *Builder[T]) Reset() {
	b.front = nil
	b.back = nil
	b.done = false
	b.dirty = false
	b.index = Index[T]{}
}

// Append appends values to the staged build.
func (b *Builder[T]) Append(values ...T) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrCompleted
	}
	b.back = append(b.back, values...)
	if len(values) > 0 {
		b.dirty = true
	}
	return nil
}

// Prepend prepends values to the staged build.
func (b *Builder[T]) Prepend(values ...T) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrCompleted
	}
	// front is stored in reverse logical order.
	for i := len(values) - 1; i >= 0; i-- {
		b.front = append(b.front, values[i])
	}
	if len(values) > 0 {
		b.dirty = true
	}
	return nil
}

// Len returns the number of currently staged values.
func (b *Builder[T]) Len() int {
	if b == nil {
		return 0
	}
	return len(b.front) + len(b.back)
}

func (b *Builder[T]) buildIndex() Index[T] {
	values := make([]T, 0, len(b.front)+len(b.back))
	for i := len(b.front) - 1; i >= 0; i-- {
		values = append(values, b.front[i])
	}
	values = append(values, b.back...)
	return New(values)
}
