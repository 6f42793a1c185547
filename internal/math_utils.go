package internal

type Numbers interface {
	uint | int | int8 | int32 | int64 | uint8 | uint16 | uint32 | uint64
}

// Product multiplies all given dimensions. An empty list yields 1, the
// element count of a scalar.
func Product[T Numbers](dims ...T) T {
	p := T(1)
	for _, d := range dims {
		p *= d
	}
	return p
}
