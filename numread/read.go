package numread

import "context"

// Read one line from src and parse it as T. A failed read is a failed parse.
func Read[T Number](ctx context.Context, src LineSource) (T, bool) {
	line, err := ReadLine(ctx, src)
	if err != nil {
		var zero T
		return zero, false
	}
	return Parse[T](line)
}

// ReadUnchecked is Read without the success flag. Garbage in, zero out.
func ReadUnchecked[T Number](ctx context.Context, src LineSource) T {
	v, _ := Read[T](ctx, src)
	return v
}

// ReadInt reads one line as an int.
func ReadInt(ctx context.Context, src LineSource) (int, bool) {
	return Read[int](ctx, src)
}

// ReadFloat reads one line as a float64.
func ReadFloat(ctx context.Context, src LineSource) (float64, bool) {
	return Read[float64](ctx, src)
}

func ReadIntUnchecked(ctx context.Context, src LineSource) int {
	return ReadUnchecked[int](ctx, src)
}

func ReadFloatUnchecked(ctx context.Context, src LineSource) float64 {
	return ReadUnchecked[float64](ctx, src)
}
