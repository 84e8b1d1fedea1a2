package netcode

// DecodeOptional reads a presence Boolean, then, if present, decodes one T
// with elem. If absent, the zero value of T is returned.
func DecodeOptional[T any](data []byte, elem func([]byte) (T, int, error)) (T, bool, int, error) {
	var zero T
	present, n, err := DecodeBoolean(data)
	if err != nil {
		return zero, false, 0, err
	}
	if !present {
		return zero, false, n, nil
	}
	v, m, err := elem(data[n:])
	if err != nil {
		return zero, false, 0, err
	}
	return v, true, n + m, nil
}

// DecodeVec reads a VarInt element count followed by that many elements,
// each decoded with elem.
func DecodeVec[T any](data []byte, elem func([]byte) (T, int, error)) ([]T, int, error) {
	count, n, err := DecodeVarInt(data)
	if err != nil {
		return nil, 0, err
	}
	if count < 0 {
		return nil, 0, Malformed("negative vec length")
	}
	out := make([]T, 0, count)
	offset := n
	for range int(count) {
		v, m, err := elem(data[offset:])
		if err != nil {
			return nil, 0, err
		}
		out = append(out, v)
		offset += m
	}
	return out, offset, nil
}
