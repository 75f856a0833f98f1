package writer

// MemWriter captures rendered output in memory, for tests.
type MemWriter struct {
	Buf []byte
}

// WriteOutput stores a copy of the provided buffer.
func (w *MemWriter) WriteOutput(buf []byte) error {
	w.Buf = append(w.Buf[:0], buf...)
	return nil
}
