package scroll

import "image"

// DrawCall is one recorded DrawImage invocation
type DrawCall[I Image] struct {
	Image     I
	Src       image.Rectangle
	Transform Transform
}

// Recorder is a Sink that keeps every draw call in order
type Recorder[I Image] struct {
	Calls []DrawCall[I]
}

// DrawImage appends the call
func (r *Recorder[I]) DrawImage(img I, src image.Rectangle, t Transform) {
	r.Calls = append(r.Calls, DrawCall[I]{Image: img, Src: src, Transform: t})
}

// Reset drops recorded calls, keeping the backing array
func (r *Recorder[I]) Reset() {
	r.Calls = r.Calls[:0]
}
