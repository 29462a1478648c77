package core

import "fmt"

// Surface is a 2D immediate-mode drawing context in play-area pixels.
// Image handles are opaque strings; the surface decides how to draw them.
type Surface interface {
	// FillRect fills a rectangle with a solid color under the current transform.
	FillRect(x, y, w, h float64, c Color)
	// DrawImage draws the image identified by handle with its top-left at (x, y).
	DrawImage(handle string, x, y float64)
	// Save pushes the current transform.
	Save()
	// Restore pops the transform pushed by the matching Save.
	Restore()
	// Translate moves the origin of the current transform.
	Translate(x, y float64)
	// Rotate rotates the current transform clockwise by rad radians.
	Rotate(rad float64)
}

// OpKind identifies a recorded draw operation.
type OpKind int

const (
	OpFillRect OpKind = iota
	OpDrawImage
	OpSave
	OpRestore
	OpTranslate
	OpRotate
)

// String returns the operation name.
func (k OpKind) String() string {
	switch k {
	case OpFillRect:
		return "fill"
	case OpDrawImage:
		return "image"
	case OpSave:
		return "save"
	case OpRestore:
		return "restore"
	case OpTranslate:
		return "translate"
	case OpRotate:
		return "rotate"
	default:
		return "unknown"
	}
}

// DrawOp is one call made against a Recorder.
type DrawOp struct {
	Kind   OpKind
	Handle string  // DrawImage
	X, Y   float64 // FillRect, DrawImage, Translate
	W, H   float64 // FillRect
	Angle  float64 // Rotate, radians
	Color  Color   // FillRect
}

// String renders the op compactly, for test failure messages.
func (op DrawOp) String() string {
	switch op.Kind {
	case OpFillRect:
		return fmt.Sprintf("fill(%g,%g,%g,%g,%s)", op.X, op.Y, op.W, op.H, op.Color)
	case OpDrawImage:
		return fmt.Sprintf("image(%s,%g,%g)", op.Handle, op.X, op.Y)
	case OpTranslate:
		return fmt.Sprintf("translate(%g,%g)", op.X, op.Y)
	case OpRotate:
		return fmt.Sprintf("rotate(%g)", op.Angle)
	default:
		return op.Kind.String()
	}
}

// Recorder is a Surface that records every call instead of drawing.
type Recorder struct {
	Ops []DrawOp
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// FillRect records a filled rectangle.
func (r *Recorder) FillRect(x, y, w, h float64, c Color) {
	r.Ops = append(r.Ops, DrawOp{Kind: OpFillRect, X: x, Y: y, W: w, H: h, Color: c})
}

// DrawImage records an image draw at the current origin.
func (r *Recorder) DrawImage(handle string, x, y float64) {
	r.Ops = append(r.Ops, DrawOp{Kind: OpDrawImage, Handle: handle, X: x, Y: y})
}

// Save records a push of the transform stack.
func (r *Recorder) Save() {
	r.Ops = append(r.Ops, DrawOp{Kind: OpSave})
}

// Restore records a pop of the transform stack.
func (r *Recorder) Restore() {
	r.Ops = append(r.Ops, DrawOp{Kind: OpRestore})
}

// Translate records a move of the origin.
func (r *Recorder) Translate(x, y float64) {
	r.Ops = append(r.Ops, DrawOp{Kind: OpTranslate, X: x, Y: y})
}

// Rotate records a clockwise rotation in radians.
func (r *Recorder) Rotate(rad float64) {
	r.Ops = append(r.Ops, DrawOp{Kind: OpRotate, Angle: rad})
}

// Images returns the handles of all DrawImage calls in order.
func (r *Recorder) Images() []string {
	var handles []string
	for _, op := range r.Ops {
		if op.Kind == OpDrawImage {
			handles = append(handles, op.Handle)
		}
	}
	return handles
}

// Reset discards all recorded operations.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

var (
	_ Surface = (*Recorder)(nil)
	_ Surface = (*Screen)(nil)
)
