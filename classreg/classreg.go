// Package classreg maps the fully qualified class names stored in a
// SequenceFile header to constructors for the writable.Writable types that
// can decode them, replacing the reference platform's reflective
// Class.forName dispatch (spec §4.1, §6).
package classreg

import (
	"fmt"

	"github.com/arloliu/seqfile/errs"
	"github.com/arloliu/seqfile/section"
	"github.com/arloliu/seqfile/writable"
)

// Constructor builds a zero-valued Writable ready for ReadFields.
type Constructor func() writable.Writable

// Registry resolves a fully qualified class name to a Writable
// constructor. The zero value is unusable; use NewRegistry.
type Registry struct {
	ctors map[string]Constructor
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{ctors: make(map[string]Constructor)}
}

// Register associates className with ctor, overwriting any existing
// registration.
func (r *Registry) Register(className string, ctor Constructor) {
	r.ctors[className] = ctor
}

// Resolve looks up the constructor registered for className.
func (r *Registry) Resolve(className string) (Constructor, error) {
	ctor, ok := r.ctors[className]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnknownClass, className)
	}
	return ctor, nil
}

// Default is pre-populated with every built-in writable.Writable type
// under its fully qualified class name.
var Default = NewRegistry()

func register(bareName string, ctor Constructor) {
	Default.Register(section.ClassNamePrefix+bareName, ctor)
}

func init() {
	register("io.Text", func() writable.Writable { return &writable.Text{} })
	register("io.BytesWritable", func() writable.Writable { return &writable.BytesWritable{} })
	register("io.NullWritable", func() writable.Writable { return writable.NullWritable{} })
	register("io.VIntWritable", func() writable.Writable { return &writable.VIntWritable{} })
	register("io.IntWritable", func() writable.Writable { return &writable.IntWritable{} })
	register("io.LongWritable", func() writable.Writable { return &writable.LongWritable{} })
	register("io.BooleanWritable", func() writable.Writable { return &writable.BooleanWritable{} })
	register("io.FloatWritable", func() writable.Writable { return &writable.FloatWritable{} })
	register("io.DoubleWritable", func() writable.Writable { return &writable.DoubleWritable{} })
}
