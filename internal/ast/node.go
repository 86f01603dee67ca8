package ast

// Node wraps a payload together with its annotation table.
// The table is allocated on first AddAnnotation.
type Node[T any] struct {
	Value       T
	annotations map[AnnotationKind]any
}

// NewNode wraps v with an empty annotation table.
func NewNode[T any](v T) *Node[T] {
	return &Node[T]{Value: v}
}

// Lift wraps every value in its own Node.
func Lift[T any](values ...T) []*Node[T] {
	out := make([]*Node[T], len(values))
	for i, v := range values {
		out[i] = NewNode(v)
	}
	return out
}

// AddAnnotation stores a under its kind, replacing any previous value of that kind.
func AddAnnotation[U Annotation, T any](n *Node[T], a U) {
	if n.annotations == nil {
		n.annotations = make(map[AnnotationKind]any, 1)
	}
	n.annotations[a.AnnotationKind()] = a
}

// GetAnnotation returns the annotation of kind U, if present.
func GetAnnotation[U Annotation, T any](n *Node[T]) (U, bool) {
	v, ok := n.annotations[kindOf[U]()].(U)
	return v, ok
}

// HasAnnotation reports whether n carries an annotation of kind U.
func HasAnnotation[U Annotation, T any](n *Node[T]) bool {
	_, ok := GetAnnotation[U](n)
	return ok
}

// RemoveAnnotation drops the annotation of kind U and reports whether one was present.
func RemoveAnnotation[U Annotation, T any](n *Node[T]) bool {
	k := kindOf[U]()
	if _, ok := n.annotations[k]; !ok {
		return false
	}
	delete(n.annotations, k)
	return true
}

// Has reports whether an annotation of kind k is present.
func (n *Node[T]) Has(k AnnotationKind) bool {
	_, ok := n.annotations[k]
	return ok
}

// Annotations lists the kinds present on n in registry order.
func (n *Node[T]) Annotations() []AnnotationKind {
	if len(n.annotations) == 0 {
		return nil
	}
	out := make([]AnnotationKind, 0, len(n.annotations))
	for _, spec := range annotationRegistry {
		if n.Has(spec.Kind) {
			out = append(out, spec.Kind)
		}
	}
	return out
}

// ClearAnnotations empties the table.
func (n *Node[T]) ClearAnnotations() {
	clear(n.annotations)
}
