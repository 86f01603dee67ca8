package ast

// AnnotationKind identifies one entry of the annotation vocabulary.
type AnnotationKind uint8

const (
	AnnNone AnnotationKind = iota
	AnnType                // inferred Type of an expression
	AnnLoop                // LoopInfo of a while loop
)

// Annotation lists every payload type a Node may carry.
// Добавляя новый вид: тип сюда, константу выше и строку в annotationRegistry.
type Annotation interface {
	Type | LoopInfo
	AnnotationKind() AnnotationKind
}

// AnnotationSpec describes a registered annotation kind.
type AnnotationSpec struct {
	Kind AnnotationKind
	Name string
}

// annotationRegistry is ordered by kind; Node.Annotations follows this order.
var annotationRegistry = []AnnotationSpec{
	{Kind: AnnType, Name: "type"},
	{Kind: AnnLoop, Name: "loop"},
}

var annotationByName = func() map[string]AnnotationKind {
	m := make(map[string]AnnotationKind, len(annotationRegistry))
	for _, spec := range annotationRegistry {
		m[spec.Name] = spec.Kind
	}
	return m
}()

// LookupAnnotationKind returns the kind registered under name.
func LookupAnnotationKind(name string) (AnnotationKind, bool) {
	k, ok := annotationByName[name]
	return k, ok
}

// AnnotationSpecs returns a copy of the registry in kind order.
func AnnotationSpecs() []AnnotationSpec {
	out := make([]AnnotationSpec, len(annotationRegistry))
	copy(out, annotationRegistry)
	return out
}

func (k AnnotationKind) String() string {
	for _, spec := range annotationRegistry {
		if spec.Kind == k {
			return spec.Name
		}
	}
	return "none"
}

// LoopInfo records what is known about a loop's termination.
type LoopInfo struct {
	DefinitelyTerminates bool
}

func (LoopInfo) AnnotationKind() AnnotationKind { return AnnLoop }

func (Type) AnnotationKind() AnnotationKind { return AnnType }

func kindOf[U Annotation]() AnnotationKind {
	var zero U
	return zero.AnnotationKind()
}
