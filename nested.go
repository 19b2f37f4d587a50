package vtree

// Child declares a nested object of T validated by its own tree.
// Build it with Nest.
type Child[T any] interface {
	childName() string
	node() node
	attach(parent *Tree[T])
	cloneFor(parent *Tree[T]) Child[T]
}

// Nest declares the object at ref as validated by child. Once the parent is
// configured, child always reads its object through the parent and cannot be
// bound on its own. A child built without options or logger takes a copy of
// the parent's at that point.
func Nest[T, C any](name string, ref func(*T) *C, child *Tree[C]) Child[T] {
	return &nestLink[T, C]{name: name, ref: ref, tree: child}
}

type nestLink[T, C any] struct {
	name string
	ref  func(*T) *C
	tree *Tree[C]
}

func (l *nestLink[T, C]) childName() string { return l.name }
func (l *nestLink[T, C]) node() node        { return l.tree }

func (l *nestLink[T, C]) attach(parent *Tree[T]) {
	child := l.tree
	child.getter = func() *C {
		obj := parent.object()
		if obj == nil {
			return nil
		}
		return l.ref(obj)
	}
	child.upstream = parent.isBound
	child.parentPayload = parent.payload
	child.inherit(&parent.base)
}

func (l *nestLink[T, C]) cloneFor(parent *Tree[T]) Child[T] {
	c := &nestLink[T, C]{name: l.name, ref: l.ref, tree: l.tree.clone()}
	c.attach(parent)
	return c
}

// NestedNode names a nested tree in declaration order.
type NestedNode struct {
	Field string
	Tree  Node
}
