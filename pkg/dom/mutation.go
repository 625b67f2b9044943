package dom

// MutationOp identifies which facet of a node a mutation touched.
type MutationOp uint8

const (
	OpSetText MutationOp = iota + 1
	OpSetAttr
	OpRemoveAttr
	OpAddClass
	OpRemoveClass
	OpSetStyle
	OpRemoveStyle
	OpSetHTML
)

// String returns the string representation of the mutation op.
func (op MutationOp) String() string {
	switch op {
	case OpSetText:
		return "SetText"
	case OpSetAttr:
		return "SetAttr"
	case OpRemoveAttr:
		return "RemoveAttr"
	case OpAddClass:
		return "AddClass"
	case OpRemoveClass:
		return "RemoveClass"
	case OpSetStyle:
		return "SetStyle"
	case OpRemoveStyle:
		return "RemoveStyle"
	case OpSetHTML:
		return "SetHTML"
	default:
		return "Unknown"
	}
}

// Mutation describes one facet write on one node.
type Mutation struct {
	Op     MutationOp
	Target string // element id
	Key    string // attribute name, class name, or style property
	Value  string
}

// PatchSink observes facet mutations on a document. The live server
// implements it to forward mutations to a connected browser.
type PatchSink interface {
	Apply(Mutation)
}
