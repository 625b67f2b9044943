package dom

// Find returns the first element in the subtree (depth-first, self
// included) satisfying pred, or nil.
func (e *Element) Find(pred func(*Element) bool) *Element {
	if pred(e) {
		return e
	}
	for _, c := range e.children {
		if c.Kind != KindElement {
			continue
		}
		if found := c.El.Find(pred); found != nil {
			return found
		}
	}
	return nil
}

// FindByTag returns the first element with the given tag, or nil.
func (e *Element) FindByTag(tag string) *Element {
	return e.Find(func(el *Element) bool { return el.tag == tag })
}

// FindByClass returns the first element carrying the class, or nil.
func (e *Element) FindByClass(name string) *Element {
	return e.Find(func(el *Element) bool { return el.HasClass(name) })
}

// FindByAttr returns the first element whose attribute matches, or nil.
func (e *Element) FindByAttr(name, value string) *Element {
	return e.Find(func(el *Element) bool {
		v, ok := el.attrs[name]
		return ok && v == value
	})
}
