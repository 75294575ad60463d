package viceverser

// Priorities holds, for every Context, the ordered list of POS tags tried
// when disambiguating analyzer entries. It is immutable once built.
//
// Tagging errors are not uniform: a word tagged aux is far more likely to be
// a verb than a determiner, and infinitives are often tagged noun. Each tag
// therefore gets its own fallback order.
type Priorities struct {
	orders   [numContexts][]POS
	defaults []POS
	prefix   POS
}

// BuildPriorities builds the priority table.
//
// defaults is extended with every tag of tags it does not already hold, in
// the given order. For each tag t of that extended list, the order starts
// from overrides[t] (or the extended defaults), is completed with the missing
// defaults, and has t moved to the front. The compound variant of t puts
// prefix first, followed by the order of t without prefix.
//
// Neither defaults nor overrides are modified.
func BuildPriorities(tags []POS, overrides map[POS][]POS, defaults []POS, prefix POS) *Priorities {
	ext := dedupPOS(defaults)
	for _, t := range tags {
		ext = appendPOS(ext, t)
	}

	p := &Priorities{defaults: ext, prefix: prefix}
	for _, t := range ext {
		var order []POS
		if o, ok := overrides[t]; ok {
			order = dedupPOS(o)
		} else {
			order = dedupPOS(ext)
		}
		for _, d := range ext {
			order = appendPOS(order, d)
		}
		order = moveFront(order, t)
		p.orders[Context{POS: t}.Index()] = order
		p.orders[Context{POS: t, Compound: true}.Index()] = moveFront(order, prefix)
	}
	return p
}

// Order returns the priority list for c. Tags that were not part of the
// table get the default list with the tag itself first.
// The returned slice must not be modified.
func (p *Priorities) Order(c Context) []POS {
	if o := p.orders[c.Index()]; o != nil {
		return o
	}
	order := moveFront(p.defaults, c.POS)
	if c.Compound {
		order = moveFront(order, p.prefix)
	}
	return order
}

// Tags returns the extended default list, i.e. every tag known to the table.
func (p *Priorities) Tags() []POS {
	return append([]POS(nil), p.defaults...)
}

// Prefix returns the POS preferred for compound segments.
func (p *Priorities) Prefix() POS {
	return p.prefix
}

// moveFront returns a copy of order with t at index 0 and no other t.
func moveFront(order []POS, t POS) []POS {
	out := make([]POS, 0, len(order)+1)
	out = append(out, t)
	for _, o := range order {
		if o != t {
			out = append(out, o)
		}
	}
	return out
}

// dedupPOS returns a copy of tags without duplicates, first occurrence kept.
func dedupPOS(tags []POS) []POS {
	out := make([]POS, 0, len(tags))
	for _, t := range tags {
		out = appendPOS(out, t)
	}
	return out
}
