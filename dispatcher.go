package qpgo

// maxNestDepth bounds the initial-transition drill so that a cyclic or
// malformed state tree fails fast instead of looping forever. 32 is the
// same arbitrary bound used in original_source/farc/Hsm.py's Hsm.init.
const maxNestDepth = 32

// Init drills an HSM from its top state down to its innermost initial
// leaf state, following nested INIT transitions and running ENTRY
// actions in outside-in order along the way. e is delivered to the
// top-level initial-transition handler and may carry construction
// parameters; it is typically EventInit.
//
// Ported from original_source/farc/Hsm.py's Hsm.init, adapted so that
// Init — not the handler — mutates HSM.current: handlers only report
// Directives.
func Init(h *HSM, e Event) error {
	d := h.initial.handler(h, e)
	if d.Code != Tran {
		return ErrBadInitReturn
	}
	target := d.Target
	boundary := h.top
	depth := 0

	for {
		path := []*State{target}
		walker := target
		for walker != boundary {
			if depth+len(path) > maxNestDepth {
				return ErrNestingTooDeep
			}
			d := walker.handler(h, EventEmpty)
			if d.Code != Super {
				return ErrBadSuperReturn
			}
			walker = d.Target
			if walker != boundary {
				path = append(path, walker)
			}
		}
		if depth+len(path) > maxNestDepth {
			return ErrNestingTooDeep
		}

		for i := len(path) - 1; i >= 0; i-- {
			s := path[i]
			d := s.handler(h, EventEntry)
			h.observer().OnStateHandlerCalled(s, EventEntry, d.Code)
			if d.Code != Handled {
				return ErrBadEntryReturn
			}
		}
		depth += len(path)

		h.current = target
		boundary = target

		d = target.handler(h, EventInit)
		if d.Code != Tran {
			break
		}
		target = d.Target
	}

	h.current = target
	return nil
}

// Dispatch delivers e to h's current state, bubbling it to successive
// superstates (via DirSuper) until a handler returns DirHandled,
// DirIgnored, or DirTran. On DirTran it computes the least common
// ancestor of the source and target states, runs EXIT actions from the
// source up to (not including) the LCA, then ENTRY actions from the LCA
// down to the target, and leaves h.current at the target.
//
// Ported from original_source/farc/Hsm.py's Hsm.dispatch. As with Init,
// only Dispatch ever mutates HSM.current; handlers are pure functions of
// (HSM, Event) -> Directive.
func Dispatch(h *HSM, e Event) error {
	h.observer().OnHSMDispatchEvent(e)

	source := h.current
	cur := source

	var exitPath []*State
	var r Directive
	for {
		exitPath = append(exitPath, cur)
		h.observer().OnHSMDispatchPre(cur)
		r = cur.handler(h, e)
		h.observer().OnStateHandlerCalled(cur, e, r.Code)
		if r.Code != Super {
			break
		}
		cur = r.Target
	}

	h.observer().OnHSMDispatchPost(exitPath)

	switch r.Code {
	case Handled, Ignored:
		return nil
	case Tran:
		// handled below
	default:
		return ErrBadSuperReturn
	}

	target := r.Target

	walker := target
	d := walker.handler(h, EventEmpty)
	if d.Code != Super {
		return ErrBadSuperReturn
	}
	walker = d.Target
	for walker != h.top {
		exitPath = append(exitPath, walker)
		d = walker.handler(h, EventEmpty)
		if d.Code != Super {
			return ErrBadSuperReturn
		}
		walker = d.Target
	}

	var entryPath []*State
	walker = target
	for walker != h.top {
		entryPath = append(entryPath, walker)
		d = walker.handler(h, EventEmpty)
		if d.Code != Super {
			return ErrBadSuperReturn
		}
		walker = d.Target
	}

	// Walk both ancestor chains from their tails (the shared root end)
	// inward, looking for the deepest point where they diverge. This
	// finds the least common ancestor without ever naming it explicitly.
	// exitPath and entryPath are rarely the same length — the two chains
	// can bottom out at different depths — so bounds are checked on both
	// sides rather than assuming a Python-style negative-index wraparound.
	i := -1
	for len(exitPath)+i >= 0 && len(entryPath)+i >= 0 &&
		exitPath[len(exitPath)+i] == entryPath[len(entryPath)+i] {
		i--
	}
	n := len(exitPath) + i + 1
	if n > len(exitPath) {
		n = len(exitPath)
	}
	if n < 0 {
		n = 0
	}

	for _, s := range exitPath[:n] {
		d := s.handler(h, EventExit)
		h.observer().OnStateHandlerCalled(s, EventExit, d.Code)
		if d.Code != Super && d.Code != Handled {
			return ErrBadExitReturn
		}
	}

	entryStart := n
	if entryStart >= len(entryPath) {
		entryStart = len(entryPath) - 1
	}
	for j := entryStart; j >= 0; j-- {
		s := entryPath[j]
		d := s.handler(h, EventEntry)
		h.observer().OnStateHandlerCalled(s, EventEntry, d.Code)
		if d.Code != Handled {
			return ErrBadEntryReturn
		}
	}

	h.current = target
	return nil
}
