package input

// Snapshot is an immutable view of the held signals for one tick.
type Snapshot uint32

// With returns a copy of s with the given signals set.
func (s Snapshot) With(signals ...Signal) Snapshot {
	for _, sig := range signals {
		if sig < signalCount {
			s |= 1 << sig
		}
	}
	return s
}

// IsActive reports whether sig is held. Unknown signals read as inactive.
func (s Snapshot) IsActive(sig Signal) bool {
	return sig < signalCount && s&(1<<sig) != 0
}

// JustPressed reports whether sig is held in s but was not held in prev.
func (s Snapshot) JustPressed(prev Snapshot, sig Signal) bool {
	return s.IsActive(sig) && !prev.IsActive(sig)
}

// Empty reports whether no signal is held.
func (s Snapshot) Empty() bool {
	return s == 0
}
