package input

// Debouncer turns a stream of click samples into discrete clicks.
//
// Terminals seldom report key releases, so the click button is modelled with
// two keys: one sampled as "held", the other as "released". Every other key
// also counts as released. A click fires on the held -> released edge only,
// which yields at most one click per press/release cycle no matter how often
// the held key autorepeats.
type Debouncer struct {
	depressed bool
}

// Observe feeds one sample and reports whether it completes a click.
func (d *Debouncer) Observe(held bool) (click bool) {
	switch {
	case held && !d.depressed:
		d.depressed = true
	case !held && d.depressed:
		d.depressed = false
		return true
	}
	return false
}

// Depressed reports whether the virtual click button is currently held.
func (d *Debouncer) Depressed() bool {
	return d.depressed
}
