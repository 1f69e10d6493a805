package view

import "sync/atomic"

// onceFlag reports true to the first caller only.
type onceFlag struct {
	done atomic.Bool
}

func (f *onceFlag) first() bool {
	return f.done.CompareAndSwap(false, true)
}
