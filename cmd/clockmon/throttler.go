package main

import "time"

// fixedInterval waits the same duration after every sample regardless of
// whether it succeeded
type fixedInterval time.Duration

func (f fixedInterval) WaitDuration() time.Duration {
	return time.Duration(f)
}

// Name is the name of this limiter
func (f fixedInterval) Name() string {
	return "fixed"
}
