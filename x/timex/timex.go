package timex

import "time"

// NowMs returns Unix milliseconds as int64.
func NowMs() int64 { return time.Now().UnixMilli() }

// PeriodFromHz returns the frame period for a requested rate, truncated to
// whole milliseconds (120 Hz -> 8ms) to match millisecond-tick pacing.
// freqHz==0 is coerced to 1 to avoid division by zero.
func PeriodFromHz(freqHz uint32) time.Duration {
	if freqHz == 0 {
		freqHz = 1
	}
	ms := 1000 / freqHz
	if ms == 0 {
		ms = 1
	}
	return time.Duration(ms) * time.Millisecond
}

// Ms converts a millisecond count from config into a Duration.
func Ms[T ~uint16 | ~uint32 | ~int](ms T) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
