package service

import "time"

// Clock: sumber waktu server; timestamp tidak pernah diambil dari client.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }
