package domain

import "time"

// Run identifies one invocation of a mining or replay command
type Run struct {
	Command   string
	CreatedAt time.Time
	ID        string
	Project   string
}
