package etchings

import "time"

//go:generate mockgen -destination=mock/mock_time_provider.go -package=mocketchings -source=time_provider.go

// TimeProvider stamps loadouts when they are saved
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider uses the wall clock
type RealTimeProvider struct{}

// Now returns the current UTC time
func (RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
