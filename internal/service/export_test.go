package service

import "time"

// WithNow pins the service clock so streak arithmetic is testable.
func (ss *StatsService) WithNow(now func() time.Time) *StatsService {
	ss.now = now
	return ss
}
