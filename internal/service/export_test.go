package service

import "time"

func SetAuthClock(s AuthService, now func() time.Time) {
	s.(*authService).now = now
}

func SetThreeDSClock(s ThreeDSService, now func() time.Time) {
	s.(*threeDSService).now = now
}
