package auction

import "time"

// Clock 回傳目前時間，所有時間比較都以 UTC 進行
type Clock func() time.Time

func systemClock() time.Time {
	return time.Now().UTC()
}
