package redis

import "time"

// DefaultConnectTimeout bounds the initial ping.
const DefaultConnectTimeout = 5 * time.Second
