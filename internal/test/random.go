package test

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

const asciiLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// RandomASCIIString returns a pseudo-random alphanumeric string of length in [minLen, maxLen].
func RandomASCIIString(minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	length := minLen + randomIntn(maxLen-minLen+1)
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = asciiLetters[randomIntn(len(asciiLetters))]
	}
	return string(buf)
}

// RandomUsername returns a username unlikely to collide across tests.
func RandomUsername() string {
	return "user_" + RandomASCIIString(8, 12)
}

// RandomEmail returns a syntactically valid, unique looking address.
func RandomEmail() string {
	return fmt.Sprintf("%s@example.com", RandomASCIIString(8, 12))
}

// RandomPhone returns a North American number in E.164 form.
func RandomPhone() string {
	return fmt.Sprintf("+1%03d%07d", 200+randomIntn(800), randomIntn(10_000_000))
}

func randomIntn(n int) int {
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Intn(n)
}
