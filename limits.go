package gozipper

// Row caps for Loader. A cursor holds the whole loaded sequence in memory,
// so unlimited loads are opt-in and everything else is normalized into
// (0, MaxLimit].
const (
	NoLimit      = -1
	MaxLimit     = 10000
	DefaultLimit = 1000
)

// IsNormalizedLimitMax clamps limit into (0, maxLimit] and reports whether
// it was already in range. Zero and negative limits fall back to
// DefaultLimit.
func IsNormalizedLimitMax(limit int, maxLimit int) (int, bool) {
	if limit <= 0 {
		return DefaultLimit, false
	} else if limit > maxLimit {
		return maxLimit, false
	}

	return limit, true
}

func NormalizeLimitMax(limit int, maxLimit int) int {
	ret, _ := IsNormalizedLimitMax(limit, maxLimit)
	return ret
}

func NormalizeLimit(limit int) int {
	return NormalizeLimitMax(limit, MaxLimit)
}
