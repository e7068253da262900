package build

// Overridden at build time with -ldflags.
var (
	ShortVersion = "0.0.0"
	GitRef       = "unknown"
	LongVersion  = ShortVersion + "-" + GitRef
)
