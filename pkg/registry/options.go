package registry

import "strings"

// Policy decides what a registrar does when a duplicate id is registered
type Policy int

const (
	// PolicyWarn reports the duplicate and keeps the last registration
	PolicyWarn Policy = iota
	// PolicyStrict makes the registrar panic, halting startup
	PolicyStrict
)

// String returns the policy name
func (p Policy) String() string {
	switch p {
	case PolicyWarn:
		return "warn"
	case PolicyStrict:
		return "strict"
	default:
		return "unknown"
	}
}

// Reporter receives every duplicate registration
type Reporter func(Duplicate)

// Option modifies a registry at construction
type Option func(*options)

type options struct {
	policy     Policy
	reporter   Reporter
	normalizer func(string) string
}

// WithPolicy sets the duplicate policy
func WithPolicy(p Policy) Option { return func(o *options) { o.policy = p } }

// WithReporter replaces the duplicate reporter. A nil reporter silences reports;
// duplicates are still recorded and returned as errors.
func WithReporter(r Reporter) Option { return func(o *options) { o.reporter = r } }

// WithNormalizer canonicalizes ids on Register, Lookup and Has
func WithNormalizer(fn func(string) string) Option {
	return func(o *options) { o.normalizer = fn }
}

// WithCaseFoldLower makes ids case-insensitive
func WithCaseFoldLower() Option {
	return WithNormalizer(strings.ToLower)
}
