package untagged

// Hooks lightweight callbacks for codec events.
// Implementations MUST be cheap, non-blocking and safe for concurrent use:
// one codec may serve many goroutines.
type Hooks interface {
	// A candidate's decoder failed and the codec moved on.
	CandidateRejected(candidate string, err error)

	// Neither candidate matched; the caller gets a *DecodeError.
	NoMatch(a, b string)

	// Encode was called on an empty value; the caller gets an *EncodeError.
	EncodeEmpty(a, b string)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) CandidateRejected(string, error) {}
func (NopHooks) NoMatch(string, string)          {}
func (NopHooks) EncodeEmpty(string, string)      {}
