package diff

import "errors"

// Sentinel errors returned by diff operations.
//
// Callers should use [errors.Is] to classify failures:
//
//	if errors.Is(err, diff.ErrScriptOverflow) {
//	    // grow the script buffer and retry
//	}
var (
	// ErrScriptOverflow indicates the script buffer passed to [Compute]
	// was too small to hold the produced edit script.
	//
	// Recovery: retry with a larger buffer. Sizing at
	// len(old)+len(new)+2 is always sufficient.
	ErrScriptOverflow = errors.New("diff: script buffer too small")

	// ErrOutOfMemory indicates the trace arena required by the search
	// engine could not be allocated, or its size would overflow int on
	// the host platform.
	//
	// Recovery: none — this indicates inputs too large for the host.
	ErrOutOfMemory = errors.New("diff: trace arena allocation failed")

	// ErrInternal indicates an impossible state: the search exhausted
	// its distance bound without finding a terminal entry, or the
	// script builder tried to emit an invalid opcode kind.
	//
	// Recovery: none — this indicates a bug in diff itself.
	ErrInternal = errors.New("diff: internal invariant violated")

	// ErrOutputOverflow indicates the destination buffer passed to
	// [Apply] was too small to hold the reconstructed bytes.
	//
	// Recovery: retry with a larger buffer, sized with at least one
	// byte of headroom above the expected output length.
	ErrOutputOverflow = errors.New("diff: output buffer too small")

	// ErrCorruptScript indicates a malformed edit script: an opcode tag
	// of 0 (Noop), which [Compute] never emits, a Keep run reaching past
	// the end of old, or an Insert opcode whose payload is cut short by
	// the end of the script.
	//
	// Recovery: none — the script was truncated or generated by
	// something other than [Compute].
	ErrCorruptScript = errors.New("diff: corrupt edit script")
)
