package diff

import "errors"

// Compute produces an edit script transforming old into new, writing it
// into script and returning the number of bytes used.
//
// Returns ErrScriptOverflow if script is too small, ErrOutOfMemory if the
// trace arena required by the search could not be sized, or ErrInternal
// if the search exhausted its distance bound without terminating. On any
// error the contents of script must be treated as undefined.
func Compute(old, new, script []byte) (int, error) {
	arena, terminal, err := searchTerminal(old, new)
	if err != nil {
		return 0, err
	}

	n, err := buildScript(arena, terminal, new, script)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// Apply reconstructs new from old by replaying script, writing the
// result into dst and returning the number of bytes written.
//
// dst must be sized with at least one byte of headroom above the
// expected output length (see Open Questions in SPEC_FULL.md): the
// bounds check is newIndex+count >= len(dst), not >. Returns
// ErrOutputOverflow if dst is too small, or ErrCorruptScript if script
// decodes the reserved Noop tag, a Keep run past the end of old, or an
// Insert payload cut short by the end of script.
func Apply(old, script, dst []byte) (int, error) {
	oldIndex, scriptIndex, newIndex := 0, 0, 0

	for scriptIndex < len(script) {
		kind, count := unpackOpcode(script[scriptIndex])

		switch kind {
		case opDelete:
			oldIndex += count

		case opKeep:
			if newIndex+count >= len(dst) {
				return 0, ErrOutputOverflow
			}
			if oldIndex+count > len(old) {
				return 0, ErrCorruptScript
			}
			copy(dst[newIndex:newIndex+count], old[oldIndex:oldIndex+count])
			oldIndex += count
			newIndex += count

		case opInsert:
			if newIndex+count >= len(dst) {
				return 0, ErrOutputOverflow
			}
			payloadStart := scriptIndex + 1
			if payloadStart+count > len(script) {
				return 0, ErrCorruptScript
			}
			copy(dst[newIndex:newIndex+count], script[payloadStart:payloadStart+count])
			scriptIndex += count
			newIndex += count

		default: // opNoop or any unrecognized tag
			return 0, ErrCorruptScript
		}

		scriptIndex++
	}

	// Tail rule: bytes of old beyond the last opcode's consumption are
	// implicitly kept. There is no symmetric rule for a trailing
	// deletion — emitters must emit an explicit Delete run to trim.
	if oldIndex < len(old) {
		tail := len(old) - oldIndex
		if newIndex+tail >= len(dst) {
			return 0, ErrOutputOverflow
		}
		copy(dst[newIndex:newIndex+tail], old[oldIndex:])
		newIndex += tail
	}

	return newIndex, nil
}

// ComputeBytes is an allocating convenience wrapper around Compute. It
// sizes the script buffer at len(old)+len(new)+2, the bound guaranteed
// sufficient by Universal Property 6 in SPEC_FULL.md, and re-slices down
// to the bytes actually written.
func ComputeBytes(old, new []byte) ([]byte, error) {
	script := make([]byte, len(old)+len(new)+2)
	n, err := Compute(old, new, script)
	if err != nil {
		return nil, err
	}
	return script[:n], nil
}

// ApplyBytes is an allocating convenience wrapper around Apply. It makes
// a first attempt sized at len(old)+64 and, on ErrOutputOverflow, retries
// once with a buffer sized for the worst case derived from a single scan
// of script's opcode bytes.
func ApplyBytes(old, script []byte) ([]byte, error) {
	dst := make([]byte, len(old)+64)
	n, err := Apply(old, script, dst)
	if err == nil {
		return dst[:n], nil
	}
	if !errors.Is(err, ErrOutputOverflow) {
		return nil, err
	}

	insertBytes, scanErr := scriptInsertPayloadBytes(script)
	if scanErr != nil {
		return nil, scanErr
	}

	dst = make([]byte, len(old)+insertBytes+1)
	n, err = Apply(old, script, dst)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// scriptInsertPayloadBytes scans every opcode of script and sums the
// counts of Insert runs, used by ApplyBytes to size a worst-case
// retry buffer without guessing.
func scriptInsertPayloadBytes(script []byte) (int, error) {
	total := 0
	i := 0
	for i < len(script) {
		kind, count := unpackOpcode(script[i])
		switch kind {
		case opInsert:
			if i+1+count > len(script) {
				return 0, ErrCorruptScript
			}
			total += count
			i += 1 + count
		case opDelete, opKeep:
			i++
		default:
			return 0, ErrCorruptScript
		}
	}
	return total, nil
}
