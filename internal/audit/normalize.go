package audit

import (
	"github.com/permaudit-project/permaudit/pkg/model"
	"github.com/permaudit-project/permaudit/pkg/vocab"
)

// Normalize converts a raw ACE into its canonical comparable form. It is
// pure and total: the vocabulary's pass-through fallback guarantees a
// result for any rights or flag encoding, known or not. The inherited flag
// is deliberately dropped so expected/actual comparison is policy-based,
// not provenance-based.
func Normalize(raw model.RawAce) model.CanonicalAce {
	return model.CanonicalAce{
		Principal:  raw.Identity,
		RightName:  vocab.RightName(raw.Rights),
		AccessType: raw.Type,
		AppliesTo:  vocab.AppliesTo(raw.Flags),
	}
}
