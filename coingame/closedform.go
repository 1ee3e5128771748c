package coingame

import "github.com/pkg/errors"

// ClosedForm is the analytical expectation when one is known. Available is
// false when no closed form exists for the requested bias; callers must
// treat that case distinctly from a numeric result.
type ClosedForm struct {
	Mean      float64
	Available bool
}

// ClosedFormMeanRounds evaluates the known closed-form expected number of
// rounds to first elimination,
//
//	E = 4lmn / (3(l+m+n-2))
//
// which holds only for fair coins. For any bias other than exactly 0.5 the
// result is Unavailable; no approximation is attempted. Pure, no random
// component.
func ClosedFormMeanRounds(tokens Tokens, bias float64) (ClosedForm, error) {
	if err := tokens.Validate(); err != nil {
		return ClosedForm{}, err
	}
	if bias < 0 || bias > 1 {
		return ClosedForm{}, errors.Wrapf(ErrInvalidConfiguration, "bias %v outside [0, 1]", bias)
	}
	if bias != 0.5 {
		return ClosedForm{}, nil
	}

	l, m, n := float64(tokens.L), float64(tokens.M), float64(tokens.N)
	return ClosedForm{
		Mean:      (4 * l * m * n) / (3 * (l + m + n - 2)),
		Available: true,
	}, nil
}
