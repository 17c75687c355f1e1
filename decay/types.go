// Package decay implements the monotone non-increasing opportunity-weighting
// functions used to turn a travel time into an opportunity weight: step,
// linear, exponential, logistic, sigmoid.
//
// Each variant is validated at configuration time against a shared contract
// (zero point in (cutoff, 7200] — or [cutoff, 7200] for Step, whose weight
// is already 0 at cutoff by definition — weight in [0,1], monotone
// non-increasing, near-zero at the declared zero point) over a closed
// enumerated set of variants, with a misconfigured function rejected via a
// returned error rather than silently built.
package decay

// Type enumerates the closed set of supported decay function variants. The
// JSON discriminator maps directly to these string values.
type Type string

const (
	// Step is 1 below cutoff, 0 at or above it.
	Step Type = "step"
	// Linear ramps from 1 to 0 across [cutoff-width, cutoff+width].
	Linear Type = "linear"
	// Exponential decays as exp(-ln(2)*t/halflife), truncated near zero.
	Exponential Type = "exponential"
	// Logistic is a smooth sigmoid centered on cutoff with a std-based slope.
	Logistic Type = "logistic"
	// Sigmoid is a symmetric rolloff around cutoff (alias family to Logistic
	// with a different default slope parameterization).
	Sigmoid Type = "sigmoid"
)

// horizonSeconds is the upper bound of the validation sampling window and
// the hard truncation point for Logistic and Sigmoid's ReachesZeroAt: two
// hours.
const horizonSeconds = 7200.0

// validationEpsilon is how close to zero a Function's weight must be at its
// declared ReachesZeroAt point.
const validationEpsilon = 1e-4

// Function is a configured decay function: a pure, side-effect-free weight
// curve over travel time, plus its declared zero point for a given cutoff.
type Function interface {
	// Weight returns the opportunity weight, in [0,1], for a travel time of
	// travelTimeSeconds given the cutoff this Function was built for.
	Weight(travelTimeSeconds float64) float64
	// ReachesZeroAt returns the travel time, in seconds, beyond which Weight
	// is guaranteed to be within validationEpsilon of zero. In
	// (cutoffSeconds, horizonSeconds] for every variant except Step, which
	// reaches zero at cutoffSeconds itself.
	ReachesZeroAt() float64
	// Type reports which variant produced this Function, letting a caller
	// pick a variant-specific fast path (e.g. reducer's count-and-bail for
	// Step) without type-asserting an unexported struct.
	Type() Type
}

// Config is the JSON-serializable configuration for a decay function,
// carrying the discriminator Type plus every variant's parameters (unused
// fields for the selected Type are ignored).
type Config struct {
	Type Type `json:"type"`

	CutoffSeconds float64 `json:"cutoffSeconds"`

	// LinearWidthSeconds is the ramp half-width for Linear.
	LinearWidthSeconds float64 `json:"widthSeconds,omitempty"`
	// HalflifeSeconds is the exponential halflife for Exponential.
	HalflifeSeconds float64 `json:"halflifeSeconds,omitempty"`
	// StdSeconds is the logistic/sigmoid slope parameter.
	StdSeconds float64 `json:"stdSeconds,omitempty"`
}
