package decay

// New constructs a Function from cfg, running the self-validation contract
// before returning: it aborts with a BadConfig accesserr if validation
// fails, so a caller never receives a Function that could violate the
// contract at runtime.
func New(cfg Config) (Function, error) {
	if cfg.CutoffSeconds <= 0 {
		return nil, newBadConfig("decay.New", errNonPositiveCutoff)
	}

	var fn Function
	switch cfg.Type {
	case Step:
		fn = &stepFn{cutoff: cfg.CutoffSeconds}
	case Linear:
		if cfg.LinearWidthSeconds <= 0 {
			return nil, newBadConfig("decay.New", errNonPositiveWidth)
		}
		fn = &linearFn{cutoff: cfg.CutoffSeconds, width: cfg.LinearWidthSeconds}
	case Exponential:
		if cfg.HalflifeSeconds <= 0 {
			return nil, newBadConfig("decay.New", errNonPositiveHalf)
		}
		fn = newExponentialFn(cfg.HalflifeSeconds)
	case Logistic:
		if cfg.StdSeconds <= 0 {
			return nil, newBadConfig("decay.New", errNonPositiveStd)
		}
		fn = &logisticFn{cutoff: cfg.CutoffSeconds, std: cfg.StdSeconds}
	case Sigmoid:
		if cfg.StdSeconds <= 0 {
			return nil, newBadConfig("decay.New", errNonPositiveStd)
		}
		fn = &sigmoidFn{cutoff: cfg.CutoffSeconds, std: cfg.StdSeconds}
	default:
		return nil, newBadConfig("decay.New", errUnknownType)
	}

	if err := validate(fn, cfg.CutoffSeconds); err != nil {
		return nil, newBadConfig("decay.New", err)
	}

	return fn, nil
}
