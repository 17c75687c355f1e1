package accessibility

// Warnings collects human-readable, non-fatal notices raised during one
// origin's pipeline run (e.g. an empty destination point set). It is a
// plain []string, already json.Marshal-able with no custom method needed,
// meant to be appended as JSON to the end of an output stream per the
// scenario-application-warnings propagation rule.
type Warnings []string

// Add returns w with msg appended.
func (w Warnings) Add(msg string) Warnings {
	return append(w, msg)
}
