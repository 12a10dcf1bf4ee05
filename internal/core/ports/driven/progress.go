package driven

// ProgressFunc is an optional hook observing walk and fetch progress.
// It receives the number of items processed so far and the current item
// label. Reporting has no effect on the outcome.
type ProgressFunc func(processed int, current string)
