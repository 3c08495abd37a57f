package gwaskit

// CountSamples is the number of data rows of a sample sheet, the header
// line excluded. Fields may be separated by tabs, semicolons or commas.
func CountSamples(fn string) (int, error) {
	t, err := ReadTable(fn, SamplesDelim)
	if err != nil {
		return 0, err
	}
	return len(t.Rows), nil
}
