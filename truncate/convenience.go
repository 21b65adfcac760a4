package truncate

// ToSegments truncates text to fit within budget segments using the hard
// strategy and the default counter.
func ToSegments(text string, budget int) (string, error) {
	result, _, err := NewHard().Truncate(text, budget)
	return result, err
}

// ToSegmentsAtWord is ToSegments preferring a word boundary.
func ToSegmentsAtWord(text string, budget int) (string, error) {
	result, _, err := NewAtWord().Truncate(text, budget)
	return result, err
}
