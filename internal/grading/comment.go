package grading

// Comment returns the performance analysis line for a percentage.
// The buckets are coarser than the letter scale at the top end.
func Comment(percentage float64) string {
	switch {
	case percentage >= 80:
		return "Excellent work! You have a strong grasp of the material."
	case percentage >= 70:
		return "Good job! You understand most concepts well."
	case percentage >= 60:
		return "Fair performance. Review the material to strengthen your understanding."
	case percentage >= 50:
		return "You passed, but there's room for improvement. Focus on weak areas."
	default:
		return "More study is needed. Review all topics thoroughly."
	}
}
