package domain

// Optional normalizes an optional text field: nil and empty strings are
// stored as null.
func Optional(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}

// FeaturedRank returns the payload's featured rank, defaulting to 0.
func (in InsertStoveProject) FeaturedRank() int {
	if in.Featured == nil {
		return 0
	}
	return *in.Featured
}

// RatingOrDefault returns the payload's rating, defaulting to DefaultRating.
func (in InsertTestimonial) RatingOrDefault() int {
	if in.Rating == nil || *in.Rating == 0 {
		return DefaultRating
	}
	return *in.Rating
}
