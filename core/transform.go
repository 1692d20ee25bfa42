package core

// Transformer mutates a Feed in place.
type Transformer interface {
	Transform(f *Feed) error
}

// Chain applies transformers in order, stopping at the first error.
func Chain(f *Feed, transformers ...Transformer) error {
	for _, tr := range transformers {
		if err := tr.Transform(f); err != nil {
			return err
		}
	}
	return nil
}
