package ecolite

// Record is a single opening entry in the ECO-lite catalog. The dataset may
// carry additional keys per entry; they are ignored by validation and by
// this decoded form.
type Record struct {
	// Eco is the opening's ECO classification code, e.g. "A00".
	Eco string `json:"eco"`

	// Name is the human-readable opening name.
	Name string `json:"name"`

	// Moves is the move-sequence string identifying the line. It is the
	// uniqueness key for the catalog.
	Moves string `json:"moves"`
}
