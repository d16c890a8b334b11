package model

// MutationType represents the category of mutation.
type MutationType string

const (
	// MutationPoint replaces a single base with another base.
	MutationPoint MutationType = "point"
	// MutationInsertion inserts a subsequence before a position.
	MutationInsertion MutationType = "insertion"
	// MutationDeletion removes a run of bases starting at a position.
	MutationDeletion MutationType = "deletion"
)

// Mutation describes a single edit to apply to a DNA sequence.
// Position is zero-based. Point reads Base, Insertion reads Insert,
// Deletion reads Length; the other fields are ignored.
type Mutation struct {
	Type     MutationType
	Position int
	Base     byte     // replacement base for a point mutation
	Insert   Sequence // bases to insert for an insertion
	Length   int      // number of bases to remove for a deletion
}
