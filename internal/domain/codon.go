package domain

// codonTable is the standard genetic code, DNA codon to single-letter
// amino acid, with '*' for the three stop codons.
var codonTable = map[string]byte{
	"TTT": 'F', // Phenylalanine
	"TTC": 'F',

	"TTA": 'L', // Leucine
	"TTG": 'L',
	"CTT": 'L',
	"CTC": 'L',
	"CTA": 'L',
	"CTG": 'L',

	"ATT": 'I', // Isoleucine
	"ATC": 'I',
	"ATA": 'I',

	"ATG": 'M', // Methionine

	"GTT": 'V', // Valine
	"GTC": 'V',
	"GTA": 'V',
	"GTG": 'V',

	"TCT": 'S', // Serine
	"TCC": 'S',
	"TCA": 'S',
	"TCG": 'S',

	"CCT": 'P', // Proline
	"CCC": 'P',
	"CCA": 'P',
	"CCG": 'P',

	"ACT": 'T', // Threonine
	"ACC": 'T',
	"ACA": 'T',
	"ACG": 'T',

	"GCT": 'A', // Alanine
	"GCC": 'A',
	"GCA": 'A',
	"GCG": 'A',

	"TAT": 'Y', // Tyrosine
	"TAC": 'Y',

	"TAA": '*', // Stop
	"TAG": '*',

	"CAT": 'H', // Histidine
	"CAC": 'H',

	"CAA": 'Q', // Glutamine
	"CAG": 'Q',

	"AAT": 'N', // Asparagine
	"AAC": 'N',

	"AAA": 'K', // Lysine
	"AAG": 'K',

	"GAT": 'D', // Aspartic acid
	"GAC": 'D',

	"GAA": 'E', // Glutamic acid
	"GAG": 'E',

	"TGT": 'C', // Cysteine
	"TGC": 'C',

	"TGA": '*', // Stop
	"TGG": 'W', // Tryptophan

	"CGT": 'R', // Arginine
	"CGC": 'R',
	"CGA": 'R',
	"CGG": 'R',

	"AGT": 'S', // Serine (again)
	"AGC": 'S',

	"AGA": 'R', // Arginine (again)
	"AGG": 'R',

	"GGT": 'G', // Glycine
	"GGC": 'G',
	"GGA": 'G',
	"GGG": 'G',
}

// aminoAcidNames maps single-letter amino acids to three-letter codes.
var aminoAcidNames = map[byte]string{
	'A': "Ala", 'C': "Cys", 'D': "Asp", 'E': "Glu",
	'F': "Phe", 'G': "Gly", 'H': "His", 'I': "Ile",
	'K': "Lys", 'L': "Leu", 'M': "Met", 'N': "Asn",
	'P': "Pro", 'Q': "Gln", 'R': "Arg", 'S': "Ser",
	'T': "Thr", 'V': "Val", 'W': "Trp", 'Y': "Tyr",
	'*': "Ter",
}

// TranslateCodon translates a canonical DNA codon to its amino acid.
// Returns '*' for stop codons and 'X' for anything that is not a known
// three-base codon.
func TranslateCodon(codon string) byte {
	if len(codon) != 3 {
		return 'X'
	}

	if aa, ok := codonTable[codon]; ok {
		return aa
	}

	return 'X'
}

// IsStopCodon reports whether codon is one of TAA, TAG, TGA.
func IsStopCodon(codon string) bool {
	return TranslateCodon(codon) == '*'
}

// IsStartCodon reports whether codon is ATG.
func IsStartCodon(codon string) bool {
	return codon == "ATG"
}

// AminoAcidName returns the three-letter code for a single-letter amino
// acid, or "Xaa" when the letter is unknown.
func AminoAcidName(aa byte) string {
	if name, ok := aminoAcidNames[aa]; ok {
		return name
	}

	return "Xaa"
}
