package model

// Hashes is an ordered collection of Hash records.
type Hashes []Hash

// Hash is a checksum of the referenced artifact.
type Hash struct {
	Algorithm HashAlgorithm
	Value     HashValue
}

// HashValue is the hex-encoded digest. It is not re-validated here; digests
// arrive either from a canonical constructor or from a parsed payload.
type HashValue string

// HashAlgorithm names the digest algorithm. Open set: unrecognized values
// are preserved verbatim.
type HashAlgorithm struct {
	value string
	known bool
}

var (
	HashAlgoMD5        = HashAlgorithm{"MD5", true}
	HashAlgoSHA1       = HashAlgorithm{"SHA-1", true}
	HashAlgoSHA256     = HashAlgorithm{"SHA-256", true}
	HashAlgoSHA384     = HashAlgorithm{"SHA-384", true}
	HashAlgoSHA512     = HashAlgorithm{"SHA-512", true}
	HashAlgoSHA3_256   = HashAlgorithm{"SHA3-256", true}
	HashAlgoSHA3_384   = HashAlgorithm{"SHA3-384", true}
	HashAlgoSHA3_512   = HashAlgorithm{"SHA3-512", true}
	HashAlgoBlake2b256 = HashAlgorithm{"BLAKE2b-256", true}
	HashAlgoBlake2b384 = HashAlgorithm{"BLAKE2b-384", true}
	HashAlgoBlake2b512 = HashAlgorithm{"BLAKE2b-512", true}
	HashAlgoBlake3     = HashAlgorithm{"BLAKE3", true}
)

// HashAlgorithmFromString maps the exact published representation to its
// known value; matching is case-sensitive with no trimming.
func HashAlgorithmFromString(s string) HashAlgorithm {
	switch s {
	case "MD5":
		return HashAlgoMD5
	case "SHA-1":
		return HashAlgoSHA1
	case "SHA-256":
		return HashAlgoSHA256
	case "SHA-384":
		return HashAlgoSHA384
	case "SHA-512":
		return HashAlgoSHA512
	case "SHA3-256":
		return HashAlgoSHA3_256
	case "SHA3-384":
		return HashAlgoSHA3_384
	case "SHA3-512":
		return HashAlgoSHA3_512
	case "BLAKE2b-256":
		return HashAlgoBlake2b256
	case "BLAKE2b-384":
		return HashAlgoBlake2b384
	case "BLAKE2b-512":
		return HashAlgoBlake2b512
	case "BLAKE3":
		return HashAlgoBlake3
	}
	return HashAlgorithm{value: s}
}

func (a HashAlgorithm) String() string { return a.value }

// Known reports whether a is one of the published algorithms.
func (a HashAlgorithm) Known() bool { return a.known }

// Equal makes HashAlgorithm comparable by go-cmp without exposing fields.
func (a HashAlgorithm) Equal(o HashAlgorithm) bool { return a == o }
