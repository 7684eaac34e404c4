// Package permute derives the byte permutations used to rotate vector
// lanes by whole bytes. It is the single source of truth for the tables
// emitted into package lane by its generator.
package permute

// RotateIndices returns the gather indices that rotate every lane of a
// vector of n bytes, split into lanes of block bytes, by rot bytes. Each
// group [i*block, (i+1)*block) of the identity permutation is rotated
// left (or right) by rot positions.
//
// With lanes laid out most significant byte first, the left table
// rotates each lane's bits left by 8*rot and the right table rotates
// them right.
func RotateIndices(n, block, rot int, left bool) []int {
	if block <= 0 || n%block != 0 {
		panic("permute: vector length is not a multiple of the lane size")
	}
	rot %= block
	if !left {
		rot = (block - rot) % block
	}
	idx := make([]int, n)
	for start := 0; start < n; start += block {
		for j := range block {
			idx[start+j] = start + (j+rot)%block
		}
	}
	return idx
}

// Inverse returns the permutation q such that q[p[i]] == i.
func Inverse(p []int) []int {
	q := make([]int, len(p))
	for i, j := range p {
		q[j] = i
	}
	return q
}
