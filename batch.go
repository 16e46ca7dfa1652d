package msm

// BatchToSpecial normalizes every element of xs to special (affine) form,
// tolerating zero elements (unlike Group.BatchToSpecialAllNonZeros, which
// requires the caller to have already filtered them out). It returns a
// new slice; xs is left untouched.
func BatchToSpecial(g Group, xs []Element) []Element {
	return batchToSpecialPresent(g, xs)
}
