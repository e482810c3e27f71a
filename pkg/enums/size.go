package enums

// Size labels the garment sizes a product tracks per-size stock for.
// The catalog treats the set as open (numbered accessory sizes appear in some
// datasets), so no IsValid gate exists; DisplayOrder only fixes how the
// standard labels sort.
type Size string

const (
	SizeXS  Size = "XS"
	SizeS   Size = "S"
	SizeM   Size = "M"
	SizeL   Size = "L"
	SizeXL  Size = "XL"
	Size2XL Size = "2XL"
	Size3XL Size = "3XL"
)

var sizeDisplayOrder = map[Size]int{
	SizeXS:  0,
	SizeS:   1,
	SizeM:   2,
	SizeL:   3,
	SizeXL:  4,
	Size2XL: 5,
	Size3XL: 6,
}

// String implements fmt.Stringer.
func (s Size) String() string {
	return string(s)
}

// DisplayOrder returns the sort rank for a standard size label. Unknown
// labels sort after the standard set.
func (s Size) DisplayOrder() int {
	if rank, ok := sizeDisplayOrder[s]; ok {
		return rank
	}
	return len(sizeDisplayOrder)
}
