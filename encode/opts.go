package encode

type EncodeOption func(*EncState)

// SortKeys writes dictionary pairs ordered by key bytes. Pairs with equal
// keys keep their relative order.
func SortKeys(v bool) EncodeOption {
	return func(es *EncState) { es.sortKeys = v }
}
