package ir

func Truth(node *Node) bool {
	switch node.Type {
	case IntType:
		return node.Int64 != 0
	case StringType:
		return len(node.Bytes) != 0
	case ListType, DictType:
		return len(node.Values) != 0
	default:
		panic("type")
	}
}
