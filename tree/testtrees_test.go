package tree

// mixed is the tree with long and symbol laden values:
//
//	1(aa(ABC..., symbols), a..z(Hello!, -))
func mixed() *Node {
	return New("1",
		New("aa",
			Leaf("ABCDEFGHIJKLMNOPQRSTUVWXYZ"),
			Leaf(`+=_~!@$%^&*()_+"<>?:,./;'|[]{}`)),
		New("abcdefghijklmnopqrstuvwxyz", Leaf("Hello!"), nil),
	)
}

// dups is 1(2(4,5),2(-,1)).
func dups() *Node {
	return New("1",
		New("2", Leaf("4"), Leaf("5")),
		New("2", nil, Leaf("1")),
	)
}
