package pasteparser

// Allocator supplies storage for nodes. Alloc returns a zeroed node or an
// error if no storage is available; Free takes back a node that is no longer
// referenced anywhere. Free is called exactly once for every node that Alloc
// returned.
type Allocator interface {
	Alloc() (*Node, error)
	Free(n *Node)
}

// heap is the default Allocator. It never fails.
type heap struct{}

func (heap) Alloc() (*Node, error) {
	return new(Node), nil
}

// Free clears n so that stale references read as an empty composite rather
// than as the old value.
func (heap) Free(n *Node) {
	*n = Node{}
}
