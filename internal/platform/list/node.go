package list

import "tlist/internal/platform/policy"

type node[T any] struct {
	val  *T
	next *node[T]
}

// materialize builds an unlinked node. Nothing is linked if it fails.
func materialize[T any](p policy.Policy[T], v *T) (*node[T], error) {
	block, err := p.Materialize(v)
	if err != nil {
		return nil, err
	}
	return &node[T]{val: block}, nil
}

// release gives the node's block back to the policy and drops the node's links.
func (n *node[T]) release(p policy.Policy[T]) {
	p.Release(n.val)
	n.val = nil
	n.next = nil
}

// detach hands the node's block to the caller without releasing it.
func (n *node[T]) detach() *T {
	v := n.val
	n.val = nil
	n.next = nil
	return v
}
