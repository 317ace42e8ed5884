package mergeop

import (
	"fmt"

	"github.com/signadot/bintree/debug"
	"github.com/signadot/bintree/token"
	"github.com/signadot/bintree/tree"

	jsonpatch "github.com/evanphx/json-patch"
)

type patchOpts struct {
	allowReserved bool
}

type PatchOption func(*patchOpts)

// AllowReserved accepts patch results with values equal to the null marker
// or containing the separator.
func AllowReserved() PatchOption {
	return func(o *patchOpts) { o.allowReserved = true }
}

// JSONPatch applies the RFC 6902 patch to root and returns the patched tree.
// root is not modified.
func JSONPatch(root *tree.Node, patch []byte, opts ...PatchOption) (*tree.Node, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return apply(root, "json-patch", func(doc []byte) ([]byte, error) {
		return ops.Apply(doc)
	}, opts)
}

// MergePatch applies the RFC 7386 merge patch to root. A null member removes
// the child it names.
func MergePatch(root *tree.Node, patch []byte, opts ...PatchOption) (*tree.Node, error) {
	return apply(root, "merge-patch", func(doc []byte) ([]byte, error) {
		return jsonpatch.MergePatch(doc, patch)
	}, opts)
}

func apply(root *tree.Node, name string, f func([]byte) ([]byte, error), opts []PatchOption) (*tree.Node, error) {
	o := &patchOpts{}
	for _, opt := range opts {
		opt(o)
	}
	doc, err := tree.ToJSON(root)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("%s on %s\n", name, doc)
	}
	out, err := f(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrPatch, name, err)
	}
	res, err := tree.FromJSON(out)
	if err != nil {
		return nil, fmt.Errorf("%w: %s result: %w", ErrPatch, name, err)
	}
	if o.allowReserved {
		return res, nil
	}
	if err := checkValues(res); err != nil {
		return nil, fmt.Errorf("%w: %s result: %w", ErrPatch, name, err)
	}
	return res, nil
}

func checkValues(root *tree.Node) error {
	var err error
	tree.Walk(root, func(n *tree.Node, p tree.Path, _ int) bool {
		if err != nil {
			return false
		}
		if cErr := token.CheckValue(n.Value); cErr != nil {
			err = fmt.Errorf("at %s: %w", p, cErr)
		}
		return err == nil
	})
	return err
}
