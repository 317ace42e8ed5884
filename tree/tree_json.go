package tree

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

type nodeOut struct {
	Value string `json:"value"`
	Left  *Node  `json:"left,omitempty"`
	Right *Node  `json:"right,omitempty"`
}

type nodeIn struct {
	Value *string `json:"value"`
	Left  *Node   `json:"left"`
	Right *Node   `json:"right"`
}

func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(&nodeOut{Value: n.Value, Left: n.Left, Right: n.Right})
}

func (n *Node) UnmarshalJSON(d []byte) error {
	in := &nodeIn{}
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.DisallowUnknownFields()
	if err := dec.Decode(in); err != nil {
		if errors.Is(err, ErrBadDoc) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrBadDoc, err)
	}
	if in.Value == nil {
		return fmt.Errorf("%w: node without value", ErrBadDoc)
	}
	n.Value = *in.Value
	n.Left = in.Left
	n.Right = in.Right
	n.encoded = nil
	return nil
}

// FromJSON reads a tree document. The document null is the empty tree.
func FromJSON(d []byte) (*Node, error) {
	var res *Node
	if err := json.Unmarshal(d, &res); err != nil {
		if errors.Is(err, ErrBadDoc) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrBadDoc, err)
	}
	return res, nil
}

func ToJSON(n *Node) ([]byte, error) {
	return json.Marshal(n)
}
