package pixel

import (
	"strings"

	"github.com/sail-go/sail/sailerr"
)

// MetaKey is an enumerated metadata tag. Unknown carries a free-form key
// string instead.
type MetaKey int

const (
	MetaUnknown MetaKey = iota
	MetaAuthor
	MetaComment
	MetaEXIF
)

var metaKeyNames = map[MetaKey]string{
	MetaUnknown: "UNKNOWN",
	MetaAuthor:  "AUTHOR",
	MetaComment: "COMMENT",
	MetaEXIF:    "EXIF",
}

var namesToMetaKey = func() map[string]MetaKey {
	m := make(map[string]MetaKey, len(metaKeyNames))
	for k, s := range metaKeyNames {
		m[s] = k
	}
	return m
}()

func (k MetaKey) String() string {
	if s, ok := metaKeyNames[k]; ok {
		return s
	}
	return "UNKNOWN"
}

// ParseMetaKey parses a metadata key name, case-insensitive. Round-trips
// with MetaKey.String for every known key.
func ParseMetaKey(s string) (MetaKey, error) {
	if k, ok := namesToMetaKey[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return k, nil
	}
	return MetaUnknown, sailerr.New(sailerr.InvalidArgument, "pixel.parse_meta_key")
}

// ValueType distinguishes a string metadata value from a binary one.
type ValueType int

const (
	ValueString ValueType = iota
	ValueData
)

// MetaNode is one entry in an ordered metadata chain. Invariants:
//   - if Key != MetaUnknown, KeyUnknown is empty
//   - only the slot matching ValueType is populated
//   - order is preserved across Copy
type MetaNode struct {
	Key        MetaKey
	KeyUnknown string // free-form key; only set when Key == MetaUnknown

	ValueType   ValueType
	ValueString string // null-terminated string value in the original; here a plain Go string
	ValueData   []byte

	Next *MetaNode
}

// NewStringNode builds a node carrying a string value under a known key.
func NewStringNode(key MetaKey, value string) (*MetaNode, error) {
	if key == MetaUnknown {
		return nil, sailerr.New(sailerr.InvalidArgument, "pixel.new_string_node")
	}
	return &MetaNode{Key: key, ValueType: ValueString, ValueString: value}, nil
}

// NewUnknownStringNode builds a node under a free-form key with a string value.
func NewUnknownStringNode(keyUnknown, value string) *MetaNode {
	return &MetaNode{Key: MetaUnknown, KeyUnknown: keyUnknown, ValueType: ValueString, ValueString: value}
}

// NewUnknownDataNode builds a node under a free-form key with a binary value.
func NewUnknownDataNode(keyUnknown string, value []byte) *MetaNode {
	data := make([]byte, len(value))
	copy(data, value)
	return &MetaNode{Key: MetaUnknown, KeyUnknown: keyUnknown, ValueType: ValueData, ValueData: data}
}

// Copy deep-copies a single node, not following Next.
func (n *MetaNode) Copy() *MetaNode {
	if n == nil {
		return nil
	}
	cp := &MetaNode{
		Key:         n.Key,
		KeyUnknown:  n.KeyUnknown,
		ValueType:   n.ValueType,
		ValueString: n.ValueString,
	}
	if n.ValueData != nil {
		cp.ValueData = append([]byte(nil), n.ValueData...)
	}
	return cp
}

// MetaChain is an ordered linked sequence of metadata nodes with an O(1)
// append via a maintained tail pointer.
type MetaChain struct {
	head *MetaNode
	tail *MetaNode
}

// Append adds node to the end of the chain in O(1).
func (c *MetaChain) Append(node *MetaNode) {
	if node == nil {
		return
	}
	node.Next = nil
	if c.head == nil {
		c.head = node
		c.tail = node
		return
	}
	c.tail.Next = node
	c.tail = node
}

// Head returns the first node, or nil if the chain is empty.
func (c *MetaChain) Head() *MetaNode { return c.head }

// Len counts the nodes in the chain.
func (c *MetaChain) Len() int {
	n := 0
	for node := c.head; node != nil; node = node.Next {
		n++
	}
	return n
}

// Copy deep-copies the entire chain, preserving order.
func (c *MetaChain) Copy() *MetaChain {
	out := &MetaChain{}
	for node := c.head; node != nil; node = node.Next {
		out.Append(node.Copy())
	}
	return out
}

// Equal reports whether two chains carry identical nodes in the same order.
// Used to verify the copy-is-a-fixpoint invariant in tests.
func (c *MetaChain) Equal(other *MetaChain) bool {
	a, b := c.head, other.head
	for a != nil && b != nil {
		if a.Key != b.Key || a.KeyUnknown != b.KeyUnknown || a.ValueType != b.ValueType ||
			a.ValueString != b.ValueString || string(a.ValueData) != string(b.ValueData) {
			return false
		}
		a, b = a.Next, b.Next
	}
	return a == nil && b == nil
}
