package gif

import (
	"golang.org/x/text/encoding/charmap"

	"github.com/sail-go/sail/pixel"
)

// appendCommentNode decodes a GIF comment extension's bytes as ISO-8859-1
// (the encoding GIF comment blocks are conventionally written in) and
// appends it as a COMMENT metadata node.
func appendCommentNode(chain *pixel.MetaChain, payload []byte) {
	text, err := charmap.ISO8859_1.NewDecoder().String(string(payload))
	if err != nil {
		text = string(payload)
	}
	node, err := pixel.NewStringNode(pixel.MetaComment, text)
	if err != nil {
		return
	}
	chain.Append(node)
}
