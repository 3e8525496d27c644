package pixel

import "testing"

func TestMetaChainAppendOrder(t *testing.T) {
	chain := &MetaChain{}
	n1, err := NewStringNode(MetaAuthor, "ann")
	if err != nil {
		t.Fatal(err)
	}
	n2 := NewUnknownStringNode("x-custom", "value")
	n3 := NewUnknownDataNode("x-binary", []byte{1, 2, 3})

	chain.Append(n1)
	chain.Append(n2)
	chain.Append(n3)

	if chain.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", chain.Len())
	}

	got := []MetaKey{}
	for n := chain.Head(); n != nil; n = n.Next {
		got = append(got, n.Key)
	}
	want := []MetaKey{MetaAuthor, MetaUnknown, MetaUnknown}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("node %d key = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNewStringNodeRejectsUnknownKey(t *testing.T) {
	if _, err := NewStringNode(MetaUnknown, "x"); err == nil {
		t.Fatal("expected an error constructing a known-key node with MetaUnknown")
	}
}

func TestMetaChainCopyIsFixpoint(t *testing.T) {
	chain := &MetaChain{}
	chain.Append(NewUnknownStringNode("a", "1"))
	chain.Append(NewUnknownDataNode("b", []byte("payload")))

	cp := chain.Copy()
	if !chain.Equal(cp) {
		t.Fatal("copy must be equal to the original")
	}

	// Mutating the copy's binary payload must not affect the original.
	cp.Head().Next.ValueData[0] = 'X'
	if chain.Head().Next.ValueData[0] == 'X' {
		t.Fatal("Copy must deep-copy ValueData")
	}

	cp2 := cp.Copy()
	if !cp.Equal(cp2) {
		t.Fatal("copying a copy must still be a fixpoint")
	}
}

func TestMetaKeyStringRoundTrip(t *testing.T) {
	for _, k := range []MetaKey{MetaAuthor, MetaComment, MetaEXIF} {
		got, err := ParseMetaKey(k.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != k {
			t.Errorf("round trip %v -> %q -> %v", k, k.String(), got)
		}
	}
}
