// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package render

import "testing"

func TestBufferRecordDescTwice(t *testing.T) {
	var b Buffer
	b.RecordDesc(BufferDesc{Stride: 12})
	defer func() {
		if recover() == nil {
			t.Fatal("Buffer.RecordDesc: expected panic on second call")
		}
	}()
	b.RecordDesc(BufferDesc{Stride: 12})
}

func TestBufferValidate(t *testing.T) {
	var b Buffer
	if err := b.validate(); err == nil {
		t.Fatal("Buffer.validate: expected error before RecordDesc")
	}
	b.RecordDesc(BufferDesc{
		Attribs: []VertexAttrib{{Type: AttrFloat32, Count: 3}},
	})
	if err := b.validate(); err == nil {
		t.Fatal("Buffer.validate: expected error for zero stride with attribs")
	}
}

func TestBufferWriteAndEdits(t *testing.T) {
	var b Buffer
	initResource(&b.Resource, KBuffer, 0, nil)
	b.RecordDesc(BufferDesc{Stride: 4})
	b.Write([]byte{1, 2, 3, 4}, []byte{5, 6})
	if x := len(b.VertexData()); x != 4 {
		t.Fatalf("Buffer.VertexData length:\nhave %d\nwant 4", x)
	}
	if x := len(b.ElementData()); x != 2 {
		t.Fatalf("Buffer.ElementData length:\nhave %d\nwant 2", x)
	}
	edits := b.PendingEdits()
	if x := len(edits); x != 2 {
		t.Fatalf("Buffer.PendingEdits length:\nhave %d\nwant 2", x)
	}
	if edits[0].Kind != EditVertex || edits[1].Kind != EditElement {
		t.Fatalf("Buffer.PendingEdits: unexpected edit kinds %v", edits)
	}
	if x := b.ByteUsage(); x != 6 {
		t.Fatalf("Buffer.ByteUsage:\nhave %d\nwant 6", x)
	}
	b.clearEdits()
	if x := len(b.PendingEdits()); x != 0 {
		t.Fatalf("Buffer.PendingEdits after clear:\nhave %d\nwant 0", x)
	}
	if x := b.VertexCount(); x != 1 {
		t.Fatalf("Buffer.VertexCount:\nhave %d\nwant 1", x)
	}
}
